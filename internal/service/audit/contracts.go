package audit

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// AuditRepository append-only хранилище журнала
type AuditRepository interface {
	AppendAuditEntry(ctx context.Context, entry *domain.AuditEntry) error
	LoadAuditEntries(ctx context.Context, bookingID *string) ([]*domain.AuditEntry, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
