package conduct

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// ConductRepository хранилище записей о поведении клиентов.
// LoadConductRecord возвращает чистую запись, если клиент ещё не встречался.
type ConductRepository interface {
	LoadConductRecord(ctx context.Context, customerID string) (*domain.ConductRecord, error)
	PersistConductRecord(ctx context.Context, record *domain.ConductRecord) error
	ListConductRecords(ctx context.Context) ([]*domain.ConductRecord, error)
}

// Metrics учёт событий политики
type Metrics interface {
	RecordConduct(event string)
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
