package staff

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// StaffRepository интерфейс репозитория грумеров и отсутствий
type StaffRepository interface {
	LoadGroomers(ctx context.Context) ([]*domain.Groomer, error)
	SaveGroomer(ctx context.Context, groomer *domain.Groomer) error
	LoadAbsences(ctx context.Context) ([]*domain.Absence, error)
	SaveAbsence(ctx context.Context, absence *domain.Absence) error
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
