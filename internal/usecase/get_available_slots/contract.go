package get_available_slots

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	LoadBookings(ctx context.Context) ([]*domain.Booking, error)
}

// StaffRepository интерфейс репозитория грумеров
type StaffRepository interface {
	LoadGroomers(ctx context.Context) ([]*domain.Groomer, error)
	LoadAbsences(ctx context.Context) ([]*domain.Absence, error)
}

// CalendarRepository интерфейс репозитория закрытых дней
type CalendarRepository interface {
	LoadBlackouts(ctx context.Context) ([]*domain.CalendarBlackout, error)
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
type RealTimeProvider struct {
	Location *time.Location // часовой пояс салона, nil - локальный
}

// Now возвращает текущее время в часовом поясе салона
func (p *RealTimeProvider) Now() time.Time {
	if p.Location == nil {
		return time.Now()
	}
	return time.Now().In(p.Location)
}
