package lifecycle

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
)

// BookingStore полное чтение и запись набора бронирований
type BookingStore interface {
	LoadBookings(ctx context.Context) ([]*domain.Booking, error)
	PersistBookings(ctx context.Context, bookings []*domain.Booking) error
}

// StaffSource грумеры и их отсутствия
type StaffSource interface {
	LoadGroomers(ctx context.Context) ([]*domain.Groomer, error)
	LoadAbsences(ctx context.Context) ([]*domain.Absence, error)
}

// CalendarStore закрытые дни
type CalendarStore interface {
	LoadBlackouts(ctx context.Context) ([]*domain.CalendarBlackout, error)
	PersistBlackouts(ctx context.Context, blackouts []*domain.CalendarBlackout) error
}

// CatalogSource каталог цен
type CatalogSource interface {
	LoadCatalog(ctx context.Context) (*domain.Catalog, error)
}

// ConductPolicy проверка блокировки и выдача предупреждений
type ConductPolicy interface {
	EnsureCanBook(ctx context.Context, customerID string) error
	AddWarning(ctx context.Context, req conduct.WarningRequest) (*domain.ConductRecord, error)
}

// AuditLog журнал изменений
type AuditLog interface {
	Append(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error)
	List(ctx context.Context, bookingID *string) ([]*domain.AuditEntry, error)
}

// Metrics счётчик переходов жизненного цикла
type Metrics interface {
	RecordTransition(action, result string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
