package bookings

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

// Lifecycle операции жизненного цикла, на которые опирается сервис
type Lifecycle interface {
	Get(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	History(ctx context.Context, bookingID string, actor domain.Actor) ([]*domain.AuditEntry, error)
	DayView(ctx context.Context, date time.Time) (*lifecycle.DayView, error)

	Cancel(ctx context.Context, req *lifecycle.CancelRequest) (*domain.Booking, error)
	Confirm(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	Start(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
	Complete(ctx context.Context, bookingID, notes string, actor domain.Actor) (*domain.Booking, error)
	MarkNoShow(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
