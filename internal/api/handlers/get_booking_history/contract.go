package get_booking_history

import (
	"context"
	"io"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetHistory(ctx context.Context, id string, actor domain.Actor) (*models.HistoryResponse, error)
}

// AuditExporter выгрузка журнала в Excel
type AuditExporter interface {
	ExportXLSX(ctx context.Context, w io.Writer, bookingID *string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
