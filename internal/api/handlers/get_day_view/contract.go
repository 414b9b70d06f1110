package get_day_view

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
)

type BookingService interface {
	GetDayView(ctx context.Context, date time.Time) (*models.DayViewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
