package assign_groomer

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

type AssignUseCase interface {
	AssignGroomer(ctx context.Context, bookingID, groomerID string, actor domain.Actor) (*domain.Booking, error)
	AutoAssign(ctx context.Context, bookingID string, actor domain.Actor) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
