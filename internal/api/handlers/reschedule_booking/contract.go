package reschedule_booking

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

type RescheduleUseCase interface {
	Reschedule(ctx context.Context, req *lifecycle.RescheduleRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
