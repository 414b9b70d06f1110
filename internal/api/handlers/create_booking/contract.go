package create_booking

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

type CreateBookingUseCase interface {
	Create(ctx context.Context, req *lifecycle.CreateRequest) (*lifecycle.CreateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
