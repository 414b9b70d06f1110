package booking_addons

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

type AddOnUseCase interface {
	AddAddOn(ctx context.Context, req *lifecycle.AddOnRequest) (*domain.Booking, error)
	RemoveAddOn(ctx context.Context, req *lifecycle.RemoveAddOnRequest) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
