package booking_media

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

type MediaUseCase interface {
	AttachMedia(ctx context.Context, req *lifecycle.MediaRequest) (*domain.Booking, error)
	SetFeatured(ctx context.Context, bookingID string, featured bool, actor domain.Actor) (*domain.Booking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
