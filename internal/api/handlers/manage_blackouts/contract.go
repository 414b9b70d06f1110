package manage_blackouts

import (
	"context"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

type BlackoutUseCase interface {
	Blackouts(ctx context.Context) ([]*domain.CalendarBlackout, error)
	CloseDate(ctx context.Context, req *lifecycle.CloseDateRequest) (*lifecycle.CloseDateResponse, error)
	ReopenDate(ctx context.Context, date time.Time, actor domain.Actor) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
