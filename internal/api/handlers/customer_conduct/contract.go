package customer_conduct

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/conduct"
)

type ConductService interface {
	Get(ctx context.Context, customerID string) (*domain.ConductRecord, error)
	AddWarning(ctx context.Context, req conduct.WarningRequest) (*domain.ConductRecord, error)
	Ban(ctx context.Context, req conduct.BanRequest) (*domain.ConductRecord, error)
	EnforceLimit(ctx context.Context, customerID, actor string) (*domain.ConductRecord, bool, error)
	LiftBan(ctx context.Context, req conduct.LiftBanRequest) (*domain.ConductRecord, error)
	ListForReview(ctx context.Context) ([]conduct.ReviewItem, error)
	NeedsReview(record *domain.ConductRecord) conduct.ReviewLevel
	BanLiftFee() float64
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
