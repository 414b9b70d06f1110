package list_groomers

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

type StaffService interface {
	ListGroomers(ctx context.Context) (*models.GroomerListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
