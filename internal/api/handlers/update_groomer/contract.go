package update_groomer

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

type StaffService interface {
	UpdateGroomer(ctx context.Context, id string, req *models.UpdateGroomerRequest) (*models.GroomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
