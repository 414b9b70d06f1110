package create_groomer

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

type StaffService interface {
	CreateGroomer(ctx context.Context, req *models.CreateGroomerRequest) (*models.GroomerResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
