package manage_absences

import (
	"context"

	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

type StaffService interface {
	ListAbsences(ctx context.Context, groomerID *string) (*models.AbsenceListResponse, error)
	RequestAbsence(ctx context.Context, req *models.RequestAbsenceRequest) (*models.AbsenceResponse, error)
	DecideAbsence(ctx context.Context, id string, req *models.DecideAbsenceRequest) (*models.AbsenceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
