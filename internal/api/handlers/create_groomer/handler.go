package create_groomer

import (
	"errors"
	"net/http"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/service/staff"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные данные грумера"
)

type Handler struct {
	service StaffService
	logger  Logger
}

func NewHandler(service StaffService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/groomers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateGroomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /groomers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateGroomer(r.Context(), &req)
	if err != nil {
		if errors.Is(err, staff.ErrInvalidInput) {
			h.logger.Warn("POST /groomers - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)
			return
		}
		h.logger.Error("POST /groomers - Failed to create groomer: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /groomers - Groomer created: groomer_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
