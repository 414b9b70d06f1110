package update_groomer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/service/staff"
	"github.com/bestbuddies/grooming-booking/internal/service/staff/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "грумер не найден"
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

// Handle PATCH /api/v1/admin/groomers/{groomerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	groomerID := mux.Vars(r)["groomerId"]

	var req models.UpdateGroomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /groomers/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateGroomer(r.Context(), groomerID, &req)
	if err != nil {
		switch {
		case errors.Is(err, staff.ErrGroomerNotFound):
			h.logger.Warn("PATCH /groomers/{id} - Groomer not found: groomer_id=%s", groomerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, staff.ErrInvalidInput):
			h.logger.Warn("PATCH /groomers/{id} - Invalid data: groomer_id=%s, error=%v", groomerID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /groomers/{id} - Failed to update groomer: groomer_id=%s, error=%v", groomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /groomers/{id} - Groomer updated: groomer_id=%s", groomerID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
