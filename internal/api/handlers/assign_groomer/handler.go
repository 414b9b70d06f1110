package assign_groomer

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase AssignUseCase
	logger  Logger
}

func NewHandler(useCase AssignUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/bookings/{bookingId}/assign
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AssignGroomerRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("POST /bookings/{id}/assign - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
	}

	var (
		booking *domain.Booking
		err     error
	)
	if req.GroomerID != nil {
		booking, err = h.useCase.AssignGroomer(r.Context(), bookingID, *req.GroomerID, actor)
	} else {
		booking, err = h.useCase.AutoAssign(r.Context(), bookingID, actor)
	}
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/assign - Access denied: actor=%s", actor)
			handlers.RespondForbidden(w, msgForbidden)

		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /bookings/{id}/assign - Rejected: booking_id=%s, error=%v", bookingID, err)

		default:
			h.logger.Error("POST /bookings/{id}/assign - Failed to assign groomer: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/assign - Groomer assigned: booking_id=%s, groomer=%s", booking.ID, booking.GroomerName)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}
