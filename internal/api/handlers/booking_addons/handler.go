package booking_addons

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/domain"
	"github.com/bestbuddies/grooming-booking/internal/service/bookings/models"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingKey         = "не указан ключ доп. услуги"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase AddOnUseCase
	logger  Logger
}

func NewHandler(useCase AddOnUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/admin/bookings/{bookingId}/addons
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AddAddOnRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/addons - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if strings.TrimSpace(req.Key) == "" {
		handlers.RespondBadRequest(w, msgMissingKey)
		return
	}

	booking, err := h.useCase.AddAddOn(r.Context(), &lifecycle.AddOnRequest{
		BookingID: bookingID,
		Key:       req.Key,
		Actor:     actor,
	})
	if err != nil {
		h.respondError(w, "POST /bookings/{id}/addons", bookingID, actor, err)
		return
	}

	h.logger.Info("POST /bookings/{id}/addons - Add-on added: booking_id=%s, key=%s, total=%.2f",
		booking.ID, req.Key, booking.TotalPrice)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}

// HandleRemove DELETE /api/v1/admin/bookings/{bookingId}/addons/{addOnId}
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.useCase.RemoveAddOn(r.Context(), &lifecycle.RemoveAddOnRequest{
		BookingID: bookingID,
		AddOnID:   vars["addOnId"],
		Actor:     actor,
	})
	if err != nil {
		h.respondError(w, "DELETE /bookings/{id}/addons/{addOnId}", bookingID, actor, err)
		return
	}

	h.logger.Info("DELETE /bookings/{id}/addons/{addOnId} - Add-on removed: booking_id=%s, add_on=%s",
		booking.ID, vars["addOnId"])
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, op, bookingID string, actor domain.Actor, err error) {
	switch {
	case errors.Is(err, lifecycle.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: booking_id=%s, actor=%s", op, bookingID, actor)
		handlers.RespondForbidden(w, msgForbidden)

	case handlers.RespondDomainError(w, err):
		h.logger.Warn("%s - Rejected: booking_id=%s, error=%v", op, bookingID, err)

	default:
		h.logger.Error("%s - Failed: booking_id=%s, error=%v", op, bookingID, err)
		handlers.RespondInternalError(w)
	}
}
