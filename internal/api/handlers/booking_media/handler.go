package booking_media

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
	msgEmptyMedia         = "не передано ни одной ссылки на фото"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase MediaUseCase
	logger  Logger
}

func NewHandler(useCase MediaUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleAttach PUT /api/v1/admin/bookings/{bookingId}/media
func (h *Handler) HandleAttach(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req AttachMediaRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/media - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if req.BeforeMedia == nil && req.AfterMedia == nil {
		handlers.RespondBadRequest(w, msgEmptyMedia)
		return
	}

	booking, err := h.useCase.AttachMedia(r.Context(), &lifecycle.MediaRequest{
		BookingID: bookingID,
		Before:    req.BeforeMedia,
		After:     req.AfterMedia,
		Actor:     actor,
	})
	if err != nil {
		h.respondError(w, "PUT /bookings/{id}/media", bookingID, actor, err)
		return
	}

	h.logger.Info("PUT /bookings/{id}/media - Media attached: booking_id=%s", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}

// HandleFeatured PUT /api/v1/admin/bookings/{bookingId}/featured
func (h *Handler) HandleFeatured(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SetFeaturedRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/{id}/featured - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	booking, err := h.useCase.SetFeatured(r.Context(), bookingID, req.Featured, actor)
	if err != nil {
		h.respondError(w, "PUT /bookings/{id}/featured", bookingID, actor, err)
		return
	}

	h.logger.Info("PUT /bookings/{id}/featured - Featured=%t: booking_id=%s", booking.Featured, booking.ID)
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
