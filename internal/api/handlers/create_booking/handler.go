package create_booking

import (
	"errors"
	"net/http"
	"time"

	"github.com/bestbuddies/grooming-booking/internal/api/handlers"
	"github.com/bestbuddies/grooming-booking/internal/api/middleware"
	"github.com/bestbuddies/grooming-booking/internal/usecase/lifecycle"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные дата, слот или клиент бронирования"
	msgMissingActor       = "отсутствует идентификатор пользователя"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	useCase  CreateBookingUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CreateBookingUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingActor)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, h.location)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Create(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: actor=%s", actor)
			handlers.RespondForbidden(w, msgForbidden)
		case handlers.RespondDomainError(w, err):
			h.logger.Warn("POST /bookings - Rejected: customer=%s, error=%v", useCaseReq.CustomerID, err)
		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%s, error=%v", useCaseReq.CustomerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, code=%s, customer=%s",
		result.Booking.ID, result.Booking.ShortCode, result.Booking.CustomerID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
