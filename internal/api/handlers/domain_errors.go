package handlers

import (
	"errors"
	"net/http"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// TransitionErrorResponse отказ операции жизненного цикла с контекстом
type TransitionErrorResponse struct {
	Code                 int    `json:"code"`
	Message              string `json:"message"`
	Kind                 string `json:"kind"`
	Action               string `json:"action,omitempty"`
	BookingID            string `json:"bookingId,omitempty"`
	CurrentStatus        string `json:"currentStatus,omitempty"`
	GroomerID            string `json:"groomerId,omitempty"`
	ConflictingBookingID string `json:"conflictingBookingId,omitempty"`
}

// DomainStatus HTTP-статус для доменной ошибки; 0 - ошибка не доменная
func DomainStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrCapacityExceeded),
		errors.Is(err, domain.ErrSlotConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPreconditionFailed),
		errors.Is(err, domain.ErrPricingIncomplete):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrAccountBanned):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrBookingNotFound),
		errors.Is(err, domain.ErrGroomerNotFound),
		errors.Is(err, domain.ErrPackageNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return 0
	}
}

// RespondDomainError отвечает на доменную ошибку и возвращает true.
// Для остальных ошибок ничего не пишет и возвращает false.
func RespondDomainError(w http.ResponseWriter, err error) bool {
	status := DomainStatus(err)
	if status == 0 {
		return false
	}

	var te *domain.TransitionError
	if errors.As(err, &te) {
		RespondJSON(w, status, TransitionErrorResponse{
			Code:                 status,
			Message:              err.Error(),
			Kind:                 te.Kind.Error(),
			Action:               te.Action,
			BookingID:            te.BookingID,
			CurrentStatus:        string(te.Current),
			GroomerID:            te.GroomerID,
			ConflictingBookingID: te.ConflictingBookingID,
		})
		return true
	}

	RespondError(w, status, err.Error())
	return true
}
