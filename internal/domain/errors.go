package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidTransition the state machine does not allow the action from the current status
	ErrInvalidTransition = errors.New("invalid transition")

	// ErrPreconditionFailed a guard other than the state machine failed (no groomer, date closed, ...)
	ErrPreconditionFailed = errors.New("precondition failed")

	// ErrCapacityExceeded the groomer has no capacity left or the slot is taken
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrSlotConflict a reschedule collides with another booking
	ErrSlotConflict = errors.New("slot conflict")

	// ErrAccountBanned the customer is banned from booking
	ErrAccountBanned = errors.New("account banned")

	// ErrPricingIncomplete weight or a required selection is missing
	ErrPricingIncomplete = errors.New("pricing incomplete")

	// ErrBookingNotFound бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrGroomerNotFound грумер не найден
	ErrGroomerNotFound = errors.New("groomer not found")

	// ErrPackageNotFound пакет услуг не найден в каталоге
	ErrPackageNotFound = errors.New("package not found")

	// ErrInvalidInput некорректные входные данные
	ErrInvalidInput = errors.New("invalid input")
)

// TransitionError carries the context of a rejected lifecycle operation so
// the presentation layer can explain it without re-deriving anything.
type TransitionError struct {
	Kind                 error
	BookingID            string
	Action               string
	Current              BookingStatus
	GroomerID            string
	ConflictingBookingID string
	Reason               string
}

func (e *TransitionError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.Error())
	fmt.Fprintf(&b, ": action=%s", e.Action)
	if e.BookingID != "" {
		fmt.Fprintf(&b, " booking=%s", e.BookingID)
	}
	if e.Current != "" {
		fmt.Fprintf(&b, " status=%s", e.Current)
	}
	if e.GroomerID != "" {
		fmt.Fprintf(&b, " groomer=%s", e.GroomerID)
	}
	if e.ConflictingBookingID != "" {
		fmt.Fprintf(&b, " conflicting=%s", e.ConflictingBookingID)
	}
	if e.Reason != "" {
		fmt.Fprintf(&b, " (%s)", e.Reason)
	}
	return b.String()
}

func (e *TransitionError) Unwrap() error {
	return e.Kind
}

// InvalidTransition builds the error returned when the state machine rejects an action
func InvalidTransition(b *Booking, action string) *TransitionError {
	return &TransitionError{
		Kind:      ErrInvalidTransition,
		BookingID: b.ID,
		Action:    action,
		Current:   b.Status,
		Reason:    fmt.Sprintf("cannot %s a booking in status %s", action, b.Status),
	}
}

// PreconditionFailed builds a guard failure for the booking
func PreconditionFailed(b *Booking, action, reason string) *TransitionError {
	e := &TransitionError{
		Kind:   ErrPreconditionFailed,
		Action: action,
		Reason: reason,
	}
	if b != nil {
		e.BookingID = b.ID
		e.Current = b.Status
	}
	return e
}
