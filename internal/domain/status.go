package domain

import (
	"fmt"
	"strings"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByAdmin    BookingStatus = "cancelled_by_admin"
	StatusNoShow              BookingStatus = "no_show"
)

// validTransitions forward moves of the state machine.
// Reschedule back to pending is handled separately.
var validTransitions = map[BookingStatus][]BookingStatus{
	StatusPending: {
		StatusConfirmed,
		StatusCancelledByCustomer,
		StatusCancelledByAdmin,
		StatusNoShow,
	},
	StatusConfirmed: {
		StatusInProgress,
		StatusCompleted,
		StatusCancelledByCustomer,
		StatusCancelledByAdmin,
		StatusNoShow,
	},
	StatusInProgress: {
		StatusCompleted,
		StatusCancelledByCustomer,
		StatusCancelledByAdmin,
	},
	StatusCompleted:           {},
	StatusCancelledByCustomer: {},
	StatusCancelledByAdmin:    {},
	StatusNoShow:              {},
}

// statusAliases maps squashed spellings found in stored data to canonical statuses
var statusAliases = map[string]BookingStatus{
	"pending":             StatusPending,
	"confirmed":           StatusConfirmed,
	"inprogress":          StatusInProgress,
	"started":             StatusInProgress,
	"completed":           StatusCompleted,
	"complete":            StatusCompleted,
	"done":                StatusCompleted,
	"cancelledbycustomer": StatusCancelledByCustomer,
	"cancelledbyuser":     StatusCancelledByCustomer,
	"cancelledbyadmin":    StatusCancelledByAdmin,
	"cancelled":           StatusCancelledByAdmin,
	"canceled":            StatusCancelledByAdmin,
	"noshow":              StatusNoShow,
}

// ParseBookingStatus normalizes any stored spelling ("In Progress", "inprogress",
// "Cancelled By Admin", "no-show", ...) into a canonical status.
func ParseBookingStatus(raw string) (BookingStatus, error) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '_', '-', '\t':
			return -1
		}
		return r
	}, strings.ToLower(strings.TrimSpace(raw)))

	if status, ok := statusAliases[key]; ok {
		return status, nil
	}
	return "", fmt.Errorf("%w: unknown booking status %q", ErrInvalidInput, raw)
}

// String returns the canonical name
func (s BookingStatus) String() string {
	return string(s)
}

// IsValid reports whether s is one of the canonical statuses
func (s BookingStatus) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo reports whether the state machine allows s -> target
func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses with no outgoing transitions
func (s BookingStatus) IsTerminal() bool {
	next, ok := validTransitions[s]
	return ok && len(next) == 0
}

// IsCancelled returns true for the cancellation variants, no-show included
func (s BookingStatus) IsCancelled() bool {
	return s == StatusCancelledByCustomer || s == StatusCancelledByAdmin || s == StatusNoShow
}

// OccupiesSlot returns true if a booking in this status holds groomer capacity
func (s BookingStatus) OccupiesSlot() bool {
	return !s.IsCancelled()
}
