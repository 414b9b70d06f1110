package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingStatus(t *testing.T) {
	tests := []struct {
		raw  string
		want BookingStatus
	}{
		{"pending", StatusPending},
		{"Confirmed", StatusConfirmed},
		{"In Progress", StatusInProgress},
		{"inprogress", StatusInProgress},
		{"in_progress", StatusInProgress},
		{"In-Progress", StatusInProgress},
		{"Completed", StatusCompleted},
		{"Cancelled By Admin", StatusCancelledByAdmin},
		{"CancelledByAdmin", StatusCancelledByAdmin},
		{"cancelled", StatusCancelledByAdmin},
		{"cancelledByCustomer", StatusCancelledByCustomer},
		{"cancelled_by_user", StatusCancelledByCustomer},
		{"no-show", StatusNoShow},
		{"No Show", StatusNoShow},
		{"  noshow  ", StatusNoShow},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseBookingStatus(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseBookingStatus_Unknown(t *testing.T) {
	_, err := ParseBookingStatus("archived")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusPending.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusInProgress))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.True(t, StatusInProgress.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusInProgress.CanTransitionTo(StatusNoShow))
	assert.False(t, StatusCompleted.CanTransitionTo(StatusCancelledByAdmin))

	for _, s := range []BookingStatus{StatusCompleted, StatusCancelledByCustomer, StatusCancelledByAdmin, StatusNoShow} {
		assert.True(t, s.IsTerminal(), s)
	}
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusInProgress} {
		assert.False(t, s.IsTerminal(), s)
	}
}

func TestBookingStatus_Occupancy(t *testing.T) {
	assert.True(t, StatusCompleted.OccupiesSlot())
	assert.True(t, StatusPending.OccupiesSlot())
	assert.False(t, StatusNoShow.OccupiesSlot())
	assert.False(t, StatusCancelledByCustomer.OccupiesSlot())
	assert.False(t, BookingStatus("weird").IsValid())
}

func TestTransitionError(t *testing.T) {
	b := &Booking{ID: "b-1", Status: StatusCompleted}
	err := InvalidTransition(b, "confirm")

	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Contains(t, err.Error(), "status=completed")
	assert.Contains(t, err.Error(), "action=confirm")

	var te *TransitionError
	require.True(t, errors.As(error(err), &te))
	assert.Equal(t, StatusCompleted, te.Current)
}
