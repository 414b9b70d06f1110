package domain

import "time"

// CalendarBlackout a date on which the salon takes no bookings
type CalendarBlackout struct {
	Date      time.Time
	Reason    string
	CreatedBy string
	CreatedAt time.Time
}

// BlackoutNote standard cancellation note for bookings cascaded by a closure
func BlackoutNote(reason string) string {
	return "Closed day: " + reason
}
