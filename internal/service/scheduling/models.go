package scheduling

import "github.com/bestbuddies/grooming-booking/internal/domain"

// Availability result of the availability predicate for one groomer
type Availability struct {
	GroomerID            string
	Available            bool
	Absent               bool
	DailyCount           int
	Capacity             int
	ConflictingBookingID string
	Reason               string
}

// Candidate an available groomer with the load used for fair assignment
type Candidate struct {
	Groomer    *domain.Groomer
	DailyCount int
	index      int
}

// GroomerLoad one row of the admin assignment view
type GroomerLoad struct {
	Groomer    *domain.Groomer
	DailyCount int
	Capacity   int
	Absent     bool
	Slots      map[domain.TimeSlot]string // slot -> booking id
}

// SlotSummary how many groomers can still take a slot on a date
type SlotSummary struct {
	Slot              domain.TimeSlot
	AvailableGroomers int
	TotalGroomers     int
}

// IsFull returns true if no groomer can take the slot
func (s SlotSummary) IsFull() bool {
	return s.AvailableGroomers <= 0
}
