package domain

import "time"

// AbsenceStatus approval state of a staff absence request
type AbsenceStatus string

const (
	AbsencePending  AbsenceStatus = "pending"
	AbsenceApproved AbsenceStatus = "approved"
	AbsenceRejected AbsenceStatus = "rejected"
)

// Groomer a staff member who can be assigned to bookings
type Groomer struct {
	ID               string
	Name             string
	Specialty        string
	MaxDailyBookings int // 0 means the configured default
	Order            int // definition order, used as the tie-breaker
	Active           bool
}

// Capacity returns the groomer's daily limit, falling back to def
func (g *Groomer) Capacity(def int) int {
	if g.MaxDailyBookings > 0 {
		return g.MaxDailyBookings
	}
	return def
}

// Absence a day off requested by a groomer
type Absence struct {
	ID        string
	GroomerID string
	Date      time.Time
	Status    AbsenceStatus
	Reason    string
	CreatedAt time.Time
}

// Covers reports whether an approved absence takes the groomer off on date
func (a *Absence) Covers(groomerID string, date time.Time) bool {
	return a.Status == AbsenceApproved && a.GroomerID == groomerID && SameDay(a.Date, date)
}
