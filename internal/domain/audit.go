package domain

import "time"

// Actor kinds recorded in the audit log
const (
	ActorCustomer = "customer"
	ActorAdmin    = "admin"
	ActorSystem   = "system"
	ActorBlackout = "blackout"
)

// Actor who performs an operation
type Actor struct {
	ID   string
	Kind string
}

// String renders the actor for audit messages
func (a Actor) String() string {
	if a.ID == "" {
		return a.Kind
	}
	return a.Kind + ":" + a.ID
}

// IsCustomer reports whether the actor is the booking's customer side
func (a Actor) IsCustomer() bool {
	return a.Kind == ActorCustomer
}

// AuditEntry immutable narrative record of a booking mutation
type AuditEntry struct {
	ID        string
	BookingID string
	Action    string
	Message   string
	Actor     string
	Timestamp time.Time
}
