package domain

import "time"

// WarningEntry one recorded warning
type WarningEntry struct {
	Reason    string
	BookingID *string
	IssuedBy  string
	IssuedAt  time.Time
}

// ConductRecord a customer's warning and ban state
type ConductRecord struct {
	CustomerID    string
	WarningCount  int
	Warnings      []WarningEntry
	IsBanned      bool
	BanReason     *string
	BannedAt      *time.Time
	LiftedAt      *time.Time
	LastWarningAt *time.Time
	UpdatedAt     time.Time
}

// NewConductRecord returns the clean record of a customer with no history
func NewConductRecord(customerID string) *ConductRecord {
	return &ConductRecord{CustomerID: customerID}
}

// Clone returns a deep copy
func (r *ConductRecord) Clone() *ConductRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.Warnings = append([]WarningEntry(nil), r.Warnings...)
	c.BanReason = cloneString(r.BanReason)
	c.BannedAt = cloneTime(r.BannedAt)
	c.LiftedAt = cloneTime(r.LiftedAt)
	c.LastWarningAt = cloneTime(r.LastWarningAt)
	return &c
}
