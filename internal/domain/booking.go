package domain

import (
	"time"
)

// Pet describes the animal being groomed
type Pet struct {
	Name          string
	Species       string // dog / cat
	Breed         string
	WeightBracket string // catalog weight tier label, e.g. "10–20kg"
}

// SelectedAddOn an add-on attached to a booking with the price it was charged at
type SelectedAddOn struct {
	ID    string
	Key   string
	Label string
	Price float64
}

// CostSnapshot pricing captured at booking time
type CostSnapshot struct {
	PackagePrice   float64
	ServicesTotal  float64
	AddOns         []SelectedAddOn // add-ons chosen with the request, part of Subtotal
	AddOnsTotal    float64
	Subtotal       float64
	BookingFee     float64
	BalanceOnVisit float64
	TotalAmount    float64
	WeightLabel    string
	Incomplete     bool
	Locked         bool
}

// Booking represents a grooming appointment
type Booking struct {
	ID           string
	ShortCode    string
	CustomerID   string
	CustomerName string
	Phone        string
	Pet          Pet

	PackageID      string
	PackageName    string
	SingleServices []string

	// AddOns added while the service is in progress
	AddOns []SelectedAddOn

	GroomerID   *string
	GroomerName string
	Date        time.Time
	Slot        TimeSlot
	Status      BookingStatus
	Source      string

	Cost       CostSnapshot
	BasePrice  *float64
	TotalPrice float64

	Notes            *string
	CancellationNote *string
	CompletionNote   *string

	BeforeMedia *string
	AfterMedia  *string
	Featured    bool

	RescheduledFrom *string

	CreatedAt   time.Time
	UpdatedAt   time.Time
	StartedAt   *time.Time
	CompletedAt *time.Time
	CancelledAt *time.Time
}

// IsActive returns true if the booking occupies groomer capacity
func (b *Booking) IsActive() bool {
	return b.Status.OccupiesSlot()
}

// IsCancelled returns true if the booking was cancelled or marked no-show
func (b *Booking) IsCancelled() bool {
	return b.Status.IsCancelled()
}

// HasGroomer returns true if a groomer is assigned
func (b *Booking) HasGroomer() bool {
	return b.GroomerID != nil && *b.GroomerID != ""
}

// AssignedTo reports whether the booking is assigned to the given groomer
func (b *Booking) AssignedTo(groomerID string) bool {
	return b.HasGroomer() && *b.GroomerID == groomerID
}

// Occupies reports whether the booking holds the (date, slot, groomer) triple
func (b *Booking) Occupies(date time.Time, slot TimeSlot, groomerID string) bool {
	return b.IsActive() && b.Slot == slot && SameDay(b.Date, date) && b.AssignedTo(groomerID)
}

// AddOnsSum sums prices of add-ons attached during service
func (b *Booking) AddOnsSum() float64 {
	var sum float64
	for _, a := range b.AddOns {
		sum += a.Price
	}
	return sum
}

// Clone returns a deep copy so in-memory mutation never leaks into stored state
func (b *Booking) Clone() *Booking {
	if b == nil {
		return nil
	}
	c := *b
	c.SingleServices = append([]string(nil), b.SingleServices...)
	c.AddOns = append([]SelectedAddOn(nil), b.AddOns...)
	c.Cost.AddOns = append([]SelectedAddOn(nil), b.Cost.AddOns...)
	c.GroomerID = cloneString(b.GroomerID)
	c.Notes = cloneString(b.Notes)
	c.CancellationNote = cloneString(b.CancellationNote)
	c.CompletionNote = cloneString(b.CompletionNote)
	c.BeforeMedia = cloneString(b.BeforeMedia)
	c.AfterMedia = cloneString(b.AfterMedia)
	c.RescheduledFrom = cloneString(b.RescheduledFrom)
	c.BasePrice = cloneFloat(b.BasePrice)
	c.StartedAt = cloneTime(b.StartedAt)
	c.CompletedAt = cloneTime(b.CompletedAt)
	c.CancelledAt = cloneTime(b.CancelledAt)
	return &c
}

// BookingsFilter фильтр для получения списка бронирований
type BookingsFilter struct {
	CustomerID      *string
	GroomerID       *string
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *BookingStatus
	IncludeInactive bool // включать отменённые и no-show
}

// Matches reports whether the booking passes the filter
func (f BookingsFilter) Matches(b *Booking) bool {
	if !f.IncludeInactive && !b.IsActive() {
		return false
	}
	if f.CustomerID != nil && b.CustomerID != *f.CustomerID {
		return false
	}
	if f.GroomerID != nil && !b.AssignedTo(*f.GroomerID) {
		return false
	}
	if f.Status != nil && b.Status != *f.Status {
		return false
	}
	day := DateKey(b.Date)
	if f.StartDate != nil && day < DateKey(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && day > DateKey(*f.EndDate) {
		return false
	}
	return true
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

func cloneFloat(f *float64) *float64 {
	if f == nil {
		return nil
	}
	v := *f
	return &v
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
