package pricing

import "github.com/bestbuddies/grooming-booking/internal/domain"

// Selection what the customer picked on the booking form
type Selection struct {
	PackageID        string
	WeightBracket    string
	AddOnKeys        []string
	SingleServiceIDs []string
}

// Quote computed cost breakdown
type Quote struct {
	PackagePrice   float64
	ServicesTotal  float64
	AddOns         []domain.SelectedAddOn
	AddOnsTotal    float64
	Subtotal       float64
	BookingFee     float64
	BalanceOnVisit float64
	TotalAmount    float64
	WeightLabel    string

	// Incomplete is set when a documented fallback was used; Warnings say which one
	Incomplete bool
	Warnings   []string
}

// Snapshot converts the quote into the cost snapshot stored on a booking
func (q *Quote) Snapshot() domain.CostSnapshot {
	return domain.CostSnapshot{
		PackagePrice:   q.PackagePrice,
		ServicesTotal:  q.ServicesTotal,
		AddOns:         append([]domain.SelectedAddOn(nil), q.AddOns...),
		AddOnsTotal:    q.AddOnsTotal,
		Subtotal:       q.Subtotal,
		BookingFee:     q.BookingFee,
		BalanceOnVisit: q.BalanceOnVisit,
		TotalAmount:    q.TotalAmount,
		WeightLabel:    q.WeightLabel,
		Incomplete:     q.Incomplete,
	}
}

// Options engine configuration
type Options struct {
	BookingFee               float64
	SingleServiceThresholdKg float64
	// StrictWeight turns the first-tier fallback into ErrPricingIncomplete
	StrictWeight bool
}
