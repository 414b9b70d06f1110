package booking

import (
	"encoding/json"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Формат JSONB-колонок таблицы bookings

type petJSON struct {
	Name          string `json:"name"`
	Species       string `json:"species,omitempty"`
	Breed         string `json:"breed,omitempty"`
	WeightBracket string `json:"weightBracket,omitempty"`
}

type addOnJSON struct {
	ID    string  `json:"id,omitempty"`
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type costJSON struct {
	PackagePrice   float64     `json:"packagePrice"`
	ServicesTotal  float64     `json:"servicesTotal"`
	AddOns         []addOnJSON `json:"addOns"`
	AddOnsTotal    float64     `json:"addOnsTotal"`
	Subtotal       float64     `json:"subtotal"`
	BookingFee     float64     `json:"bookingFee"`
	BalanceOnVisit float64     `json:"balanceOnVisit"`
	TotalAmount    float64     `json:"totalAmount"`
	WeightLabel    string      `json:"weightLabel,omitempty"`
	Incomplete     bool        `json:"incomplete"`
	Locked         bool        `json:"locked"`
}

func encodePet(p domain.Pet) ([]byte, error) {
	return json.Marshal(petJSON{Name: p.Name, Species: p.Species, Breed: p.Breed, WeightBracket: p.WeightBracket})
}

func decodePet(raw []byte) (domain.Pet, error) {
	var p petJSON
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &p); err != nil {
			return domain.Pet{}, err
		}
	}
	return domain.Pet{Name: p.Name, Species: p.Species, Breed: p.Breed, WeightBracket: p.WeightBracket}, nil
}

func toAddOnsJSON(addOns []domain.SelectedAddOn) []addOnJSON {
	out := make([]addOnJSON, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, addOnJSON{ID: a.ID, Key: a.Key, Label: a.Label, Price: a.Price})
	}
	return out
}

func fromAddOnsJSON(addOns []addOnJSON) []domain.SelectedAddOn {
	if len(addOns) == 0 {
		return nil
	}
	out := make([]domain.SelectedAddOn, 0, len(addOns))
	for _, a := range addOns {
		out = append(out, domain.SelectedAddOn{ID: a.ID, Key: a.Key, Label: a.Label, Price: a.Price})
	}
	return out
}

func encodeAddOns(addOns []domain.SelectedAddOn) ([]byte, error) {
	return json.Marshal(toAddOnsJSON(addOns))
}

func decodeAddOns(raw []byte) ([]domain.SelectedAddOn, error) {
	var a []addOnJSON
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &a); err != nil {
			return nil, err
		}
	}
	return fromAddOnsJSON(a), nil
}

func encodeCost(c domain.CostSnapshot) ([]byte, error) {
	return json.Marshal(costJSON{
		PackagePrice:   c.PackagePrice,
		ServicesTotal:  c.ServicesTotal,
		AddOns:         toAddOnsJSON(c.AddOns),
		AddOnsTotal:    c.AddOnsTotal,
		Subtotal:       c.Subtotal,
		BookingFee:     c.BookingFee,
		BalanceOnVisit: c.BalanceOnVisit,
		TotalAmount:    c.TotalAmount,
		WeightLabel:    c.WeightLabel,
		Incomplete:     c.Incomplete,
		Locked:         c.Locked,
	})
}

func decodeCost(raw []byte) (domain.CostSnapshot, error) {
	var c costJSON
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &c); err != nil {
			return domain.CostSnapshot{}, err
		}
	}
	return domain.CostSnapshot{
		PackagePrice:   c.PackagePrice,
		ServicesTotal:  c.ServicesTotal,
		AddOns:         fromAddOnsJSON(c.AddOns),
		AddOnsTotal:    c.AddOnsTotal,
		Subtotal:       c.Subtotal,
		BookingFee:     c.BookingFee,
		BalanceOnVisit: c.BalanceOnVisit,
		TotalAmount:    c.TotalAmount,
		WeightLabel:    c.WeightLabel,
		Incomplete:     c.Incomplete,
		Locked:         c.Locked,
	}, nil
}
