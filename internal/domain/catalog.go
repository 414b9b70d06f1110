package domain

import (
	"fmt"
	"strings"
)

// PriceTier price for one weight bracket
type PriceTier struct {
	Label string
	Price float64
}

// Package a grooming package with weight-tiered pricing
type Package struct {
	ID       string
	Name     string
	PetType  string // dog / cat / any
	Duration int    // minutes
	Tiers    []PriceTier
	Includes []string
}

// AddOn an extra that can be added to a booking
type AddOn struct {
	Key   string
	Label string
	Price float64
	Tiers []PriceTier // optional size-dependent pricing
}

// SingleService an a-la-carte service priced by weight category
type SingleService struct {
	ID                  string
	Label               string
	PriceUpToThreshold  float64
	PriceAboveThreshold float64
	RequiresWeight      bool
}

// WeightBracket a named weight range used by the booking form
type WeightBracket struct {
	Label string
	MinKg float64
	MaxKg float64 // 0 means unbounded
}

// Catalog all pricing inputs
type Catalog struct {
	Packages                 []Package
	AddOns                   []AddOn
	SingleServices           []SingleService
	WeightBrackets           []WeightBracket
	SingleServiceThresholdKg float64
}

// Validate minimal shape checks: every package has an id and at least one price tier
func (c *Catalog) Validate() error {
	if len(c.Packages) == 0 {
		return fmt.Errorf("%w: catalog has no packages", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(c.Packages))
	for _, p := range c.Packages {
		if p.ID == "" {
			return fmt.Errorf("%w: package without id", ErrInvalidInput)
		}
		if seen[p.ID] {
			return fmt.Errorf("%w: duplicate package %s", ErrInvalidInput, p.ID)
		}
		seen[p.ID] = true
		if len(p.Tiers) == 0 {
			return fmt.Errorf("%w: package %s has no price tiers", ErrInvalidInput, p.ID)
		}
	}
	for _, a := range c.AddOns {
		if a.Key == "" {
			return fmt.Errorf("%w: add-on without key", ErrInvalidInput)
		}
	}
	return nil
}

// FindPackage looks a package up by id
func (c *Catalog) FindPackage(id string) (*Package, bool) {
	for i := range c.Packages {
		if c.Packages[i].ID == id {
			return &c.Packages[i], true
		}
	}
	return nil, false
}

// FindAddOn looks an add-on up by key
func (c *Catalog) FindAddOn(key string) (*AddOn, bool) {
	norm := strings.ToLower(strings.TrimSpace(key))
	for i := range c.AddOns {
		if strings.ToLower(c.AddOns[i].Key) == norm {
			return &c.AddOns[i], true
		}
	}
	return nil, false
}

// FindSingleService looks a single service up by id
func (c *Catalog) FindSingleService(id string) (*SingleService, bool) {
	for i := range c.SingleServices {
		if c.SingleServices[i].ID == id {
			return &c.SingleServices[i], true
		}
	}
	return nil, false
}

// FindWeightBracket looks a bracket up by its label
func (c *Catalog) FindWeightBracket(label string) (*WeightBracket, bool) {
	for i := range c.WeightBrackets {
		if SameWeightLabel(c.WeightBrackets[i].Label, label) {
			return &c.WeightBrackets[i], true
		}
	}
	return nil, false
}

// SameWeightLabel compares weight labels ignoring case, spaces and dash style
func SameWeightLabel(a, b string) bool {
	return normalizeWeightLabel(a) == normalizeWeightLabel(b)
}

func normalizeWeightLabel(label string) string {
	r := strings.NewReplacer("–", "-", "—", "-", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(label)))
}
