package pricing

import (
	"fmt"
	"math"
	"strings"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// Engine computes booking costs from the catalog
type Engine struct {
	opts Options
}

// NewEngine создает движок расчёта стоимости
func NewEngine(opts Options) *Engine {
	if opts.SingleServiceThresholdKg <= 0 {
		opts.SingleServiceThresholdKg = domain.DefaultSingleServiceThresholdKg
	}
	if opts.BookingFee < 0 {
		opts.BookingFee = 0
	}
	return &Engine{opts: opts}
}

// BookingFee returns the configured prepaid fee
func (e *Engine) BookingFee() float64 {
	return e.opts.BookingFee
}

// Quote prices a selection against the catalog
func (e *Engine) Quote(catalog *domain.Catalog, sel Selection) (*Quote, error) {
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog is not loaded", domain.ErrPricingIncomplete)
	}

	q := &Quote{WeightLabel: sel.WeightBracket}

	if sel.PackageID == domain.SingleServicePackageID {
		total, err := e.servicesTotal(catalog, sel, q)
		if err != nil {
			return nil, err
		}
		q.ServicesTotal = total
	} else {
		pkg, ok := catalog.FindPackage(sel.PackageID)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrPackageNotFound, sel.PackageID)
		}
		price, err := e.tierPrice(pkg.Tiers, sel.WeightBracket, "package "+pkg.ID, q)
		if err != nil {
			return nil, err
		}
		q.PackagePrice = price
	}

	for _, key := range sel.AddOnKeys {
		addOn, err := e.resolveAddOn(catalog, key, sel.WeightBracket, q)
		if err != nil {
			return nil, err
		}
		q.AddOns = append(q.AddOns, addOn)
		q.AddOnsTotal += addOn.Price
	}

	q.Subtotal = round(q.PackagePrice + q.ServicesTotal + q.AddOnsTotal)
	q.BookingFee = e.opts.BookingFee
	q.BalanceOnVisit = balance(q.Subtotal, q.BookingFee)
	q.TotalAmount = q.Subtotal

	return q, nil
}

// ResolveAddOn prices a single add-on for an in-service edit
func (e *Engine) ResolveAddOn(catalog *domain.Catalog, key, weightBracket string) (domain.SelectedAddOn, error) {
	if catalog == nil {
		return domain.SelectedAddOn{}, fmt.Errorf("%w: catalog is not loaded", domain.ErrPricingIncomplete)
	}
	return e.resolveAddOn(catalog, key, weightBracket, &Quote{})
}

// ApplyQuote stores a fresh quote on the booking. The captured base price is
// reset so in-service add-ons are re-based on the new subtotal.
func (e *Engine) ApplyQuote(b *domain.Booking, q *Quote) {
	b.Cost = q.Snapshot()
	b.BasePrice = nil
	b.TotalPrice = b.Cost.Subtotal
	if len(b.AddOns) > 0 {
		e.RecalculateAddOns(b)
	}
}

// RecalculateAddOns recomputes the total after an add-on edit.
// The base price is taken from the captured subtotal on the first call only.
func (e *Engine) RecalculateAddOns(b *domain.Booking) {
	if b.BasePrice == nil {
		base := b.Cost.Subtotal
		b.BasePrice = &base
	}
	b.TotalPrice = round(*b.BasePrice + b.AddOnsSum())
	b.Cost.TotalAmount = b.TotalPrice
	b.Cost.BalanceOnVisit = balance(b.TotalPrice, b.Cost.BookingFee)
}

// Consistent reports whether the booking satisfies total = base + add-ons
func Consistent(b *domain.Booking) bool {
	base := b.Cost.Subtotal
	if b.BasePrice != nil {
		base = *b.BasePrice
	}
	return math.Abs(b.TotalPrice-(base+b.AddOnsSum())) < 0.005
}

func (e *Engine) tierPrice(tiers []domain.PriceTier, weight, subject string, q *Quote) (float64, error) {
	if len(tiers) == 0 {
		q.flag(fmt.Sprintf("%s has no price tiers", subject))
		if e.opts.StrictWeight {
			return 0, fmt.Errorf("%w: %s has no price tiers", domain.ErrPricingIncomplete, subject)
		}
		return 0, nil
	}

	if strings.TrimSpace(weight) != "" {
		for _, tier := range tiers {
			if domain.SameWeightLabel(tier.Label, weight) {
				return tier.Price, nil
			}
		}
	}

	if e.opts.StrictWeight {
		return 0, fmt.Errorf("%w: %s has no tier for weight %q", domain.ErrPricingIncomplete, subject, weight)
	}

	// Документированный fallback: первый тариф пакета, цена не финальная
	q.flag(fmt.Sprintf("%s priced at first tier %q: weight %q not matched", subject, tiers[0].Label, weight))
	return tiers[0].Price, nil
}

func (e *Engine) servicesTotal(catalog *domain.Catalog, sel Selection, q *Quote) (float64, error) {
	if len(sel.SingleServiceIDs) == 0 {
		q.flag("no single services selected")
		return 0, nil
	}

	large, known := e.weightCategory(catalog, sel.WeightBracket)

	var total float64
	for _, id := range sel.SingleServiceIDs {
		svc, ok := catalog.FindSingleService(id)
		if !ok {
			return 0, fmt.Errorf("%w: unknown single service %q", domain.ErrInvalidInput, id)
		}

		if !known {
			if svc.RequiresWeight {
				if e.opts.StrictWeight {
					return 0, fmt.Errorf("%w: service %q requires weight", domain.ErrPricingIncomplete, id)
				}
				q.flag(fmt.Sprintf("service %s requires weight, counted as 0", id))
				continue
			}
			total += svc.PriceUpToThreshold
			continue
		}

		if large {
			total += svc.PriceAboveThreshold
		} else {
			total += svc.PriceUpToThreshold
		}
	}
	return total, nil
}

// weightCategory returns (above threshold, bracket known)
func (e *Engine) weightCategory(catalog *domain.Catalog, label string) (bool, bool) {
	if strings.TrimSpace(label) == "" {
		return false, false
	}
	bracket, ok := catalog.FindWeightBracket(label)
	if !ok {
		return false, false
	}
	threshold := e.opts.SingleServiceThresholdKg
	if catalog.SingleServiceThresholdKg > 0 {
		threshold = catalog.SingleServiceThresholdKg
	}
	return bracket.MinKg >= threshold, true
}

func (e *Engine) resolveAddOn(catalog *domain.Catalog, key, weight string, q *Quote) (domain.SelectedAddOn, error) {
	addOn, ok := catalog.FindAddOn(key)
	if !ok {
		return domain.SelectedAddOn{}, fmt.Errorf("%w: unknown add-on %q", domain.ErrInvalidInput, key)
	}

	price := addOn.Price
	if len(addOn.Tiers) > 0 {
		p, err := e.tierPrice(addOn.Tiers, weight, "add-on "+addOn.Key, q)
		if err != nil {
			return domain.SelectedAddOn{}, err
		}
		price = p
	}

	return domain.SelectedAddOn{Key: addOn.Key, Label: addOn.Label, Price: price}, nil
}

func (q *Quote) flag(warning string) {
	q.Incomplete = true
	q.Warnings = append(q.Warnings, warning)
}

func balance(total, fee float64) float64 {
	return round(math.Max(0, total-fee))
}

func round(v float64) float64 {
	return math.Round(v*100) / 100
}
