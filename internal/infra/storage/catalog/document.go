package catalog

import (
	"encoding/json"

	"github.com/bestbuddies/grooming-booking/internal/domain"
)

// document формат JSONB-документа каталога.
// Тот же формат используется кешем каталога.
type document struct {
	Packages                 []packageDoc       `json:"packages"`
	AddOns                   []addOnDoc         `json:"addOns"`
	SingleServices           []singleServiceDoc `json:"singleServices"`
	WeightBrackets           []weightBracketDoc `json:"weightBrackets"`
	SingleServiceThresholdKg float64            `json:"singleServiceThresholdKg"`
}

type tierDoc struct {
	Label string  `json:"label"`
	Price float64 `json:"price"`
}

type packageDoc struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	PetType  string    `json:"petType,omitempty"`
	Duration int       `json:"duration,omitempty"`
	Tiers    []tierDoc `json:"tiers"`
	Includes []string  `json:"includes,omitempty"`
}

type addOnDoc struct {
	Key   string    `json:"key"`
	Label string    `json:"label"`
	Price float64   `json:"price"`
	Tiers []tierDoc `json:"tiers,omitempty"`
}

type singleServiceDoc struct {
	ID                  string  `json:"id"`
	Label               string  `json:"label"`
	PriceUpToThreshold  float64 `json:"priceUpToThreshold"`
	PriceAboveThreshold float64 `json:"priceAboveThreshold"`
	RequiresWeight      bool    `json:"requiresWeight"`
}

type weightBracketDoc struct {
	Label string  `json:"label"`
	MinKg float64 `json:"minKg"`
	MaxKg float64 `json:"maxKg"`
}

// Encode сериализует каталог в JSON-документ
func Encode(c *domain.Catalog) ([]byte, error) {
	return json.Marshal(toDocument(c))
}

// Decode восстанавливает каталог из JSON-документа
func Decode(raw []byte) (*domain.Catalog, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return fromDocument(doc), nil
}

func toDocument(c *domain.Catalog) document {
	doc := document{SingleServiceThresholdKg: c.SingleServiceThresholdKg}
	for _, p := range c.Packages {
		doc.Packages = append(doc.Packages, packageDoc{
			ID:       p.ID,
			Name:     p.Name,
			PetType:  p.PetType,
			Duration: p.Duration,
			Tiers:    toTierDocs(p.Tiers),
			Includes: p.Includes,
		})
	}
	for _, a := range c.AddOns {
		doc.AddOns = append(doc.AddOns, addOnDoc{Key: a.Key, Label: a.Label, Price: a.Price, Tiers: toTierDocs(a.Tiers)})
	}
	for _, s := range c.SingleServices {
		doc.SingleServices = append(doc.SingleServices, singleServiceDoc(s))
	}
	for _, w := range c.WeightBrackets {
		doc.WeightBrackets = append(doc.WeightBrackets, weightBracketDoc(w))
	}
	return doc
}

func fromDocument(doc document) *domain.Catalog {
	c := &domain.Catalog{SingleServiceThresholdKg: doc.SingleServiceThresholdKg}
	for _, p := range doc.Packages {
		c.Packages = append(c.Packages, domain.Package{
			ID:       p.ID,
			Name:     p.Name,
			PetType:  p.PetType,
			Duration: p.Duration,
			Tiers:    fromTierDocs(p.Tiers),
			Includes: p.Includes,
		})
	}
	for _, a := range doc.AddOns {
		c.AddOns = append(c.AddOns, domain.AddOn{Key: a.Key, Label: a.Label, Price: a.Price, Tiers: fromTierDocs(a.Tiers)})
	}
	for _, s := range doc.SingleServices {
		c.SingleServices = append(c.SingleServices, domain.SingleService(s))
	}
	for _, w := range doc.WeightBrackets {
		c.WeightBrackets = append(c.WeightBrackets, domain.WeightBracket(w))
	}
	return c
}

func toTierDocs(tiers []domain.PriceTier) []tierDoc {
	out := make([]tierDoc, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, tierDoc(t))
	}
	return out
}

func fromTierDocs(tiers []tierDoc) []domain.PriceTier {
	out := make([]domain.PriceTier, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, domain.PriceTier(t))
	}
	return out
}
