package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidate(t *testing.T) {
	valid := &Catalog{
		Packages: []Package{{ID: "bath", Tiers: []PriceTier{{Label: "Small", Price: 30}}}},
		AddOns:   []AddOn{{Key: "teeth", Price: 10}},
	}
	require.NoError(t, valid.Validate())

	cases := map[string]*Catalog{
		"empty":         {},
		"missing id":    {Packages: []Package{{Tiers: []PriceTier{{Price: 1}}}}},
		"duplicate id":  {Packages: []Package{{ID: "a", Tiers: []PriceTier{{Price: 1}}}, {ID: "a", Tiers: []PriceTier{{Price: 2}}}}},
		"no tiers":      {Packages: []Package{{ID: "a"}}},
		"add-on no key": {Packages: valid.Packages, AddOns: []AddOn{{Label: "x"}}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, c.Validate(), ErrInvalidInput)
		})
	}
}

func TestFindWeightBracket_IgnoresDashStyle(t *testing.T) {
	c := &Catalog{WeightBrackets: []WeightBracket{{Label: "10–20 kg", MinKg: 10, MaxKg: 20}}}
	b, ok := c.FindWeightBracket("10-20kg")
	require.True(t, ok)
	assert.Equal(t, 20.0, b.MaxKg)
}
