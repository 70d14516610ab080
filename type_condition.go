package deckbox

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Condition is the physical wear grade of a card, using the deckbox
// vocabulary. The empty string means the export did not specify a grade and
// is treated as Mint/Near Mint for pricing.
type Condition string

const (
	Ungraded      Condition = ""
	Mint          Condition = "Mint"
	NearMint      Condition = "Near Mint"
	LightlyPlayed Condition = "Good (Lightly Played)"
	Played        Condition = "Played"
	HeavilyPlayed Condition = "Heavily Played"
	Poor          Condition = "Poor"
)

// conditionMultipliers discounts a printing's market price by wear grade.
var conditionMultipliers = map[Condition]decimal.Decimal{
	Ungraded:      decimal.New(100, -2), // assume Mint/Near Mint
	Mint:          decimal.New(100, -2),
	NearMint:      decimal.New(100, -2),
	LightlyPlayed: decimal.New(85, -2),
	Played:        decimal.New(70, -2),
	HeavilyPlayed: decimal.New(50, -2),
	Poor:          decimal.New(25, -2),
}

// Multiplier returns the price discount factor for the grade. Grades outside
// the closed deckbox set multiply by 1.00 rather than failing, so a record
// with an unexpected grade still prices as if unworn.
func (c Condition) Multiplier() decimal.Decimal {
	if m, ok := conditionMultipliers[c]; ok {
		return m
	}
	return decimal.New(100, -2)
}

func (c Condition) String() string { return string(c) }

// ParseCondition validates a grade against the closed deckbox set.
func ParseCondition(s string) (Condition, error) {
	c := Condition(s)
	if _, ok := conditionMultipliers[c]; !ok {
		return Ungraded, fmt.Errorf("unknown condition: %q", s)
	}
	return c, nil
}
