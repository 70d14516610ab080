package deckbox

import (
	"fmt"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Price represents an optional monetary value in USD, the currency deckbox
// exports use. The zero value is "unknown": a price that was absent from the
// export or failed to parse. Unknown is distinct from zero dollars.
type Price struct {
	value decimal.Decimal
	known bool
}

// P builds a known price from a numeric value.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Price {
	return Price{value: newDecimal(value), known: true}
}

// ParsePrice parses a price cell from an export. A leading currency symbol
// is stripped before decimal parsing.
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if s == "" {
		return Price{}, fmt.Errorf("empty price")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("invalid price %q: %w", s, err)
	}
	return Price{value: d, known: true}, nil
}

// Known reports whether the price carries a value.
func (p Price) Known() bool { return p.known }

// Decimal returns the underlying exact value. It is zero when the price is
// unknown.
func (p Price) Decimal() decimal.Decimal { return p.value }

func (p Price) IsZero() bool     { return p.value.IsZero() }
func (p Price) IsNegative() bool { return p.value.IsNegative() }
func (p Price) IsPositive() bool { return p.value.IsPositive() }

// Equal reports value equality; two unknown prices are equal.
func (p Price) Equal(q Price) bool { return p.known == q.known && p.value.Equal(q.value) }

// Add returns p+q. Adding an unknown price is a programming error and
// yields an unknown result so it cannot be mistaken for a real sum.
func (p Price) Add(q Price) Price {
	if !p.known || !q.known {
		return Price{}
	}
	return Price{value: p.value.Add(q.value), known: true}
}

// Sub returns p-q with the same unknown propagation as Add.
func (p Price) Sub(q Price) Price {
	if !p.known || !q.known {
		return Price{}
	}
	return Price{value: p.value.Sub(q.value), known: true}
}

// MulCount scales a per-unit price by an owned quantity. Counts may be
// negative for diff records.
func (p Price) MulCount(n int) Price {
	if !p.known {
		return Price{}
	}
	return Price{value: p.value.Mul(decimal.NewFromInt(int64(n))), known: true}
}

// MulDecimal scales the price by an exact factor, typically a condition
// multiplier.
func (p Price) MulDecimal(d decimal.Decimal) Price {
	if !p.known {
		return Price{}
	}
	return Price{value: p.value.Mul(d), known: true}
}

// usd returns the USD currency definition, used for formatting only.
func usd() money.Currency {
	// the Money constructor is the only way to get a never-nil currency.
	return *money.New(0, money.USD).Currency()
}

// String formats the price as a USD amount, or "n/a" when unknown.
func (p Price) String() string {
	if !p.known {
		return "n/a"
	}
	cur := usd()
	dec := p.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.Round(0).IntPart())
}

// SignedString formats the price with an explicit sign. Zero is rendered
// as "-".
func (p Price) SignedString() string {
	if !p.known {
		return "n/a"
	}
	if p.value.IsZero() {
		return "-"
	}
	if p.value.IsPositive() {
		return "+" + p.String()
	}
	return p.String()
}
