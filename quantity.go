package tillbook

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Quantity is a counted number of stock units.
type Quantity struct {
	value decimal.Decimal
}

// Q returns the Quantity for value.
func Q[T number](value T) Quantity { return Quantity{value: newDecimal(value)} }

// ParseQuantity parses a quantity like "12" or "2.5".
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", s, err)
	}
	return Quantity{value: v}, nil
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) Float64() float64            { return q.value.InexactFloat64() }
func (q Quantity) String() string              { return q.value.String() }

// SignedString returns the quantity with an explicit "+" for non-negative values.
func (q Quantity) SignedString() string {
	if q.value.IsNegative() {
		return q.value.String()
	}
	return "+" + q.value.String()
}

// MarshalJSON persists the quantity as a plain json number.
func (q Quantity) MarshalJSON() ([]byte, error) { return []byte(q.value.String()), nil }

// UnmarshalJSON accepts both json numbers and strings.
func (q *Quantity) UnmarshalJSON(data []byte) error { return q.value.UnmarshalJSON(data) }
