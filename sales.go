package tillbook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// SalesLine is a row of the end-of-shift sales sheet.
type SalesLine struct {
	Product      string
	OpeningStock Quantity
	QuantitySold Quantity
	Price        Money
}

// ClosingStock returns openingStock − quantitySold.
func (l SalesLine) ClosingStock() Quantity { return l.OpeningStock.Sub(l.QuantitySold) }

// Revenue returns quantitySold·price.
func (l SalesLine) Revenue() Money { return l.Price.Mul(l.QuantitySold) }

// Validate rejects empty products, negative values and sales above the
// opening stock.
func (l SalesLine) Validate() error {
	switch {
	case strings.TrimSpace(l.Product) == "":
		return fmt.Errorf("invalid sales line: %w", ErrEmptyName)
	case l.OpeningStock.IsNegative(), l.QuantitySold.IsNegative(), l.Price.IsNegative():
		return fmt.Errorf("invalid sales line %q: %w", l.Product, ErrNegative)
	case l.QuantitySold.GreaterThan(l.OpeningStock):
		return fmt.Errorf("invalid sales line %q: sold %v, opening %v: %w", l.Product, l.QuantitySold, l.OpeningStock, ErrOversold)
	}
	return nil
}

func (l SalesLine) MarshalJSON() ([]byte, error) {
	var w jsonRecord
	w.Field("product", l.Product)
	w.Field("openingStock", l.OpeningStock)
	w.Field("quantitySold", l.QuantitySold)
	w.Field("price", l.Price)
	return w.MarshalJSON()
}

func (l *SalesLine) UnmarshalJSON(data []byte) error {
	var aux struct {
		Product      string   `json:"product"`
		OpeningStock Quantity `json:"openingStock"`
		QuantitySold Quantity `json:"quantitySold"`
		Price        Money    `json:"price"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*l = SalesLine(aux)
	return nil
}

// SalesSheet is the editable end-of-shift sales sheet.
type SalesSheet struct {
	lines []SalesLine
}

// NewSalesSheet returns a sheet holding the given lines.
func NewSalesSheet(lines ...SalesLine) *SalesSheet {
	s := &SalesSheet{}
	s.lines = append(s.lines, lines...)
	return s
}

// Add appends a line.
func (s *SalesSheet) Add(l SalesLine) error {
	l.Product = strings.TrimSpace(l.Product)
	if err := l.Validate(); err != nil {
		return err
	}
	s.lines = append(s.lines, l)
	return nil
}

// Set replaces the line at index i.
func (s *SalesSheet) Set(i int, l SalesLine) error {
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("cannot set sales line %d: %w", i, ErrIndexOutOfRange)
	}
	l.Product = strings.TrimSpace(l.Product)
	if err := l.Validate(); err != nil {
		return err
	}
	s.lines[i] = l
	return nil
}

// Delete removes the line at index i.
func (s *SalesSheet) Delete(i int) error {
	if i < 0 || i >= len(s.lines) {
		return fmt.Errorf("cannot delete sales line %d: %w", i, ErrIndexOutOfRange)
	}
	s.lines = append(s.lines[:i], s.lines[i+1:]...)
	return nil
}

// Lines returns the lines in order.
func (s *SalesSheet) Lines() []SalesLine {
	out := make([]SalesLine, len(s.lines))
	copy(out, s.lines)
	return out
}

// Len returns the number of lines.
func (s *SalesSheet) Len() int { return len(s.lines) }

// SalesTotals sums the sales sheet columns.
type SalesTotals struct {
	Opening Quantity
	Sold    Quantity
	Closing Quantity
	Revenue Money
}

// Totals returns the column totals.
func (s *SalesSheet) Totals() SalesTotals {
	var t SalesTotals
	for _, l := range s.lines {
		t.Opening = t.Opening.Add(l.OpeningStock)
		t.Sold = t.Sold.Add(l.QuantitySold)
		t.Closing = t.Closing.Add(l.ClosingStock())
		t.Revenue = t.Revenue.Add(l.Revenue())
	}
	return t
}
