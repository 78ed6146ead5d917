package tillbook

import (
	"errors"
	"testing"
)

func TestSalesSheet(t *testing.T) {
	s := NewSalesSheet()
	lines := []SalesLine{
		{Product: "Bread", OpeningStock: Q(20), QuantitySold: Q(12), Price: M(4.5)},
		{Product: "Milk", OpeningStock: Q(10), QuantitySold: Q(10), Price: M(12)},
	}
	for _, l := range lines {
		if err := s.Add(l); err != nil {
			t.Fatal(err)
		}
	}
	if got := lines[0].ClosingStock(); !got.Equal(Q(8)) {
		t.Errorf("closing = %v, want 8", got)
	}
	if got := lines[0].Revenue(); !got.Equal(M(54)) {
		t.Errorf("revenue = %v, want 54", got)
	}

	totals := s.Totals()
	if !totals.Opening.Equal(Q(30)) || !totals.Sold.Equal(Q(22)) || !totals.Closing.Equal(Q(8)) || !totals.Revenue.Equal(M(174)) {
		t.Errorf("totals = %+v", totals)
	}

	if err := s.Set(0, SalesLine{Product: "Bread", OpeningStock: Q(20), QuantitySold: Q(5), Price: M(4.5)}); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(1); err != nil {
		t.Fatal(err)
	}
	if s.Len() != 1 || !s.Lines()[0].QuantitySold.Equal(Q(5)) {
		t.Errorf("lines = %+v", s.Lines())
	}
}

func TestSalesSheet_Rejects(t *testing.T) {
	s := NewSalesSheet(SalesLine{Product: "Bread", OpeningStock: Q(1), Price: M(1)})
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"oversold", s.Add(SalesLine{Product: "Milk", OpeningStock: Q(2), QuantitySold: Q(3), Price: M(1)}), ErrOversold},
		{"negative price", s.Add(SalesLine{Product: "Milk", OpeningStock: Q(2), Price: M(-1)}), ErrNegative},
		{"empty product", s.Add(SalesLine{OpeningStock: Q(2)}), ErrEmptyName},
		{"set out of range", s.Set(3, SalesLine{Product: "Milk"}), ErrIndexOutOfRange},
		{"delete out of range", s.Delete(-1), ErrIndexOutOfRange},
	}
	for _, tc := range tests {
		if !errors.Is(tc.err, tc.want) {
			t.Errorf("%s: error = %v, want %v", tc.name, tc.err, tc.want)
		}
	}
	if s.Len() != 1 {
		t.Errorf("Len = %d, want 1", s.Len())
	}
}
