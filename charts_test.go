package tillbook

import (
	"math"
	"testing"
)

func TestDailyPies(t *testing.T) {
	b := newShop(t)
	mustAdd(t, b,
		tx("2025-01-02", "rent", "Rent", "Cash", 200),
		tx("2025-01-01", "sale", "Cash", "Sales", 300),
		tx("2025-01-02", "loan", "Cash", "Loan", 100),
		tx("2025-01-02", "repay", "Loan", "Cash", 40),
		tx("2025-01-02", "capital", "Loan", "Capital", 10),
	)
	pies := DailyPies(b.Accounts, b.Ledger)
	if len(pies) != 2 {
		t.Fatalf("got %d pies, want 2", len(pies))
	}
	if got := pies[0].Slices[0]; got.Label != "sale" || got.Color != "43a047" {
		t.Errorf("first day slice = %+v", got)
	}
	wantColors := []string{"ef5350", "42a5f5", "90a4ae", "8e24aa"}
	for i, w := range wantColors {
		if got := pies[1].Slices[i].Color; got != w {
			t.Errorf("slice %q color = %s, want %s", pies[1].Slices[i].Label, got, w)
		}
	}
	if got := pies[1].Percent(0); math.Abs(got-57.142857) > 1e-4 {
		t.Errorf("Percent = %v, want 57.14", got)
	}
}

func TestAllTimePie(t *testing.T) {
	b := newShop(t)
	mustAdd(t, b,
		tx("2025-01-01", "capital", "Cash", "Capital", 1000),
		tx("2025-01-02", "rent", "Rent", "Cash", 200),
		tx("2025-01-02", "paper", "Supplies", "Cash", 50),
	)
	pie := AllTimePie(b.Accounts, b.Ledger)
	want := []Slice{
		{Label: "Cash (Asset)", Value: M(750), Color: "42a5f5"},
		{Label: "Capital (Equity)", Value: M(1000), Color: "ab47bc"},
		{Label: "Rent (Expense)", Value: M(200), Color: "ff6b6b"},
		{Label: "Supplies (Expense)", Value: M(50), Color: "ef5350"},
	}
	if len(pie.Slices) != len(want) {
		t.Fatalf("got %d slices, want %d: %+v", len(pie.Slices), len(want), pie.Slices)
	}
	for i, w := range want {
		got := pie.Slices[i]
		if got.Label != w.Label || !got.Value.Equal(w.Value) || got.Color != w.Color {
			t.Errorf("slice %d = %+v, want %+v", i, got, w)
		}
	}
	if got := (Pie{}).Total(); !got.IsZero() {
		t.Errorf("empty pie total = %v", got)
	}
}
