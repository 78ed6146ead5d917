package tillbook

import (
	"errors"
	"testing"
)

func TestCashTable(t *testing.T) {
	b := newShop(t)
	if err := b.SetCashOnHand(M(500)); err != nil {
		t.Fatal(err)
	}
	mustAdd(t, b,
		tx("2025-01-01", "sale", "Cash", "Sales", 300),
		tx("2025-01-01", "rent", "Rent", "Cash", 200),
		tx("2025-01-02", "loan repayment", "Loan", "Cash", 50),
		tx("2025-01-02", "paper", "Supplies", "Cash", 25.5),
	)
	rows := b.CashTable()
	want := []float64{500, 300, 300, 274.5}
	if len(rows) != len(want) {
		t.Fatalf("got %d rows, want %d", len(rows), len(want))
	}
	for i, w := range want {
		if !rows[i].Balance.Equal(M(w)) {
			t.Errorf("row %d (%s) balance = %v, want %v", i, rows[i].Description, rows[i].Balance, w)
		}
	}
}

func TestSetCashOnHand_Negative(t *testing.T) {
	b := NewBook(quietLogger())
	if err := b.SetCashOnHand(M(-1)); !errors.Is(err, ErrNegative) {
		t.Errorf("error = %v, want ErrNegative", err)
	}
	if !b.CashOnHand.IsZero() {
		t.Errorf("CashOnHand = %v, want unchanged", b.CashOnHand)
	}
}
