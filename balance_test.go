package tillbook

import "testing"

func TestBalances(t *testing.T) {
	b := newShop(t)
	mustAdd(t, b,
		tx("2025-01-01", "capital", "Cash", "Capital", 1000),
		tx("2025-01-02", "sale", "Cash", "Sales", 300),
		tx("2025-01-02", "rent", "Rent", "Cash", 250),
		tx("2025-01-03", "paper", "Supplies", "Cash", 20.5),
	)
	want := map[string]Money{
		"Cash":     M(1029.5),
		"Loan":     M(0),
		"Capital":  M(-1000),
		"Sales":    M(-300),
		"Rent":     M(250),
		"Supplies": M(20.5),
	}
	balances := b.Balances()
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d", len(balances), len(want))
	}
	total := Money{}
	for _, bal := range balances {
		if w := want[bal.Name]; !bal.Value().Equal(w) {
			t.Errorf("balance(%s) = %v, want %v", bal.Name, bal.Value(), w)
		}
		total = total.Add(bal.Value())
	}
	if !total.IsZero() {
		t.Errorf("sum of balances = %v, want 0", total)
	}
	if got := balances[0].Name; got != "Cash" {
		t.Errorf("first balance = %q, want registry order", got)
	}
}

func TestBalances_IgnoresUnregistered(t *testing.T) {
	accounts := NewAccounts(Account{"Cash", Asset})
	ledger := NewLedger(tx("2025-01-01", "ghost", "Cash", "Gone", 10))
	got := Balances(accounts, ledger)
	if len(got) != 1 || !got[0].Value().Equal(M(10)) {
		t.Errorf("Balances = %+v, want Cash=10 only", got)
	}
}
