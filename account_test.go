package tillbook

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestAccounts_Add(t *testing.T) {
	a := NewAccounts()
	if _, err := a.Add("  Cash ", Asset); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if !a.Has("Cash") {
		t.Error("Has(Cash) = false after Add with surrounding spaces")
	}

	tests := []struct {
		name string
		typ  AccountType
		want error
	}{
		{"", Asset, ErrEmptyName},
		{"   ", Expense, ErrEmptyName},
		{"Cash", Revenue, ErrDuplicateAccount},
		{"Bank", UnknownAccountType, ErrUnknownType},
	}
	for _, tc := range tests {
		if _, err := a.Add(tc.name, tc.typ); !errors.Is(err, tc.want) {
			t.Errorf("Add(%q, %v) error = %v, want %v", tc.name, tc.typ, err, tc.want)
		}
	}
	if a.Len() != 1 {
		t.Errorf("Len = %d, want 1", a.Len())
	}
}

func TestAccounts_Clear(t *testing.T) {
	b := newShop(t)
	mustAdd(t, b, tx("2025-01-02", "rent", "Rent", "Cash", 100))
	b.ClearAccounts()
	if b.Accounts.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", b.Accounts.Len())
	}
	if b.Ledger.Len() != 1 {
		t.Errorf("Clear removed transactions: got %d, want 1", b.Ledger.Len())
	}
}

func TestParseAccountType(t *testing.T) {
	for _, typ := range AccountTypes {
		got, err := ParseAccountType(typ.String())
		if err != nil || got != typ {
			t.Errorf("ParseAccountType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if got, err := ParseAccountType("expense"); err != nil || got != Expense {
		t.Errorf("ParseAccountType(expense) = %v, %v, want Expense", got, err)
	}
	if _, err := ParseAccountType("Income"); !errors.Is(err, ErrUnknownType) {
		t.Errorf("ParseAccountType(Income) error = %v, want ErrUnknownType", err)
	}
}

func TestAccount_JSON(t *testing.T) {
	data, err := json.Marshal(Account{Name: "Rent", Type: Expense})
	if err != nil {
		t.Fatal(err)
	}
	if want := `{"name":"Rent","type":"Expense"}`; string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}
	var got Account
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if got != (Account{Name: "Rent", Type: Expense}) {
		t.Errorf("Unmarshal = %+v", got)
	}
}
