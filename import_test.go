package tillbook

import (
	"testing"
)

func TestRowsFromTable(t *testing.T) {
	table := [][]string{
		{"AMOUNT", "date", "Description", "debit account", "Credit Account", "Notes"},
		{"250", "2025-01-02", "rent", "Rent", "Cash", "paid late"},
		{"", "", "", ""},
		{"10", "45659"},
	}
	rows := RowsFromTable(table)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (blank rows ignored)", len(rows))
	}
	first := rows[0]
	if first.Line != 2 || first.Amount != "250" || first.Date != "2025-01-02" || first.DebitAccount != "Rent" || first.CreditAccount != "Cash" {
		t.Errorf("row = %+v", first)
	}
	if rows[1].Line != 4 || rows[1].Description != "" {
		t.Errorf("short row = %+v", rows[1])
	}
	if RowsFromTable(nil) != nil {
		t.Error("RowsFromTable(nil) != nil")
	}
}

func TestBook_ImportTransactions(t *testing.T) {
	b := newShop(t)
	rows := RowsFromTable([][]string{
		{"Date", "Description", "Debit Account", "Credit Account", "Amount"},
		{"2025-01-02", "rent", "Rent", "Cash", "250"},
		{"2025-01-02", "no debit", "", "Cash", "10"},
		{"2025-01-03", "no credit", "Rent", "", "10"},
		{"2025-01-03", "ghost", "Fuel", "Cash", "10"},
		{"45660", "sale", "Cash", "Sales", "99.5"},
	})
	res := b.ImportTransactions(rows)
	if res.Imported != 2 {
		t.Errorf("Imported = %d, want 2", res.Imported)
	}
	if len(res.Skipped) != 3 {
		t.Fatalf("Skipped = %d, want 3", len(res.Skipped))
	}
	if res.Skipped[0].Line != 3 {
		t.Errorf("first skipped line = %d, want 3", res.Skipped[0].Line)
	}
	if res.Err() == nil {
		t.Error("Err() = nil with skipped rows")
	}
	for _, x := range b.Ledger.All() {
		if x.DebitAccount == "" || x.CreditAccount == "" || x.Description == "ghost" {
			t.Errorf("invalid row imported: %+v", x)
		}
	}
	if got := b.Ledger.All()[1].Date.String(); got != "2025-01-03" {
		t.Errorf("serial date = %s, want 2025-01-03", got)
	}
	if len(b.Dirty()) != 2 { // accounts from newShop, transactions from the import
		t.Errorf("Dirty = %v", b.Dirty())
	}
}

func TestBook_ImportTransactions_CellDates(t *testing.T) {
	b := newShop(t)
	rows := RowsFromTable([][]string{
		{"Date", "Description", "Debit Account", "Credit Account", "Amount"},
		{"15/01/2025", "day first", "Cash", "Sales", "10"},
		{"01/16/2025", "month first", "Cash", "Sales", "10"},
		{"05/01/2025", "ambiguous", "Cash", "Sales", "10"},
		{"2025", "year only", "Cash", "Sales", "10"},
	})
	res := b.ImportTransactions(rows)
	if res.Imported != 2 {
		t.Errorf("Imported = %d, want 2", res.Imported)
	}
	var skipped []int
	for _, s := range res.Skipped {
		skipped = append(skipped, s.Line)
	}
	if len(skipped) != 2 || skipped[0] != 4 || skipped[1] != 5 {
		t.Errorf("skipped lines = %v, want [4 5]", skipped)
	}
	want := []string{"2025-01-15", "2025-01-16"}
	for i, x := range b.Ledger.All() {
		if got := x.Date.String(); i < len(want) && got != want[i] {
			t.Errorf("%s date = %s, want %s", x.Description, got, want[i])
		}
	}
}
