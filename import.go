package tillbook

import (
	"errors"
	"fmt"
	"strings"
)

// ImportSheet is the name of the spreadsheet sheet transactions are imported
// from, matched case-insensitively.
const ImportSheet = "Transactions"

// import column headers, matched case-insensitively.
var importColumns = []string{"date", "description", "debit account", "credit account", "amount"}

// ImportRow is a raw spreadsheet row. Line is the 1-based row number in the
// sheet.
type ImportRow struct {
	Line int
	TransactionForm
}

// SkippedRow is a row that was not imported.
type SkippedRow struct {
	Line int
	Err  error
}

// ImportResult summarizes an import.
type ImportResult struct {
	Imported int
	Skipped  []SkippedRow
}

// Err joins the reasons of the skipped rows.
func (r ImportResult) Err() error {
	errs := make([]error, 0, len(r.Skipped))
	for _, s := range r.Skipped {
		errs = append(errs, fmt.Errorf("row %d: %w", s.Line, s.Err))
	}
	return errors.Join(errs...)
}

// RowsFromTable maps a table whose first row is a header onto import rows.
// Headers are matched case-insensitively; a missing column leaves the field
// empty so that rows fail validation. Blank rows are ignored.
func RowsFromTable(table [][]string) []ImportRow {
	if len(table) == 0 {
		return nil
	}
	col := make(map[string]int)
	for i, h := range table[0] {
		h = strings.ToLower(strings.TrimSpace(h))
		if _, ok := col[h]; !ok {
			col[h] = i
		}
	}
	cell := func(row []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}
	var rows []ImportRow
	for n, row := range table[1:] {
		if strings.TrimSpace(strings.Join(row, "")) == "" {
			continue
		}
		rows = append(rows, ImportRow{
			Line: n + 2,
			TransactionForm: TransactionForm{
				Date:          cell(row, importColumns[0]),
				Description:   cell(row, importColumns[1]),
				DebitAccount:  cell(row, importColumns[2]),
				CreditAccount: cell(row, importColumns[3]),
				Amount:        cell(row, importColumns[4]),
			},
		})
	}
	return rows
}

// Import validates each row like a manually added transaction and appends
// the valid ones. Invalid rows are skipped; the import as a whole never fails.
func (l *Ledger) Import(accounts *Accounts, rows []ImportRow) ImportResult {
	var res ImportResult
	for _, row := range rows {
		tx, err := row.Parse(accounts)
		if err == nil {
			err = l.Add(accounts, tx)
		}
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Line: row.Line, Err: err})
			continue
		}
		res.Imported++
	}
	return res
}
