// Package spreadsheet reads transactions from and writes the book to xlsx
// workbooks.
package spreadsheet

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/tillbook"
	"github.com/xuri/excelize/v2"
)

// ReadTransactions reads the rows of the sheet named "Transactions"
// (case-insensitive) from an xlsx workbook. Cells are read raw so that
// spreadsheet dates come as serial day numbers.
func ReadTransactions(r io.Reader) ([]tillbook.ImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read workbook: %w", err)
	}
	defer f.Close()

	sheet := ""
	for _, name := range f.GetSheetList() {
		if strings.EqualFold(strings.TrimSpace(name), tillbook.ImportSheet) {
			sheet = name
			break
		}
	}
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no %q sheet", tillbook.ImportSheet)
	}
	table, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("cannot read sheet %q: %w", sheet, err)
	}
	return tillbook.RowsFromTable(table), nil
}

// sheet is a named table: a header and rows of cell values.
type sheet struct {
	name   string
	header []any
	rows   [][]any
}

func accountsSheet(b *tillbook.Book) sheet {
	s := sheet{name: "Accounts", header: []any{"Name", "Type"}}
	for _, a := range b.Accounts.All() {
		s.rows = append(s.rows, []any{a.Name, a.Type.String()})
	}
	return s
}

func transactionsSheet(b *tillbook.Book) sheet {
	s := sheet{name: tillbook.ImportSheet, header: []any{"Date", "Description", "Debit Account", "Credit Account", "Amount"}}
	for _, tx := range b.Ledger.All() {
		s.rows = append(s.rows, []any{tx.Date.String(), tx.Description, tx.DebitAccount, tx.CreditAccount, tx.Amount.Float64()})
	}
	return s
}

func stockSheet(b *tillbook.Book) sheet {
	s := sheet{name: "Stock", header: []any{"Name", "Opening (current)", "Unit Price", "Closing (last)", "Value"}}
	for _, it := range b.Stock.Items() {
		var last any = "N/A"
		if it.LastClosing != nil {
			last = it.LastClosing.Float64()
		}
		s.rows = append(s.rows, []any{it.Name, it.Quantity.Float64(), it.UnitPrice.Float64(), last, it.Value().Float64()})
	}
	return s
}

func historySheet(b *tillbook.Book) sheet {
	s := sheet{name: "StockHistory", header: []any{"Date", "Item", "Opening", "Closing", "Consumed", "Value Opening", "Value Closing"}}
	for _, h := range b.Stock.History() {
		s.rows = append(s.rows, []any{
			h.Date.String(), h.Item,
			h.Opening.Float64(), h.Closing.Float64(), h.Consumed.Float64(),
			h.ValueOpening.Float64(), h.ValueClosing.Float64(),
		})
	}
	return s
}

// write builds a workbook made of sheets, in order.
func write(w io.Writer, sheets ...sheet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				return fmt.Errorf("cannot name sheet %q: %w", s.name, err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", s.name, err)
		}
		rows := append([][]any{s.header}, s.rows...)
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(s.name, cell, &row); err != nil {
				return fmt.Errorf("cannot write sheet %q row %d: %w", s.name, r+1, err)
			}
		}
	}
	f.SetActiveSheet(0)
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// WriteWorkbook writes every record of the book: accounts, transactions,
// stock and stock history, one sheet each. The transactions sheet can be
// imported back.
func WriteWorkbook(w io.Writer, b *tillbook.Book) error {
	return write(w, accountsSheet(b), transactionsSheet(b), stockSheet(b), historySheet(b))
}

// WriteStockWorkbook writes the stock items and the stock history.
func WriteStockWorkbook(w io.Writer, b *tillbook.Book) error {
	return write(w, stockSheet(b), historySheet(b))
}
