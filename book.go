package tillbook

import (
	"fmt"

	"github.com/etnz/tillbook/date"
	"github.com/sirupsen/logrus"
)

// Collection names a persisted part of the book.
type Collection string

const (
	AccountsCollection     Collection = "accounts"
	TransactionsCollection Collection = "transactions"
	StockCollection        Collection = "stock"
	HistoryCollection      Collection = "stock_history"
	ShiftCollection        Collection = "shift"
	CashCollection         Collection = "cash_on_hand"
	SalesCollection        Collection = "sales_sheet"
)

// Collections lists every collection in save order.
var Collections = []Collection{
	AccountsCollection,
	TransactionsCollection,
	StockCollection,
	HistoryCollection,
	ShiftCollection,
	CashCollection,
	SalesCollection,
}

// Book aggregates the state of the shop. Every mutation marks the collections
// it touched so that only those are saved.
type Book struct {
	Accounts   *Accounts
	Ledger     *Ledger
	Stock      *Stock
	Shift      ShiftReport
	CashOnHand Money
	Sales      *SalesSheet

	log   logrus.FieldLogger
	dirty map[Collection]bool
}

// NewBook returns an empty book.
func NewBook(log logrus.FieldLogger) *Book {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Book{
		Accounts: NewAccounts(),
		Ledger:   NewLedger(),
		Stock:    NewStock(nil, nil),
		Sales:    NewSalesSheet(),
		log:      log,
		dirty:    make(map[Collection]bool),
	}
}

func (b *Book) touch(cs ...Collection) {
	for _, c := range cs {
		b.dirty[c] = true
	}
}

// Dirty returns the collections modified since the book was loaded or saved.
func (b *Book) Dirty() []Collection {
	var out []Collection
	for _, c := range Collections {
		if b.dirty[c] {
			out = append(out, c)
		}
	}
	return out
}

// AddAccount registers a new account.
func (b *Book) AddAccount(name string, typ AccountType) (Account, error) {
	acc, err := b.Accounts.Add(name, typ)
	if err != nil {
		return Account{}, err
	}
	b.touch(AccountsCollection)
	return acc, nil
}

// ClearAccounts removes every account. Transactions are left untouched.
func (b *Book) ClearAccounts() {
	b.Accounts.Clear()
	b.touch(AccountsCollection)
}

// AddTransaction validates and appends a transaction.
func (b *Book) AddTransaction(tx Transaction) error {
	if err := b.Ledger.Add(b.Accounts, tx); err != nil {
		return err
	}
	b.touch(TransactionsCollection)
	return nil
}

// ImportTransactions appends the valid rows and logs a warning for each
// skipped one.
func (b *Book) ImportTransactions(rows []ImportRow) ImportResult {
	res := b.Ledger.Import(b.Accounts, rows)
	for _, s := range res.Skipped {
		b.log.WithFields(logrus.Fields{"row": s.Line, "reason": s.Err}).Warn("skip-import-row")
	}
	if res.Imported > 0 {
		b.touch(TransactionsCollection)
	}
	return res
}

// ResetTransactions removes every transaction.
func (b *Book) ResetTransactions() {
	b.Ledger.Reset()
	b.touch(TransactionsCollection)
}

// Balances returns the all-time balance of every account.
func (b *Book) Balances() []Balance { return Balances(b.Accounts, b.Ledger) }

// AddStockItem registers a new stock item.
func (b *Book) AddStockItem(name string, quantity Quantity, unitPrice Money) (StockItem, error) {
	item, err := b.Stock.AddItem(name, quantity, unitPrice)
	if err != nil {
		return StockItem{}, err
	}
	b.touch(StockCollection)
	return item, nil
}

// CorrectStock overwrites the quantity of an item and returns the variance.
func (b *Book) CorrectStock(name string, counted Quantity) (Quantity, error) {
	v, err := b.Stock.Correct(name, counted)
	if err != nil {
		return Quantity{}, err
	}
	b.touch(StockCollection)
	return v, nil
}

// RecordClosing records the closing count of an item and rolls it over.
func (b *Book) RecordClosing(name string, closing Quantity, on date.Date) (StockHistoryEntry, error) {
	entry, err := b.Stock.RecordClosing(name, closing, on)
	if err != nil {
		return StockHistoryEntry{}, err
	}
	b.touch(StockCollection, HistoryCollection)
	return entry, nil
}

// ResetStock removes every item and the history.
func (b *Book) ResetStock() {
	b.Stock.Reset()
	b.touch(StockCollection, HistoryCollection)
}

// GenerateShift reconciles the shift and keeps it as the latest report.
func (b *Book) GenerateShift(in ShiftInput) (ShiftReport, error) {
	r, err := Reconcile(in)
	if err != nil {
		return ShiftReport{}, err
	}
	b.Shift = r
	b.touch(ShiftCollection)
	return r, nil
}

// SetCashOnHand sets the cash the cash table starts from.
func (b *Book) SetCashOnHand(v Money) error {
	if err := ValidateCashOnHand(v); err != nil {
		return err
	}
	b.CashOnHand = v
	b.touch(CashCollection)
	return nil
}

// CashTable returns the running cash balance after each transaction.
func (b *Book) CashTable() []CashRow { return CashTable(b.CashOnHand, b.Accounts, b.Ledger) }

// AddSale appends a line to the sales sheet.
func (b *Book) AddSale(l SalesLine) error {
	if err := b.Sales.Add(l); err != nil {
		return err
	}
	b.touch(SalesCollection)
	return nil
}

// SetSale replaces the sales line at index i.
func (b *Book) SetSale(i int, l SalesLine) error {
	if err := b.Sales.Set(i, l); err != nil {
		return err
	}
	b.touch(SalesCollection)
	return nil
}

// DeleteSale removes the sales line at index i.
func (b *Book) DeleteSale(i int) error {
	if err := b.Sales.Delete(i); err != nil {
		return err
	}
	b.touch(SalesCollection)
	return nil
}

// Summary is an overview of the book.
type Summary struct {
	Accounts     int
	Transactions int
	Items        int
	StockValue   Money
	CashOnHand   Money
}

// Summary returns an overview of the book.
func (b *Book) Summary() Summary {
	return Summary{
		Accounts:     b.Accounts.Len(),
		Transactions: b.Ledger.Len(),
		Items:        len(b.Stock.items),
		StockValue:   b.Stock.TotalValue(),
		CashOnHand:   b.CashOnHand,
	}
}

func (b *Book) String() string {
	s := b.Summary()
	return fmt.Sprintf("%d accounts, %d transactions, %d stock items", s.Accounts, s.Transactions, s.Items)
}
