package tillbook

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/tillbook/date"
)

// Transaction is a double-entry ledger record: Amount is debited to
// DebitAccount and credited to CreditAccount.
type Transaction struct {
	Date          date.Date
	Description   string
	DebitAccount  string
	CreditAccount string
	Amount        Money
}

// Validate checks that every field is present and that both accounts are
// registered.
func (tx Transaction) Validate(accounts *Accounts) error {
	switch {
	case tx.Date.IsZero():
		return &FormError{Field: "date", Reason: "is required"}
	case strings.TrimSpace(tx.Description) == "":
		return &FormError{Field: "description", Reason: "is required"}
	case strings.TrimSpace(tx.DebitAccount) == "":
		return &FormError{Field: "debit", Reason: "is required"}
	case strings.TrimSpace(tx.CreditAccount) == "":
		return &FormError{Field: "credit", Reason: "is required"}
	case !tx.Amount.IsPositive():
		return &FormError{Field: "amount", Reason: "must be positive", Err: ErrNotPositive}
	}
	if !accounts.Has(tx.DebitAccount) {
		return &FormError{Field: "debit", Reason: fmt.Sprintf("account %q does not exist", tx.DebitAccount), Err: ErrUnknownAccount}
	}
	if !accounts.Has(tx.CreditAccount) {
		return &FormError{Field: "credit", Reason: fmt.Sprintf("account %q does not exist", tx.CreditAccount), Err: ErrUnknownAccount}
	}
	return nil
}

// MarshalJSON writes the fields in a stable order.
func (tx Transaction) MarshalJSON() ([]byte, error) {
	var w jsonRecord
	w.Field("date", tx.Date)
	w.Field("description", tx.Description)
	w.Field("debitAccount", tx.DebitAccount)
	w.Field("creditAccount", tx.CreditAccount)
	w.Field("amount", tx.Amount)
	return w.MarshalJSON()
}

func (tx *Transaction) UnmarshalJSON(data []byte) error {
	var aux struct {
		Date          date.Date `json:"date"`
		Description   string    `json:"description"`
		DebitAccount  string    `json:"debitAccount"`
		CreditAccount string    `json:"creditAccount"`
		Amount        Money     `json:"amount"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	*tx = Transaction(aux)
	return nil
}

// Ledger is the append-only list of transactions, in insertion order.
type Ledger struct {
	transactions []Transaction
}

// NewLedger returns a ledger holding the given transactions.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{}
	l.transactions = append(l.transactions, txs...)
	return l
}

// Add validates tx against the registered accounts and appends it.
func (l *Ledger) Add(accounts *Accounts, tx Transaction) error {
	tx.Description = strings.TrimSpace(tx.Description)
	tx.DebitAccount = strings.TrimSpace(tx.DebitAccount)
	tx.CreditAccount = strings.TrimSpace(tx.CreditAccount)
	if err := tx.Validate(accounts); err != nil {
		return fmt.Errorf("invalid transaction: %w", err)
	}
	l.transactions = append(l.transactions, tx)
	return nil
}

// Reset removes every transaction.
func (l *Ledger) Reset() { l.transactions = nil }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// All returns the transactions in insertion order.
func (l *Ledger) All() []Transaction {
	out := make([]Transaction, len(l.transactions))
	copy(out, l.transactions)
	return out
}

// Within returns the transactions dated within r, in insertion order.
func (l *Ledger) Within(r date.Range) []Transaction {
	var out []Transaction
	for _, tx := range l.transactions {
		if r.Contains(tx.Date) {
			out = append(out, tx)
		}
	}
	return out
}

// Day groups the transactions of a single date.
type Day struct {
	Date         date.Date
	Transactions []Transaction
}

// ByDay groups transactions by date, sorted by ascending date. Within a day
// the insertion order is kept.
func (l *Ledger) ByDay() []Day {
	index := make(map[date.Date]int)
	var days []Day
	for _, tx := range l.transactions {
		i, ok := index[tx.Date]
		if !ok {
			i = len(days)
			index[tx.Date] = i
			days = append(days, Day{Date: tx.Date})
		}
		days[i].Transactions = append(days[i].Transactions, tx)
	}
	slices.SortStableFunc(days, func(a, b Day) int { return date.Compare(a.Date, b.Date) })
	return days
}
