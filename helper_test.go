package tillbook

import (
	"io"
	"testing"

	"github.com/etnz/tillbook/date"
	"github.com/sirupsen/logrus"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// newShop returns a book with a small chart of accounts.
func newShop(t *testing.T) *Book {
	t.Helper()
	b := NewBook(quietLogger())
	for _, a := range []Account{
		{"Cash", Asset},
		{"Loan", Liability},
		{"Capital", Equity},
		{"Sales", Revenue},
		{"Rent", Expense},
		{"Supplies", Expense},
	} {
		if _, err := b.AddAccount(a.Name, a.Type); err != nil {
			t.Fatalf("AddAccount(%q): %v", a.Name, err)
		}
	}
	return b
}

// tx is a shorthand to build transactions in tests.
func tx(on, desc, debit, credit string, amount float64) Transaction {
	return Transaction{
		Date:          date.MustParse(on),
		Description:   desc,
		DebitAccount:  debit,
		CreditAccount: credit,
		Amount:        M(amount),
	}
}

func mustAdd(t *testing.T, b *Book, txs ...Transaction) {
	t.Helper()
	for _, x := range txs {
		if err := b.AddTransaction(x); err != nil {
			t.Fatalf("AddTransaction(%v): %v", x.Description, err)
		}
	}
}
