package tillbook

import "fmt"

// CashRow is a line of the cash table: a transaction and the cash balance
// after it.
type CashRow struct {
	Transaction
	Balance Money
}

// ValidateCashOnHand rejects negative cash amounts.
func ValidateCashOnHand(v Money) error {
	if v.IsNegative() {
		return fmt.Errorf("invalid cash on hand %v: %w", v, ErrNegative)
	}
	return nil
}

// CashTable walks the transactions in order starting from the cash on hand.
// Each transaction debiting an Expense account reduces the running balance by
// its amount; every transaction yields a row.
func CashTable(cashOnHand Money, accounts *Accounts, ledger *Ledger) []CashRow {
	balance := cashOnHand
	rows := make([]CashRow, 0, ledger.Len())
	for _, tx := range ledger.transactions {
		if typ, ok := accounts.Type(tx.DebitAccount); ok && typ == Expense {
			balance = balance.Sub(tx.Amount)
		}
		rows = append(rows, CashRow{Transaction: tx, Balance: balance})
	}
	return rows
}
