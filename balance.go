package tillbook

// Balance is the all-time balance of a registered account.
type Balance struct {
	Account
	Debit  Money
	Credit Money
}

// Value returns debits minus credits.
func (b Balance) Value() Money { return b.Debit.Sub(b.Credit) }

// Balances computes, for each registered account in registry order, the sum
// of amounts where it is debited and where it is credited, over all
// transactions. Transactions referring to unregistered accounts are ignored.
func Balances(accounts *Accounts, ledger *Ledger) []Balance {
	index := make(map[string]int, accounts.Len())
	out := make([]Balance, 0, accounts.Len())
	for i, acc := range accounts.All() {
		index[acc.Name] = i
		out = append(out, Balance{Account: acc})
	}
	for _, tx := range ledger.transactions {
		if i, ok := index[tx.DebitAccount]; ok {
			out[i].Debit = out[i].Debit.Add(tx.Amount)
		}
		if i, ok := index[tx.CreditAccount]; ok {
			out[i].Credit = out[i].Credit.Add(tx.Amount)
		}
	}
	return out
}
