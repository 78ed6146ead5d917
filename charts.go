package tillbook

import (
	"fmt"

	"github.com/etnz/tillbook/date"
)

// Slice is a labelled value of a pie chart. Color is a hex RGB string
// without the leading '#'.
type Slice struct {
	Label string
	Value Money
	Color string
}

// Pie is the data of a pie chart.
type Pie struct {
	Title  string
	Slices []Slice
}

// Total returns the sum of the slice values.
func (p Pie) Total() Money {
	total := Money{}
	for _, s := range p.Slices {
		total = total.Add(s.Value)
	}
	return total
}

// Percent returns the share of slice i in the pie, 0 when the total is zero.
func (p Pie) Percent(i int) float64 { return p.Slices[i].Value.Percent(p.Total()) }

// transactionColor picks the slice color of a transaction from the types of
// its accounts.
func transactionColor(accounts *Accounts, tx Transaction) string {
	debit, _ := accounts.Type(tx.DebitAccount)
	credit, _ := accounts.Type(tx.CreditAccount)
	switch {
	case debit == Expense:
		return "ef5350"
	case credit == Revenue:
		return "43a047"
	case debit == Asset:
		return "42a5f5"
	case credit == Liability:
		return "e53935"
	case credit == Equity:
		return "8e24aa"
	default:
		return "90a4ae"
	}
}

var typePalettes = map[AccountType][]string{
	Expense:   {"ff6b6b", "ef5350", "e53935"},
	Liability: {"ff8a80", "ff5252"},
	Revenue:   {"4caf50", "66bb6a"},
	Asset:     {"42a5f5", "29b6f6"},
	Equity:    {"ab47bc", "ba68c8"},
}

// DailyPies returns one pie per transaction date, sorted by date, with a
// slice per transaction labelled by its description.
func DailyPies(accounts *Accounts, ledger *Ledger) []Pie {
	days := ledger.ByDay()
	pies := make([]Pie, 0, len(days))
	for _, day := range days {
		pie := Pie{Title: dayTitle(day.Date)}
		for _, tx := range day.Transactions {
			pie.Slices = append(pie.Slices, Slice{
				Label: tx.Description,
				Value: tx.Amount,
				Color: transactionColor(accounts, tx),
			})
		}
		pies = append(pies, pie)
	}
	return pies
}

func dayTitle(d date.Date) string { return fmt.Sprintf("Transactions on %s", d) }

// AllTimePie returns the pie of the non-zero account balances. Slices are
// labelled "name (type)" and valued by the absolute balance. Colors cycle
// within a palette per account type.
func AllTimePie(accounts *Accounts, ledger *Ledger) Pie {
	pie := Pie{Title: "All-time account balances"}
	used := make(map[AccountType]int)
	for _, b := range Balances(accounts, ledger) {
		v := b.Value()
		if v.IsZero() {
			continue
		}
		palette := typePalettes[b.Type]
		color := "90a4ae"
		if len(palette) > 0 {
			color = palette[used[b.Type]%len(palette)]
			used[b.Type]++
		}
		pie.Slices = append(pie.Slices, Slice{
			Label: fmt.Sprintf("%s (%s)", b.Name, b.Type),
			Value: v.Abs(),
			Color: color,
		})
	}
	return pie
}
