package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tillbook"
	md "github.com/nao1215/markdown"
)

// AccountsMarkdown renders the chart of accounts.
func AccountsMarkdown(accounts []tillbook.Account) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Accounts")
	if len(accounts) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Name", "Type"},
		Rows:      [][]string{},
	}
	for _, a := range accounts {
		table.Rows = append(table.Rows, []string{a.Name, a.Type.String()})
	}
	doc.Table(table)
	return doc.String()
}

// TransactionsMarkdown renders a list of transactions.
func TransactionsMarkdown(title string, txs []tillbook.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(txs) == 0 {
		doc.PlainText("No transactions.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Description", "Debit", "Credit", "Amount"},
		Rows:      [][]string{},
	}
	total := tillbook.Money{}
	for _, tx := range txs {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(), tx.Description, tx.DebitAccount, tx.CreditAccount, tx.Amount.Format(currency),
		})
		total = total.Add(tx.Amount)
	}
	doc.Table(table)
	doc.PlainText(fmt.Sprintf("%d transactions, total %s", len(txs), total.Format(currency)))
	return doc.String()
}

// BalancesMarkdown renders the all-time balances of the accounts, grouped by
// account type.
func BalancesMarkdown(balances []tillbook.Balance, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("All-time Balances")
	if len(balances) == 0 {
		doc.PlainText("No accounts yet.")
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Account", "Type", "Debit", "Credit", "Balance"},
		Rows:      [][]string{},
	}
	for _, typ := range tillbook.AccountTypes {
		for _, b := range balances {
			if b.Type != typ {
				continue
			}
			table.Rows = append(table.Rows, []string{
				b.Name, b.Type.String(), b.Debit.Format(currency), b.Credit.Format(currency), b.Value().Format(currency),
			})
		}
	}
	doc.Table(table)
	return doc.String()
}

// CashMarkdown renders the cash on hand and the running cash table.
func CashMarkdown(cashOnHand tillbook.Money, rows []tillbook.CashRow, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Cash")
	doc.PlainText(fmt.Sprintf("Cash on Hand: %s", cashOnHand.Format(currency)))
	if len(rows) == 0 {
		return doc.String()
	}
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Date", "Description", "Debit", "Credit", "Amount", "Balance"},
		Rows:      [][]string{},
	}
	for _, r := range rows {
		table.Rows = append(table.Rows, []string{
			r.Date.String(), r.Description, r.DebitAccount, r.CreditAccount, r.Amount.Format(currency), r.Balance.Format(currency),
		})
	}
	doc.Table(table)
	return doc.String()
}

// ImportMarkdown renders the outcome of a spreadsheet import.
func ImportMarkdown(res tillbook.ImportResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Import")
	doc.PlainText(fmt.Sprintf("Imported %d transactions, skipped %d rows.", res.Imported, len(res.Skipped)))
	if len(res.Skipped) > 0 {
		items := make([]string, 0, len(res.Skipped))
		for _, s := range res.Skipped {
			items = append(items, fmt.Sprintf("row %d: %v", s.Line, s.Err))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}
