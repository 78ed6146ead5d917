package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/date"
	"github.com/etnz/tillbook/renderer"
	"github.com/etnz/tillbook/spreadsheet"
	"github.com/google/subcommands"
)

func txGroup() *group {
	return &group{
		name:     "tx",
		synopsis: "record and list ledger transactions",
		commands: []subcommands.Command{&txAddCmd{}, &txListCmd{}, &txResetCmd{}, &txImportCmd{}},
	}
}

type txAddCmd struct {
	date        string
	description string
	debit       string
	credit      string
	amount      string
}

func (*txAddCmd) Name() string     { return "add" }
func (*txAddCmd) Synopsis() string { return "record a double-entry transaction" }
func (*txAddCmd) Usage() string {
	return `tb tx add [-d <date>] -m <description> -dr <account> -cr <account> -a <amount>

  Records a transaction moving a positive amount from the credit account to
  the debit account. Both accounts must be registered.
`
}

func (c *txAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date.")
	f.StringVar(&c.description, "m", "", "Description.")
	f.StringVar(&c.debit, "dr", "", "Debit account.")
	f.StringVar(&c.credit, "cr", "", "Credit account.")
	f.StringVar(&c.amount, "a", "", "Amount, strictly positive.")
}

func (c *txAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	form := tillbook.TransactionForm{
		Date:          c.date,
		Description:   c.description,
		DebitAccount:  c.debit,
		CreditAccount: c.credit,
		Amount:        c.amount,
	}
	tx, err := form.Parse(book.Accounts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := book.AddTransaction(tx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Recorded %s: %s %s -> %s.\n", tx.Date, tx.Amount.Format(currencyCode()), tx.CreditAccount, tx.DebitAccount)
	return subcommands.ExitSuccess
}

type txListCmd struct {
	period string
	start  string
	date   string
	head   int
	tail   int
}

func (*txListCmd) Name() string     { return "list" }
func (*txListCmd) Synopsis() string { return "list the transactions in the ledger" }
func (*txListCmd) Usage() string {
	return `tb tx list [-p <period> | -s <start_date>] [-d <end_date>] [-head <n>] [-tail <n>]

  Lists transactions from the ledger, with options for filtering and limiting the output.
`
}

func (c *txListCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Predefined period (day, week, month, quarter, year).")
	f.StringVar(&c.start, "s", "", "The start date for a custom range. Overrides -p.")
	f.StringVar(&c.date, "d", "", "The end date for the range.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

// listRange returns the range selected by the flags, ok is false when no
// flag restricts the listing.
func (c *txListCmd) listRange() (r date.Range, ok bool, err error) {
	if c.start == "" && c.date == "" && c.period == "" {
		return date.Range{}, false, nil
	}
	end := date.Today()
	if c.date != "" {
		if end, err = date.Parse(c.date); err != nil {
			return date.Range{}, false, fmt.Errorf("invalid end date: %w", err)
		}
	}
	if c.start != "" {
		start, err := date.Parse(c.start)
		if err != nil {
			return date.Range{}, false, fmt.Errorf("invalid start date: %w", err)
		}
		return date.Between(start, end), true, nil
	}
	if c.period == "" {
		return date.Between(date.Date{}, end), true, nil
	}
	period, err := date.ParsePeriod(c.period)
	if err != nil {
		return date.Range{}, false, err
	}
	return period.Range(end), true, nil
}

func (c *txListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		failf("-head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}
	r, restricted, err := c.listRange()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	title := "Transactions"
	transactions := book.Ledger.All()
	if restricted {
		transactions = book.Ledger.Within(r)
		title = "Transactions " + r.String()
	}
	if c.head > 0 && len(transactions) > c.head {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && len(transactions) > c.tail {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.TransactionsMarkdown(title, transactions, currencyCode()))
	return subcommands.ExitSuccess
}

type txResetCmd struct {
	force bool
}

func (*txResetCmd) Name() string     { return "reset" }
func (*txResetCmd) Synopsis() string { return "remove every transaction" }
func (*txResetCmd) Usage() string {
	return `tb tx reset -f

  Removes every transaction from the ledger.
`
}

func (c *txResetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the removal.")
}

func (c *txResetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		failf("resetting transactions cannot be undone, use -f to confirm")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	n := book.Ledger.Len()
	book.ResetTransactions()
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%d transactions removed.\n", n)
	return subcommands.ExitSuccess
}

type txImportCmd struct{}

func (*txImportCmd) Name() string     { return "import" }
func (*txImportCmd) Synopsis() string { return "import transactions from a spreadsheet" }
func (*txImportCmd) Usage() string {
	return `tb tx import <file.xlsx>

  Imports the rows of the "Transactions" sheet. Columns are Date,
  Description, Debit Account, Credit Account and Amount. Invalid rows are
  skipped and reported.
`
}
func (*txImportCmd) SetFlags(f *flag.FlagSet) {}

func (*txImportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		failf("tx import takes exactly one file.")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	file, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer file.Close()
	rows, err := spreadsheet.ReadTransactions(file)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res := book.ImportTransactions(rows)
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ImportMarkdown(res))
	return subcommands.ExitSuccess
}
