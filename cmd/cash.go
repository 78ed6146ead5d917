package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/renderer"
	"github.com/google/subcommands"
)

func cashGroup() *group {
	return &group{
		name:     "cash",
		synopsis: "track the cash on hand",
		commands: []subcommands.Command{&cashSetCmd{}, &cashTableCmd{}},
	}
}

type cashSetCmd struct {
	amount string
}

func (*cashSetCmd) Name() string     { return "set" }
func (*cashSetCmd) Synopsis() string { return "set the cash on hand" }
func (*cashSetCmd) Usage() string {
	return `tb cash set -a <amount>

  Sets the cash on hand the cash table starts from. The amount cannot be
  negative.
`
}

func (c *cashSetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Cash on hand.")
}

func (c *cashSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	v, err := tillbook.ParseMoney(c.amount)
	if err != nil {
		failf("invalid amount %q: %v", c.amount, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.SetCashOnHand(v); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Cash on hand: %s\n", v.Format(currencyCode()))
	return subcommands.ExitSuccess
}

type cashTableCmd struct{}

func (*cashTableCmd) Name() string     { return "table" }
func (*cashTableCmd) Synopsis() string { return "display the running cash balance" }
func (*cashTableCmd) Usage() string {
	return `tb cash table

  Walks the transactions in order, starting from the cash on hand. Expenses
  reduce the running balance.
`
}
func (*cashTableCmd) SetFlags(f *flag.FlagSet) {}

func (*cashTableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.CashMarkdown(book.CashOnHand, book.CashTable(), currencyCode()))
	return subcommands.ExitSuccess
}
