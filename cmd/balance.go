package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tillbook/renderer"
	"github.com/google/subcommands"
)

type balanceCmd struct{}

func (*balanceCmd) Name() string     { return "balance" }
func (*balanceCmd) Synopsis() string { return "display the all-time balance of every account" }
func (*balanceCmd) Usage() string {
	return `tb balance

  Displays, for every registered account, the total debited, the total
  credited and the balance, grouped by account type.
`
}
func (*balanceCmd) SetFlags(f *flag.FlagSet) {}

func (*balanceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.BalancesMarkdown(book.Balances(), currencyCode()))
	return subcommands.ExitSuccess
}
