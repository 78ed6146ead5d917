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

func accountGroup() *group {
	return &group{
		name:     "account",
		synopsis: "manage the chart of accounts",
		commands: []subcommands.Command{&accountAddCmd{}, &accountListCmd{}, &accountClearCmd{}},
	}
}

type accountAddCmd struct {
	name string
	typ  string
}

func (*accountAddCmd) Name() string     { return "add" }
func (*accountAddCmd) Synopsis() string { return "register a new account" }
func (*accountAddCmd) Usage() string {
	return `tb account add -n <name> -t <type>

  Registers an account. The type is one of Asset, Liability, Equity, Revenue
  or Expense. Names are unique.
`
}

func (c *accountAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Account name.")
	f.StringVar(&c.typ, "t", "", "Account type (Asset, Liability, Equity, Revenue, Expense).")
}

func (c *accountAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	acc, err := tillbook.AccountForm{Name: c.name, Type: c.typ}.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if _, err := book.AddAccount(acc.Name, acc.Type); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Account %q (%s) added.\n", acc.Name, acc.Type)
	return subcommands.ExitSuccess
}

type accountListCmd struct{}

func (*accountListCmd) Name() string     { return "list" }
func (*accountListCmd) Synopsis() string { return "list the registered accounts" }
func (*accountListCmd) Usage() string {
	return `tb account list

  Lists the accounts in registration order.
`
}
func (*accountListCmd) SetFlags(f *flag.FlagSet) {}

func (*accountListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountsMarkdown(book.Accounts.All()))
	return subcommands.ExitSuccess
}

type accountClearCmd struct {
	force bool
}

func (*accountClearCmd) Name() string     { return "clear" }
func (*accountClearCmd) Synopsis() string { return "remove every account" }
func (*accountClearCmd) Usage() string {
	return `tb account clear -f

  Removes every account. Transactions referencing them are kept.
`
}

func (c *accountClearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the removal.")
}

func (c *accountClearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		failf("clearing accounts cannot be undone, use -f to confirm")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	n := book.Accounts.Len()
	book.ClearAccounts()
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "%d accounts removed.\n", n)
	return subcommands.ExitSuccess
}
