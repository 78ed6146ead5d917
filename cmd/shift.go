package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/date"
	"github.com/etnz/tillbook/renderer"
	"github.com/google/subcommands"
)

func shiftGroup() *group {
	return &group{
		name:     "shift",
		synopsis: "reconcile the cash at the end of a shift",
		commands: []subcommands.Command{&shiftGenerateCmd{}, &shiftShowCmd{}},
	}
}

type shiftGenerateCmd struct {
	form tillbook.ShiftForm
}

func (*shiftGenerateCmd) Name() string     { return "generate" }
func (*shiftGenerateCmd) Synopsis() string { return "generate the end-of-shift report" }
func (*shiftGenerateCmd) Usage() string {
	return `tb shift generate [-d <date>] [-shift <name>] [-e <employee>] [-opening <cash>] [-sales <amount>] [-payments <amount>] [-actual <cash>]

  Computes the expected cash, opening + sales - payments, and the variance
  against the actual cash counted. The report replaces the previous one.
  Missing amounts count as zero.
`
}

func (c *shiftGenerateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.form.Date, "d", "", "Shift date. Defaults to today.")
	f.StringVar(&c.form.Shift, "shift", "", "Shift name, e.g. Morning.")
	f.StringVar(&c.form.Employee, "e", "", "Employee on duty.")
	f.StringVar(&c.form.OpeningCash, "opening", "", "Cash in the till at the start of the shift.")
	f.StringVar(&c.form.Sales, "sales", "", "Total sales.")
	f.StringVar(&c.form.Payments, "payments", "", "Payments made from the till.")
	f.StringVar(&c.form.ActualCash, "actual", "", "Cash counted at the end of the shift.")
}

func (c *shiftGenerateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	in, err := c.form.Parse(date.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	r, err := book.GenerateShift(in)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ShiftMarkdown(r, currencyCode()))
	return subcommands.ExitSuccess
}

type shiftShowCmd struct{}

func (*shiftShowCmd) Name() string     { return "show" }
func (*shiftShowCmd) Synopsis() string { return "display the latest end-of-shift report" }
func (*shiftShowCmd) Usage() string {
	return `tb shift show
`
}
func (*shiftShowCmd) SetFlags(f *flag.FlagSet) {}

func (*shiftShowCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if book.Shift.IsZero() {
		fmt.Fprintln(stdout, "No shift report yet.")
		return subcommands.ExitSuccess
	}
	printMarkdown(renderer.ShiftMarkdown(book.Shift, currencyCode()))
	return subcommands.ExitSuccess
}
