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

func salesGroup() *group {
	return &group{
		name:     "sales",
		synopsis: "edit the end-of-shift sales sheet",
		commands: []subcommands.Command{&salesAddCmd{}, &salesSetCmd{}, &salesDeleteCmd{}, &salesListCmd{}},
	}
}

// salesLineFlags are the flags shared by add and set.
func salesLineFlags(f *flag.FlagSet, form *tillbook.SalesLineForm) {
	f.StringVar(&form.Product, "p", "", "Product name.")
	f.StringVar(&form.OpeningStock, "o", "", "Opening stock.")
	f.StringVar(&form.QuantitySold, "s", "", "Quantity sold, at most the opening stock.")
	f.StringVar(&form.Price, "price", "", "Unit price.")
}

type salesAddCmd struct {
	form tillbook.SalesLineForm
}

func (*salesAddCmd) Name() string     { return "add" }
func (*salesAddCmd) Synopsis() string { return "append a line to the sales sheet" }
func (*salesAddCmd) Usage() string {
	return `tb sales add -p <product> -o <opening> -s <sold> -price <price>
`
}
func (c *salesAddCmd) SetFlags(f *flag.FlagSet) { salesLineFlags(f, &c.form) }

func (c *salesAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	line, err := c.form.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.AddSale(line); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(book.Sales, currencyCode()))
	return subcommands.ExitSuccess
}

type salesSetCmd struct {
	index int
	form  tillbook.SalesLineForm
}

func (*salesSetCmd) Name() string     { return "set" }
func (*salesSetCmd) Synopsis() string { return "replace a line of the sales sheet" }
func (*salesSetCmd) Usage() string {
	return `tb sales set -i <index> -p <product> -o <opening> -s <sold> -price <price>

  Replaces the line at the given index, as shown by "tb sales list".
`
}

func (c *salesSetCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the line.")
	salesLineFlags(f, &c.form)
}

func (c *salesSetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	line, err := c.form.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.SetSale(c.index, line); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(book.Sales, currencyCode()))
	return subcommands.ExitSuccess
}

type salesDeleteCmd struct {
	index int
}

func (*salesDeleteCmd) Name() string     { return "delete" }
func (*salesDeleteCmd) Synopsis() string { return "remove a line of the sales sheet" }
func (*salesDeleteCmd) Usage() string {
	return `tb sales delete -i <index>
`
}

func (c *salesDeleteCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.index, "i", -1, "Index of the line.")
}

func (c *salesDeleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := book.DeleteSale(c.index); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(book.Sales, currencyCode()))
	return subcommands.ExitSuccess
}

type salesListCmd struct{}

func (*salesListCmd) Name() string     { return "list" }
func (*salesListCmd) Synopsis() string { return "display the sales sheet and its totals" }
func (*salesListCmd) Usage() string {
	return `tb sales list
`
}
func (*salesListCmd) SetFlags(f *flag.FlagSet) {}

func (*salesListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.SalesMarkdown(book.Sales, currencyCode()))
	return subcommands.ExitSuccess
}
