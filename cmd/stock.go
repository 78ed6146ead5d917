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

func stockGroup() *group {
	return &group{
		name:     "stock",
		synopsis: "manage the stock items and their closing counts",
		commands: []subcommands.Command{
			&stockAddCmd{},
			&stockCountCmd{},
			&stockCloseCmd{},
			&stockAvailableCmd{},
			&stockListCmd{},
			&stockListCmd{report: true},
			&stockResetCmd{},
		},
	}
}

type stockAddCmd struct {
	name     string
	quantity string
	price    string
}

func (*stockAddCmd) Name() string     { return "add" }
func (*stockAddCmd) Synopsis() string { return "register a new stock item" }
func (*stockAddCmd) Usage() string {
	return `tb stock add -n <name> -q <quantity> -p <unit_price>

  Registers a stock item with its opening quantity and unit price.
`
}

func (c *stockAddCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name.")
	f.StringVar(&c.quantity, "q", "", "Quantity in stock.")
	f.StringVar(&c.price, "p", "", "Unit price.")
}

func (c *stockAddCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	item, err := tillbook.StockItemForm{Name: c.name, Quantity: c.quantity, UnitPrice: c.price}.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if item, err = book.AddStockItem(item.Name, item.Quantity, item.UnitPrice); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Item %q added: %s at %s.\n", item.Name, item.Quantity, item.UnitPrice.Format(currencyCode()))
	return subcommands.ExitSuccess
}

type stockCountCmd struct {
	name    string
	counted string
}

func (*stockCountCmd) Name() string     { return "count" }
func (*stockCountCmd) Synopsis() string { return "correct the quantity of an item after a count" }
func (*stockCountCmd) Usage() string {
	return `tb stock count -n <name> -q <counted>

  Overwrites the quantity of an item with a physical count and reports the
  variance.
`
}

func (c *stockCountCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name.")
	f.StringVar(&c.counted, "q", "", "Counted quantity.")
}

func (c *stockCountCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, counted, err := tillbook.CountForm{Name: c.name, Counted: c.counted}.Parse()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	variance, err := book.CorrectStock(name, counted)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Stock of %q set to %s (variance %s).\n", name, counted, variance.SignedString())
	return subcommands.ExitSuccess
}

type stockCloseCmd struct {
	name    string
	closing string
	date    string
}

func (*stockCloseCmd) Name() string     { return "close" }
func (*stockCloseCmd) Synopsis() string { return "record the closing count of an item" }
func (*stockCloseCmd) Usage() string {
	return `tb stock close -n <name> -q <closing> [-d <date>]

  Records the closing count of an item in its history, then rolls it over:
  the closing becomes the next opening quantity.
`
}

func (c *stockCloseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name.")
	f.StringVar(&c.closing, "q", "", "Closing quantity.")
	f.StringVar(&c.date, "d", "", "Closing date. Defaults to today.")
}

func (c *stockCloseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name, closing, on, err := tillbook.ClosingForm{Name: c.name, Closing: c.closing, Date: c.date}.Parse(date.Today())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	entry, err := book.RecordClosing(name, closing, on)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	cur := currencyCode()
	fmt.Fprintf(stdout, "%s %s: opening %s, closing %s, consumed %s (%s -> %s).\n",
		entry.Date, entry.Item, entry.Opening, entry.Closing, entry.Consumed,
		entry.ValueOpening.Format(cur), entry.ValueClosing.Format(cur))
	return subcommands.ExitSuccess
}

type stockAvailableCmd struct {
	name string
}

func (*stockAvailableCmd) Name() string     { return "available" }
func (*stockAvailableCmd) Synopsis() string { return "display the available quantity of an item" }
func (*stockAvailableCmd) Usage() string {
	return `tb stock available -n <name>
`
}

func (c *stockAvailableCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Item name.")
}

func (c *stockAvailableCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.name == "" {
		failf("-n is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	item, err := book.Stock.Available(c.name)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AvailableMarkdown(item, currencyCode()))
	return subcommands.ExitSuccess
}

// stockListCmd lists the items, or, as "report", the items with their
// working out.
type stockListCmd struct {
	report bool
}

func (c *stockListCmd) Name() string {
	if c.report {
		return "report"
	}
	return "list"
}
func (c *stockListCmd) Synopsis() string {
	if c.report {
		return "display the stock with the history of every item"
	}
	return "list the stock items and their total value"
}
func (c *stockListCmd) Usage() string {
	return "tb stock " + c.Name() + "\n"
}
func (*stockListCmd) SetFlags(f *flag.FlagSet) {}

func (c *stockListCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.StockMarkdown(book.Stock, currencyCode(), c.report))
	return subcommands.ExitSuccess
}

type stockResetCmd struct {
	force bool
}

func (*stockResetCmd) Name() string     { return "reset" }
func (*stockResetCmd) Synopsis() string { return "remove every stock item and the history" }
func (*stockResetCmd) Usage() string {
	return `tb stock reset -f
`
}

func (c *stockResetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Confirm the removal.")
}

func (c *stockResetCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		failf("resetting the stock cannot be undone, use -f to confirm")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	book.ResetStock()
	if err := saveBook(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, "Stock reset.")
	return subcommands.ExitSuccess
}
