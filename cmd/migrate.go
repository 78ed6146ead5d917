package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tillbook"
	"github.com/etnz/tillbook/store"
	"github.com/google/subcommands"
)

type migrateCmd struct {
	to string
}

func (*migrateCmd) Name() string     { return "migrate" }
func (*migrateCmd) Synopsis() string { return "copy the book to another store" }
func (*migrateCmd) Usage() string {
	return `tb migrate -to <location>

  Copies every collection of the book to another store, for instance from a
  folder to a Badger database or a Redis server. The destination
  collections are overwritten. The location has the same syntax as -store.

Usage Examples:
$ tb -store .tillbook migrate -to badger://books
`
}

func (c *migrateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Location of the destination store.")
}

func (c *migrateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.to == "" {
		failf("-to is required.")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.to == current.cfg.Store {
		failf("the destination is the current store %q", c.to)
		return subcommands.ExitUsageError
	}

	dst, err := store.Open(ctx, c.to, current.log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot open %q: %v\n", c.to, err)
		return subcommands.ExitFailure
	}
	defer dst.Close()

	if err := tillbook.NewRepository(dst, current.log).SaveAll(ctx, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot copy the book to %q: %v\n", c.to, err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Copied %s to %q.\n", book, c.to)
	return subcommands.ExitSuccess
}
