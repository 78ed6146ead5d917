package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrite every collection of the store in canonical form"
}
func (*fmtCmd) Usage() string {
	return `tb fmt

  Loads the book and writes every collection back: JSON fields in their
  canonical order, one record per line. A collection that could not be read
  is written back empty.
`
}

func (*fmtCmd) SetFlags(f *flag.FlagSet) {}

func (*fmtCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if err := current.repo.SaveAll(ctx, book); err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not format the book: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(stdout, "Book %q has been formatted: %s.\n", current.cfg.Store, book)
	return subcommands.ExitSuccess
}
