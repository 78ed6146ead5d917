package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/PaesslerAG/jsonpath"
	"github.com/google/subcommands"
)

type queryCmd struct {
	compact bool
}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "evaluate a JSONPath expression over the book" }
func (*queryCmd) Usage() string {
	return `tb query [-c] <jsonpath>

  Evaluates a JSONPath expression over a JSON snapshot of the book and prints
  the result as JSON. The snapshot has the keys accounts, transactions,
  stock, stockHistory, shift, cashOnHand and salesSheet.

  Examples:
    tb query '$.accounts[*].name'
    tb query '$.transactions[?(@.amount > 100)].description'
`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.compact, "c", false, "Print compact JSON.")
}

func (c *queryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		failf("query takes exactly one JSONPath expression.")
		return subcommands.ExitUsageError
	}
	book, err := openBook(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	snapshot, err := book.Snapshot()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	result, err := jsonpath.Get(f.Arg(0), snapshot)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot evaluate %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}

	enc := json.NewEncoder(stdout)
	if !c.compact {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(result); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
