// Package cmd implements the tb command line tool.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	storeLocation = flag.String("store", "", "Location of the book: a directory, mem:, badger://<dir>, redis://… or mongodb://… (env "+EnvStore+", default "+defaultStore+")")
	currency      = flag.String("currency", "", "Currency code amounts are displayed in (env "+EnvCurrency+", default "+defaultCurrency+")")
	Verbose       = flag.Bool("v", false, "Log debug information (env "+EnvVerbose+")")
	logFormat     = flag.String("log-format", "", "Log format, text or json (env "+EnvLogFormat+", default text)")
	rawOutput     = flag.Bool("raw", false, "Print reports as plain markdown, without terminal styling")
)

// topics groups the commands in the help output.
var topics = map[string]string{
	"account": "ledger",
	"tx":      "ledger",
	"balance": "ledger",
	"cash":    "ledger",
	"stock":   "shop",
	"shift":   "shop",
	"sales":   "shop",
	"export":  "output",
	"query":   "output",
	"fmt":     "store",
	"migrate": "store",
}

// Commands returns the top level commands of the tool.
func Commands() []subcommands.Command {
	return []subcommands.Command{
		accountGroup(),
		txGroup(),
		&balanceCmd{},
		cashGroup(),
		stockGroup(),
		shiftGroup(),
		salesGroup(),
		exportGroup(),
		&queryCmd{},
		&fmtCmd{},
		&migrateCmd{},
		&topicCmd{},
	}
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands() {
		c.Register(cmd, topics[cmd.Name()])
	}
}

// Has reports whether the commander knows the named command.
func Has(c *subcommands.Commander, name string) bool {
	found := false
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		if cmd.Name() == name {
			found = true
		}
	})
	return found
}
