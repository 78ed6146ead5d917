package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path"

	"github.com/etnz/tillbook/cmd"
	"github.com/google/subcommands"
)

func main() {
	// Answers shell completion requests and exits, when the shell asks.
	cmd.Completion().Complete("tb")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	if name := flag.Arg(0); name != "" && !cmd.Has(commander, name) {
		if ran, code := cmd.RunExtension(name, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	status := commander.Execute(context.Background())
	if err := cmd.Close(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if status == subcommands.ExitSuccess {
			status = subcommands.ExitFailure
		}
	}
	os.Exit(int(status))
}
