package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/google/subcommands"
)

// group is a container command dispatching to its own subcommands.
type group struct {
	name     string
	synopsis string
	commands []subcommands.Command
}

func (g *group) Name() string     { return g.name }
func (g *group) Synopsis() string { return g.synopsis }
func (g *group) Usage() string {
	var b strings.Builder
	fmt.Fprintf(&b, "tb %s <subcommand> [args]\n\nCommands:\n", g.name)
	for _, c := range g.commands {
		fmt.Fprintf(&b, "  %-10s %s\n", c.Name(), c.Synopsis())
	}
	return b.String()
}

func (g *group) SetFlags(f *flag.FlagSet) {}
func (g *group) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	commander := subcommands.NewCommander(f, "tb "+g.name)
	for _, c := range g.commands {
		commander.Register(c, "")
	}
	return commander.Execute(ctx, args...)
}

// Subcommands returns the commands of the group.
func (g *group) Subcommands() []subcommands.Command { return g.commands }
