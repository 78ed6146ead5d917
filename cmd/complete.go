package cmd

import (
	"flag"

	"github.com/etnz/tillbook"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors maps flag names to what they complete to. Other flags take
// any value.
var flagPredictors = map[string]complete.Predictor{
	"t":          accountTypes(),
	"o":          predict.Files("*"),
	"store":      predict.Dirs("*"),
	"log-format": predict.Set{"text", "json"},
	"p":          predict.Something,
}

func accountTypes() predict.Set {
	var set predict.Set
	for _, t := range tillbook.AccountTypes {
		set = append(set, t.String())
	}
	return set
}

// flagsOf returns the completion of the flags of a flag set.
func flagsOf(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[fl.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[fl.Name]; ok {
			flags[fl.Name] = p
			return
		}
		flags[fl.Name] = predict.Something
	})
	return flags
}

// completion returns the completion tree of a command and its subcommands.
func completion(c subcommands.Command) *complete.Command {
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	cc := &complete.Command{Flags: flagsOf(f)}
	switch c := c.(type) {
	case *group:
		cc.Sub = make(map[string]*complete.Command)
		for _, sub := range c.Subcommands() {
			cc.Sub[sub.Name()] = completion(sub)
		}
	case *txImportCmd:
		cc.Args = predict.Files("*.xlsx")
	}
	return cc
}

// Completion returns the shell completion of the whole tool, global flags
// included.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: flagsOf(flag.CommandLine),
	}
	for _, c := range Commands() {
		root.Sub[c.Name()] = completion(c)
	}
	for _, name := range []string{"help", "flags", "commands"} {
		root.Sub[name] = &complete.Command{}
	}
	return root
}
