package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"famstock/cmd"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	sub := map[string]*complete.Command{}
	for _, c := range cmd.Commands() {
		commander.Register(c, "")
		sub[c.Name()] = &complete.Command{Flags: map[string]complete.Predictor{}}
	}
	completion := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"portfolio-file": predict.Files("*.json"),
			"history-file":   predict.Files("*.json"),
			"currency":       predict.Set{"TWD", "USD", "EUR"},
		},
	}
	completion.Complete("fam")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
