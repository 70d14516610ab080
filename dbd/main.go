package main

import (
	"context"
	"flag"
	"os"
	"path"
	"slices"

	"github.com/cardsmith/deckboxdiff/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion: a no-op unless invoked by the shell completion hook.
	completion().Complete("dbd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	// Unknown subcommands fall through to dbd-<name> binaries on PATH.
	if sub := flag.Arg(0); sub != "" && !slices.Contains(cmd.CommandNames(), sub) {
		if ran, code := cmd.RunExtension(sub, flag.Args()[1:]); ran {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	exportFiles := predict.Files("*")
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"diff": {
				Flags: map[string]complete.Predictor{"p": predict.Nothing},
				Args:  exportFiles,
			},
			"value": {Args: exportFiles},
			"show":  {Args: exportFiles},
			"topic": {Args: predict.Set{"readme", "diffing", "pricing", "conditions", "files"}},
		},
		Flags: map[string]complete.Predictor{
			"config": predict.Files("*.toml"),
		},
	}
}
