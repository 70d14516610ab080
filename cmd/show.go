package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	deckbox "github.com/cardsmith/deckboxdiff"
	"github.com/cardsmith/deckboxdiff/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "list the contents of one export file" }
func (*showCmd) Usage() string {
	return `dbd show <file>

  Lists every entry of a deckbox export file, aggregated and sorted.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: show takes exactly one export file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)

	set, err := readCollection(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	report := deckbox.NewListingReport(file, set, AppConfig().Display.NumberPad)
	printMarkdown(renderer.ListingMarkdown(report))
	return subcommands.ExitSuccess
}
