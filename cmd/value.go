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

type valueCmd struct{}

func (*valueCmd) Name() string     { return "value" }
func (*valueCmd) Synopsis() string { return "summarize the size and value of one export file" }
func (*valueCmd) Usage() string {
	return `dbd value <file>

  Displays the total card count, distinct entries and price totals of a
  deckbox export file.
`
}

func (c *valueCmd) SetFlags(f *flag.FlagSet) {}

func (c *valueCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: value takes exactly one export file, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	file := f.Arg(0)

	set, err := readCollection(file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", file, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.ValueMarkdown(deckbox.NewValueReport(file, set)))
	return subcommands.ExitSuccess
}
