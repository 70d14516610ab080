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

// diffCmd holds the flags for the 'diff' subcommand.
type diffCmd struct {
	showPrice bool
}

func (*diffCmd) Name() string     { return "diff" }
func (*diffCmd) Synopsis() string { return "compute the difference between two export files" }
func (*diffCmd) Usage() string {
	return `dbd diff [-p] <earlier_file> <later_file>

  Compares two deckbox export files. The earlier file is the reference; the
  later file is the one whose changes are reported, and whose prices value
  the earlier set when -p is given.

Usage Examples:
# Quantity changes only.
$ dbd diff january.csv february.csv

# Include the pricing section.
$ dbd diff -p january.csv february.xlsx

`
}

func (c *diffCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.showPrice, "p", false, "show price difference between sets")
}

func (c *diffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Error: diff takes exactly two export files, got %d\n", f.NArg())
		return subcommands.ExitUsageError
	}
	earlierFile, laterFile := f.Arg(0), f.Arg(1)

	earlier, err := readCollection(earlierFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", earlierFile, err)
		return subcommands.ExitFailure
	}
	later, err := readCollection(laterFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading %q: %v\n", laterFile, err)
		return subcommands.ExitFailure
	}

	cfg := AppConfig()
	report := deckbox.NewDiffReport(earlierFile, laterFile, earlier, later, deckbox.DiffReportOptions{
		WithPricing: c.showPrice || cfg.Display.ShowPrice,
		NumberPad:   cfg.Display.NumberPad,
	})

	printMarkdown(renderer.DiffMarkdown(report))
	return subcommands.ExitSuccess
}
