package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type addCmd struct{}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "track a custom skin not known to the catalog" }
func (*addCmd) Usage() string {
	return `skintrack add <champion> <skin>

  Appends a new, unowned skin to the champion. Custom skins survive catalog
  syncs: a prefill never drops a skin it does not know.

Usage Examples:
$ skintrack add ahri "Foxfire"
`
}
func (c *addCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() < 2 {
		fmt.Fprintln(os.Stderr, "a champion and a skin name are expected")
		return subcommands.ExitUsageError
	}

	col := OpenCollection()
	ch, err := findChampion(col, f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	skin := col.AddSkin(ch.ID, strings.Join(f.Args()[1:], " "))
	if skin == nil {
		// A blank name is deliberately ignored, not an error.
		return subcommands.ExitSuccess
	}
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Added %q to %s.\n", skin.Name, ch.Name)
	return subcommands.ExitSuccess
}
