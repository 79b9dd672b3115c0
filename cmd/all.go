package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type allCmd struct {
	clear bool
}

func (*allCmd) Name() string     { return "all" }
func (*allCmd) Synopsis() string { return "mark every skin of one champion owned (or not)" }
func (*allCmd) Usage() string {
	return `skintrack all [-clear] <champion>

  Sets every skin of the champion to owned; with -clear, to not owned.
  Skin order and identities are untouched.

Usage Examples:
$ skintrack all jinx
$ skintrack all -clear jinx
`
}

func (c *allCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.clear, "clear", false, "Mark every skin as not owned instead")
}

func (c *allCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "a champion name is expected")
		return subcommands.ExitUsageError
	}

	col := OpenCollection()
	ch, err := findChampion(col, strings.Join(f.Args(), " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	col.SetAllSkins(ch.ID, !c.clear)
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Updated %d skins of %s.\n", len(ch.Skins), ch.Name)
	return subcommands.ExitSuccess
}
