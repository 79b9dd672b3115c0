package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type ownCmd struct{}

func (*ownCmd) Name() string     { return "own" }
func (*ownCmd) Synopsis() string { return "mark one skin as owned" }
func (*ownCmd) Usage() string {
	return `skintrack own <champion> <skin>

  Names are matched ignoring case, accents and punctuation.

Usage Examples:
$ skintrack own ahri "Dynasty Ahri"
$ skintrack own "cho gath" Loch Ness Cho'Gath
`
}
func (c *ownCmd) SetFlags(f *flag.FlagSet) {}

func (c *ownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return toggle(f, true)
}

type unownCmd struct{}

func (*unownCmd) Name() string     { return "unown" }
func (*unownCmd) Synopsis() string { return "mark one skin as not owned" }
func (*unownCmd) Usage() string {
	return `skintrack unown <champion> <skin>
`
}
func (c *unownCmd) SetFlags(f *flag.FlagSet) {}

func (c *unownCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return toggle(f, false)
}

// toggle resolves the champion and skin arguments and flips the owned flag.
func toggle(f *flag.FlagSet, owned bool) subcommands.ExitStatus {
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
	skin, err := findSkin(ch, strings.Join(f.Args()[1:], " "))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	col.ToggleSkin(ch.ID, skin.ID, owned)
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	state := "owned"
	if !owned {
		state = "not owned"
	}
	fmt.Printf("Marked %q (%s) as %s.\n", skin.Name, ch.Name, state)
	return subcommands.ExitSuccess
}
