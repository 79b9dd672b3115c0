package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type removeCmd struct{}

func (*removeCmd) Name() string     { return "remove" }
func (*removeCmd) Synopsis() string { return "stop tracking one skin" }
func (*removeCmd) Usage() string {
	return `skintrack remove <champion> <skin>

Usage Examples:
$ skintrack remove ahri Foxfire
`
}
func (c *removeCmd) SetFlags(f *flag.FlagSet) {}

func (c *removeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	name := skin.Name
	col.RemoveSkin(ch.ID, skin.ID)
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Removed %q from %s.\n", name, ch.Name)
	return subcommands.ExitSuccess
}
