package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "mark every skin in the collection as not owned" }
func (*resetCmd) Usage() string {
	return `skintrack reset -force

  Clears every owned flag across the whole collection. Skins themselves are
  kept, only the flags are reset. Requires -force since there is no undo.
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm clearing every owned flag")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "reset clears every owned flag and cannot be undone; run again with -force")
		return subcommands.ExitUsageError
	}

	col := OpenCollection()
	col.ClearOwned()
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Println("Cleared every owned flag.")
	return subcommands.ExitSuccess
}
