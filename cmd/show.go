package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/skintrack/renderer"
	"github.com/google/subcommands"
)

type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "show one champion's skin checklist" }
func (*showCmd) Usage() string {
	return `skintrack show <champion>

Usage Examples:
$ skintrack show ahri
$ skintrack show "miss fortune"
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	view := &renderer.ChampionView{Name: ch.Name}
	for _, s := range ch.Skins {
		view.Skins = append(view.Skins, renderer.SkinRow{Name: s.Name, Owned: s.Owned})
	}
	printMarkdown(renderer.RenderChampion(view))
	return subcommands.ExitSuccess
}
