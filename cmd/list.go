package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/skintrack"
	"github.com/etnz/skintrack/renderer"
	"github.com/google/subcommands"
)

type listCmd struct {
	query   string
	owned   bool
	missing bool
}

func (*listCmd) Name() string     { return "list" }
func (*listCmd) Synopsis() string { return "list champions, filtered by name and ownership" }
func (*listCmd) Usage() string {
	return `skintrack list [-q <query>] [-owned|-missing]

  Lists the roster with owned/total skin counts. The query matches champion
  names ignoring case, accents and punctuation, so "chogath" finds Cho'Gath.

Usage Examples:
$ skintrack list -q cho
$ skintrack list -owned
`
}

func (c *listCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only champions whose name contains this query")
	f.BoolVar(&c.owned, "owned", false, "Only champions with at least one owned skin")
	f.BoolVar(&c.missing, "missing", false, "Only champions with no owned skin")
}

func (c *listCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	mode := skintrack.All
	switch {
	case c.owned && c.missing:
		fmt.Fprintln(os.Stderr, "-owned and -missing are mutually exclusive")
		return subcommands.ExitUsageError
	case c.owned:
		mode = skintrack.MustHaveOwned
	case c.missing:
		mode = skintrack.MustHaveNone
	}

	col := OpenCollection()
	report := &renderer.List{Query: c.query, Mode: mode.String()}
	for _, ch := range col.Filter(c.query, mode) {
		report.Rows = append(report.Rows, renderer.ListRow{
			Name:  ch.Name,
			Owned: ch.OwnedCount(),
			Total: len(ch.Skins),
		})
	}
	printMarkdown(renderer.RenderList(report))
	return subcommands.ExitSuccess
}
