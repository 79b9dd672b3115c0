package cmd

import (
	"context"
	"flag"

	"github.com/etnz/skintrack/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "aggregate ownership counts over the whole collection" }
func (*summaryCmd) Usage() string    { return "skintrack summary\n" }

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	n := OpenCollection().Counts()
	printMarkdown(renderer.RenderSummary(&renderer.Summary{
		OwnedChampions:     n.OwnedChampions,
		Champions:          n.Champions,
		OwnedSkins:         n.OwnedSkins,
		Skins:              n.Skins,
		ChampionCompletion: n.ChampionCompletion().String(),
		SkinCompletion:     n.SkinCompletion().String(),
	}))
	return subcommands.ExitSuccess
}
