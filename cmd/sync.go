package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/skintrack"
	"github.com/etnz/skintrack/ddragon"
	"github.com/google/subcommands"
)

type syncCmd struct {
	query string
}

func (*syncCmd) Name() string     { return "sync" }
func (*syncCmd) Synopsis() string { return "prefill skin lists from the Data Dragon catalog" }
func (*syncCmd) Usage() string {
	return `skintrack sync [-q <query>]

  Fetches the latest catalog version and merges each champion's official
  skin list into the collection, one champion at a time. Owned flags and
  hand-added skins are never lost. With -q, only matching champions are
  synced.

Usage Examples:
$ skintrack sync
$ skintrack sync -q ahri
`
}

func (c *syncCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.query, "q", "", "Only sync champions whose name contains this query")
}

func (c *syncCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	session, err := ddragon.NewSession(ddragon.NewClient(), *locale)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Catalog unavailable: %v\n", err)
		return subcommands.ExitFailure
	}

	col := OpenCollection()
	champs := col.Filter(c.query, skintrack.All)
	ids := make([]string, 0, len(champs))
	for _, ch := range champs {
		ids = append(ids, ch.ID)
	}

	// One champion at a time: the sequencing lives in Prefill.
	updated := col.Prefill(session, ids)
	if st := SaveCollection(col); st != subcommands.ExitSuccess {
		return st
	}
	fmt.Printf("Merged catalog %s skin lists into %d champions.\n", session.Version(), updated)
	return subcommands.ExitSuccess
}
