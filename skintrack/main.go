package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/skintrack/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	name := path.Base(os.Args[0])
	commander := subcommands.NewCommander(flag.CommandLine, name)

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	// Shell completion; install it once with COMP_INSTALL=1 skintrack.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	cmp := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"collection-file": predict.Files("*.json"),
			"locale":          predict.Set{"en_US", "fr_FR", "de_DE", "es_ES", "ko_KR", "ja_JP"},
		},
	}
	cmp.Complete(name)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
