// Package cmd implements the CLI application to manage a skin collection.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/etnz/skintrack"
	"github.com/google/subcommands"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

// config holds the environment-provided defaults; flags take precedence.
type config struct {
	File   string `env:"SKINTRACK_FILE"`
	Locale string `env:"SKINTRACK_LOCALE" envDefault:"en_US"`
}

func defaultConfig() config {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Printf("ignoring malformed environment: %v", err)
	}
	if cfg.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		cfg.File = filepath.Join(home, ".skintrack", skintrack.DefaultFile)
	}
	return cfg
}

var (
	cfg            = defaultConfig()
	collectionFile = flag.String("collection-file", cfg.File, "Path to the collection file (JSON)")
	locale         = flag.String("locale", cfg.Locale, "Locale used for Data Dragon catalog lookups")
)

// Commands lists every subcommand of the skintrack CLI.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&listCmd{},
	&showCmd{},
	&summaryCmd{},
	&ownCmd{},
	&unownCmd{},
	&allCmd{},
	&addCmd{},
	&removeCmd{},
	&resetCmd{},
	&syncCmd{},
	&importCmd{},
	&exportCmd{},
	&topicCmd{},
}

// OpenCollection loads the collection from the configured slot, silently
// rebuilding it from the canonical roster when the file is missing or
// unreadable.
func OpenCollection() *skintrack.Collection {
	return skintrack.Load(*collectionFile)
}

// SaveCollection persists the collection to the configured slot.
func SaveCollection(c *skintrack.Collection) subcommands.ExitStatus {
	if err := skintrack.Save(*collectionFile, c); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving collection: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// findChampion resolves a champion argument by normalized name.
func findChampion(c *skintrack.Collection, name string) (*skintrack.Champion, error) {
	if ch := c.FindChampion(name); ch != nil {
		return ch, nil
	}
	return nil, fmt.Errorf("unknown champion %q", name)
}

// findSkin resolves a skin argument by normalized name within one champion.
func findSkin(ch *skintrack.Champion, name string) (*skintrack.Skin, error) {
	if s := ch.FindSkin(name); s != nil {
		return s, nil
	}
	return nil, fmt.Errorf("champion %q has no skin %q", ch.Name, name)
}
