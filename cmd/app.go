// Package cmd implements the CLI application to diff deckbox exports.
package cmd

import (
	"flag"
	"log"

	deckbox "github.com/cardsmith/deckboxdiff"
	"github.com/cardsmith/deckboxdiff/deckfile"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&diffCmd{}, "collections")
	c.Register(&valueCmd{}, "collections")
	c.Register(&showCmd{}, "collections")
	c.Register(&topicCmd{}, "documentation")
}

// CommandNames lists the registered subcommand names, used by the
// entrypoint to decide between a builtin and an extension.
func CommandNames() []string {
	return []string{"diff", "value", "show", "topic", "help", "flags", "commands"}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to the configuration file (defaults to .dbd.toml in the working directory, then the home directory)")

var loadedConfig *Config

// AppConfig loads the configuration once and caches it. A missing file is
// not an error, the defaults apply.
func AppConfig() *Config {
	if loadedConfig != nil {
		return loadedConfig
	}
	cfg, err := LoadConfig(*configFile)
	if err != nil {
		log.Printf("warning: ignoring configuration: %v", err)
		cfg = DefaultConfig()
	}
	loadedConfig = cfg
	return loadedConfig
}

// readCollection loads one export file into a collection using the
// configured ingestion cleanups.
func readCollection(path string) (*deckbox.Collection, error) {
	return deckfile.Read(path, AppConfig().Ingest.cleanups()...)
}
