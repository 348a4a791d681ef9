package config

import (
	"flag"
	"os"

	"github.com/featurepulse/featurepulse-go/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-k string   API key
//	-u string   backend base URL (default from Config)
//	-b string   application bundle identifier
//	-d string   sqlite DSN for local storage
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-k", "-u", "-b", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "FeaturePulse API key")
	fs.StringVar(&cfg.BaseURL, "u", cfg.BaseURL, "backend base URL")
	fs.StringVar(&cfg.BundleID, "b", cfg.BundleID, "application bundle identifier")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "sqlite DSN for local storage")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
