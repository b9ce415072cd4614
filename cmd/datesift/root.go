package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "datesift",
	Short: "Free-form date string recognizer",
	Long: "Resolves free-form date and time strings to instants, scans text for dates, " +
		"runs the scenario suite, and bulk-loads resolved Parquet candidates into Postgres.",
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATESIFT_DB_URL"), "Postgres connection string (or set DATESIFT_DB_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: trace, debug, info, warn, error")
	pf.StringVar(&cfg.ConfigPath, "config", "", "YAML or TOML file with a parser section")
}

// loadConfig merges the config file, then any parser flags set on the command line.
func loadConfig(cmd *cobra.Command, args []string) error {
	if cfg.ConfigPath != "" {
		if err := cfg.LoadFromFile(cfg.ConfigPath); err != nil {
			return err
		}
	}
	return parserFlags.apply(cmd.Flags(), &cfg.Parser)
}
