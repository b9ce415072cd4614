package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/db"
	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/load"
	"github.com/gyeh/datesift/internal/logging"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Resolve a Parquet file of candidate strings into Postgres",
	RunE:  runLoad,
}

func init() {
	f := loadCmd.Flags()
	parserFlags.register(f)
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Reload even if this file was loaded with the same options")
	f.BoolVar(&cfg.KeepStaging, "keep-staging", false, "Keep staging rows after publish")
	_ = loadCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	ctx := context.Background()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := load.Run(ctx, pool, log, &cfg)
	if err != nil {
		var pe *load.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("load failed")
			switch pe.Phase {
			case "preflight":
				os.Exit(exitcode.ValidationError)
			case "stage":
				os.Exit(exitcode.CopyError)
			default:
				os.Exit(exitcode.PublishError)
			}
		}
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.PublishError)
	}

	fmt.Printf("Load complete: %d rows staged, %d parsed, %d unresolved, %d published (%.1fs)\n",
		summary.RowsStaged, summary.RowsParsed, summary.RowsFailed, summary.RowsPublished,
		summary.DurationTotal.Seconds())

	grammars := make([]string, 0, len(summary.GrammarCounts))
	for g := range summary.GrammarCounts {
		grammars = append(grammars, g)
	}
	sort.Strings(grammars)
	for _, g := range grammars {
		fmt.Printf("  %-16s %d\n", g, summary.GrammarCounts[g])
	}

	if summary.RowsRejected > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
