package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/scan"
)

var (
	scanFile     string
	scanDetector string
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Find and resolve dates in free text",
	RunE:  runScan,
}

func init() {
	f := scanCmd.Flags()
	parserFlags.register(f)
	f.StringVar(&scanFile, "file", "-", "Text file to scan (- for stdin)")
	f.StringVar(&scanDetector, "detector", "pattern", "Span detector: pattern or when")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	opts := parserOptions(log)
	// Relative phrases resolve only in fuzzy mode.
	if !cmd.Flags().Changed("fuzzy") {
		opts.Fuzzy = true
	}

	var det scan.Detector
	switch scanDetector {
	case "pattern":
		pd, err := scan.NewPatternDetector()
		if err != nil {
			log.Error().Err(err).Msg("compile detector patterns")
			os.Exit(exitcode.UsageError)
		}
		det = pd
	case "when":
		det = scan.NewWhenDetector()
	default:
		log.Error().Str("detector", scanDetector).Msg("unknown detector (want pattern or when)")
		os.Exit(exitcode.UsageError)
	}

	var text []byte
	var err error
	if scanFile == "-" {
		text, err = io.ReadAll(os.Stdin)
	} else {
		text, err = os.ReadFile(scanFile)
	}
	if err != nil {
		log.Error().Err(err).Msg("read input failed")
		os.Exit(exitcode.UsageError)
	}

	hits := scan.Scan(string(text), det, opts)
	for _, h := range hits {
		fmt.Printf("%d-%d\t%q\t→ %s [%s]\n",
			h.Span.Start, h.Span.End, h.Text, h.Outcome.Time.Format(time.RFC3339Nano), h.Outcome.Grammar)
	}
	log.Info().Int("hits", len(hits)).Str("detector", scanDetector).Msg("scan complete")
	if len(hits) == 0 {
		os.Exit(exitcode.NoMatch)
	}
	return nil
}
