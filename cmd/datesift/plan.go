package main

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/dates"
	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/load"
	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/model"
	"github.com/gyeh/datesift/internal/normalize"
	"github.com/gyeh/datesift/internal/parquetread"
)

var planSample int64

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run validation and grammar distribution (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	parserFlags.register(f)
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.Int64Var(&planSample, "sample", 1000, "Rows to resolve for the estimate")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	opts := parserOptions(log)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash file")
		os.Exit(exitcode.ValidationError)
	}

	stat, err := os.Stat(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to stat file")
		os.Exit(exitcode.ValidationError)
	}

	reader, err := parquetread.Open(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to open parquet file")
		os.Exit(exitcode.ValidationError)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		log.Error().Err(err).Msg("schema validation failed")
		os.Exit(exitcode.ValidationError)
	}

	numRows := reader.NumRows()
	sampleSize := planSample
	if sampleSize > numRows {
		sampleSize = numRows
	}

	grammarCounts := make(map[string]int64)
	failureCounts := make(map[string]int64)
	buf := make([]model.CandidateRow, 256)
	var sampled int64

	for sampled < sampleSize {
		n, readErr := reader.Read(buf)
		for i := 0; i < n && sampled < sampleSize; i++ {
			sampled++
			out, err := dates.ParseWithTokens(buf[i].Input, opts)
			if err != nil {
				failureCounts[dates.Kind(err)]++
				continue
			}
			grammarCounts[string(out.Grammar)]++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			log.Error().Err(readErr).Msg("failed to read sample rows")
			os.Exit(exitcode.ValidationError)
		}
	}

	fmt.Println("=== datesift plan ===")
	fmt.Printf("File:       %s\n", cfg.FilePath)
	fmt.Printf("SHA-256:    %s\n", sha)
	fmt.Printf("Size:       %d bytes\n", stat.Size())
	fmt.Printf("Total rows: %d\n", numRows)
	fmt.Printf("Options:    %s\n", load.Fingerprint(opts))
	fmt.Printf("Sampled:    %d rows\n", sampled)
	fmt.Println()

	if sampled > 0 {
		fmt.Println("Grammar distribution (sampled):")
		printProjected(grammarCounts, sampled, numRows)
		if len(failureCounts) > 0 {
			fmt.Println("Unresolved (sampled):")
			printProjected(failureCounts, sampled, numRows)
		}
	}
	fmt.Println("Schema validation: OK")
	return nil
}

func printProjected(counts map[string]int64, sampled, total int64) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %-16s %6d sampled → ~%d projected rows\n", k, counts[k], counts[k]*total/sampled)
	}
}
