package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/suite"
)

var (
	benchIterations int
	benchBaseline   bool
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Time common inputs",
	RunE:  runBench,
}

func init() {
	f := benchCmd.Flags()
	parserFlags.register(f)
	f.IntVar(&benchIterations, "iterations", 1000, "Parses per input")
	f.BoolVar(&benchBaseline, "baseline", false, "Also time the dateparse baseline")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	if benchIterations < 1 {
		return fmt.Errorf("--iterations must be positive")
	}
	opts := parserOptions(log.Level(zerolog.Disabled))

	parsers := []suite.Parser{suite.Engine}
	if benchBaseline {
		parsers = append(parsers, suite.Baseline)
	}
	for _, p := range parsers {
		fmt.Printf("\n%s (%d iterations)\n", p.Name, benchIterations)
		fmt.Println("--------------------------------------------------------------------------------")
		suite.PrintBench(os.Stdout, suite.Bench(p, suite.BenchInputs, benchIterations, opts))
	}
	return nil
}
