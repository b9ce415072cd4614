package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/suite"
)

var (
	suiteOut      string
	suiteBaseline bool
)

var suiteCmd = &cobra.Command{
	Use:   "suite",
	Short: "Run the built-in scenario suite",
	RunE:  runSuite,
}

func init() {
	f := suiteCmd.Flags()
	parserFlags.register(f)
	f.StringVar(&suiteOut, "out", "", "Write results as JSON to this path")
	f.BoolVar(&suiteBaseline, "baseline", false, "Run the dateparse baseline instead of datesift")
	rootCmd.AddCommand(suiteCmd)
}

func runSuite(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	opts := parserOptions(log)

	p := suite.Engine
	if suiteBaseline {
		p = suite.Baseline
	}

	fmt.Printf("%s scenario suite\n", p.Name)
	fmt.Println("================================================================================")
	results := suite.Run(p, suite.Scenarios, opts)
	suite.Print(os.Stdout, results)
	suite.PrintSummary(os.Stdout, suite.Summarize(results))

	if suiteOut != "" {
		if err := suite.Save(suiteOut, results); err != nil {
			log.Error().Err(err).Msg("save results failed")
			os.Exit(exitcode.UsageError)
		}
		fmt.Printf("\nResults saved to %s\n", suiteOut)
	}
	return nil
}
