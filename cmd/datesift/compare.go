package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/suite"
)

var (
	compareOurs     string
	compareBaseline string
)

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare datesift with the dateparse baseline",
	Long: "Runs the scenario suite through datesift and araddon/dateparse and reports agreement. " +
		"With --ours and --baseline, compares two saved result files instead.",
	RunE: runCompare,
}

func init() {
	f := compareCmd.Flags()
	parserFlags.register(f)
	f.StringVar(&compareOurs, "ours", "", "Saved datesift results (from suite --out)")
	f.StringVar(&compareBaseline, "baseline", "", "Saved baseline results")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)

	var ours, base []suite.Result
	switch {
	case compareOurs == "" && compareBaseline == "":
		opts := parserOptions(log)
		ours = suite.Run(suite.Engine, suite.Scenarios, opts)
		base = suite.Run(suite.Baseline, suite.Scenarios, opts)
	case compareOurs != "" && compareBaseline != "":
		var err error
		if ours, err = suite.Load(compareOurs); err != nil {
			log.Error().Err(err).Msg("load results failed")
			os.Exit(exitcode.UsageError)
		}
		if base, err = suite.Load(compareBaseline); err != nil {
			log.Error().Err(err).Msg("load results failed")
			os.Exit(exitcode.UsageError)
		}
	default:
		log.Error().Msg("--ours and --baseline must be given together")
		os.Exit(exitcode.UsageError)
	}

	c, err := suite.Compare(ours, base)
	if err != nil {
		log.Error().Err(err).Msg("compare failed")
		os.Exit(exitcode.ValidationError)
	}
	suite.PrintComparison(os.Stdout, c, suite.Engine.Name, suite.Baseline.Name)
	return nil
}
