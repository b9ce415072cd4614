package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gyeh/datesift/internal/dates"
	"github.com/gyeh/datesift/internal/exitcode"
	"github.com/gyeh/datesift/internal/logging"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse [input...]",
	Short: "Resolve date strings (arguments, or stdin lines)",
	RunE:  runParse,
}

func init() {
	parserFlags.register(parseCmd.Flags())
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "Write one JSON object per input")
	rootCmd.AddCommand(parseCmd)
}

// parseLine is the --json form of one outcome.
type parseLine struct {
	Input         string     `json:"input"`
	Time          *time.Time `json:"time,omitempty"`
	OffsetSeconds *int       `json:"offset_seconds,omitempty"`
	Grammar       string     `json:"grammar,omitempty"`
	Era           string     `json:"era,omitempty"`
	Span          *[2]int    `json:"span,omitempty"`
	SkippedTokens []string   `json:"skipped_tokens,omitempty"`
	Error         string     `json:"error,omitempty"`
	ErrorKind     string     `json:"error_kind,omitempty"`
}

func runParse(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, cfg.LogLevel)
	opts := parserOptions(log)

	inputs := args
	if len(inputs) == 0 {
		sc := bufio.NewScanner(os.Stdin)
		for sc.Scan() {
			inputs = append(inputs, sc.Text())
		}
		if err := sc.Err(); err != nil {
			log.Error().Err(err).Msg("read stdin failed")
			os.Exit(exitcode.UsageError)
		}
	}

	enc := json.NewEncoder(os.Stdout)
	var parsed, failed int
	var firstErr error
	for _, in := range inputs {
		out, err := dates.ParseWithTokens(in, opts)
		if err != nil {
			failed++
			if firstErr == nil {
				firstErr = err
			}
		} else {
			parsed++
		}

		if parseJSON {
			if encErr := enc.Encode(toParseLine(in, out, err)); encErr != nil {
				return fmt.Errorf("encode result: %w", encErr)
			}
			continue
		}
		if err != nil {
			fmt.Printf("%s → error: %v\n", in, err)
			continue
		}
		fmt.Printf("%s → %s [%s]", in, out.Time.Format(time.RFC3339Nano), out.Grammar)
		if len(out.SkippedTokens) > 0 {
			fmt.Printf(" skipped=%q", out.SkippedTokens)
		}
		fmt.Println()
	}

	switch {
	case failed == 0:
		return nil
	case parsed > 0:
		os.Exit(exitcode.PartialSuccess)
	case dates.Kind(firstErr) == "invalid_date":
		os.Exit(exitcode.InvalidDate)
	default:
		os.Exit(exitcode.NoMatch)
	}
	return nil
}

func toParseLine(in string, out dates.Outcome, err error) parseLine {
	line := parseLine{Input: in}
	if err != nil {
		line.Error = err.Error()
		line.ErrorKind = dates.Kind(err)
		return line
	}
	t := out.Time
	line.Time = &t
	if out.OffsetIsSet {
		off := out.Offset
		line.OffsetSeconds = &off
	}
	line.Grammar = string(out.Grammar)
	line.Era = out.Fields.Era.String()
	line.Span = &[2]int{out.Span.Start, out.Span.End}
	line.SkippedTokens = out.SkippedTokens
	return line
}
