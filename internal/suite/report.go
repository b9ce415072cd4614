package suite

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

func mark(ok bool) string {
	if ok {
		return passColor.Sprint("✓")
	}
	return failColor.Sprint("✗")
}

// Print writes one block per result: the default outcome, then any fuzzy
// success and any day-first reading that differs.
func Print(w io.Writer, results []Result) {
	for _, r := range results {
		fmt.Fprintf(w, "%s %-40s | Input: '%s'\n", mark(r.Default.Success), r.Description, r.Input)
		if r.Default.Success {
			fmt.Fprintf(w, "  → %s (%.3fms)", r.Default.Date, r.Default.TimeMs)
			if r.Default.Grammar != "" {
				dimColor.Fprintf(w, " [%s]", r.Default.Grammar)
			}
			fmt.Fprintln(w)
		} else {
			fmt.Fprintf(w, "  → Error: %s\n", r.Default.Error)
		}
		if r.Fuzzy != nil && r.Fuzzy.Success {
			fmt.Fprintf(w, "  → Fuzzy: %s\n", r.Fuzzy.Date)
		}
		if r.DayFirst != nil && r.DayFirst.Date != r.Default.Date {
			fmt.Fprintf(w, "  → Dayfirst: %s\n", r.DayFirst.Date)
		}
		fmt.Fprintln(w)
	}
}

// PrintSummary writes the success counts.
func PrintSummary(w io.Writer, s Summary) {
	pct := 0.0
	if s.Total > 0 {
		pct = float64(s.Default) / float64(s.Total) * 100
	}
	fmt.Fprintln(w, "Summary:")
	fmt.Fprintf(w, "Total tests: %d\n", s.Total)
	fmt.Fprintf(w, "Successful (default): %d (%.1f%%)\n", s.Default, pct)
	fmt.Fprintf(w, "Additional fuzzy successes: %d\n", s.FuzzyExtra)
	fmt.Fprintf(w, "Day-first readings that differ: %d\n", s.DayFirstDiff)
}

// PrintComparison writes agreement counts, disagreements and timing ratios.
func PrintComparison(w io.Writer, c *Comparison, oursName, baseName string) {
	rule := strings.Repeat("-", 50)
	fmt.Fprintf(w, "Total tests: %d\n", c.Total)
	fmt.Fprintf(w, "Both succeed: %d\n", c.BothSucceed)
	fmt.Fprintf(w, "Both fail: %d\n", c.BothFail)
	fmt.Fprintf(w, "%s only: %d\n", oursName, len(c.OursOnly))
	fmt.Fprintf(w, "%s only: %d\n", baseName, len(c.BaselineOnly))
	fmt.Fprintf(w, "Different results: %d\n\n", len(c.Different))

	if len(c.BaselineOnly) > 0 {
		fmt.Fprintf(w, "%s Tests that %s passes but %s fails:\n%s\n", mark(false), baseName, oursName, rule)
		for _, p := range c.BaselineOnly {
			fmt.Fprintf(w, "  %s: '%s'\n", p.Baseline.Description, p.Baseline.Input)
			fmt.Fprintf(w, "    %s: %s\n", baseName, p.Baseline.Default.Date)
			fmt.Fprintf(w, "    %s error: %s\n", oursName, p.Ours.Default.Error)
		}
		fmt.Fprintln(w)
	}
	if len(c.OursOnly) > 0 {
		fmt.Fprintf(w, "%s Tests that %s passes but %s fails:\n%s\n", mark(true), oursName, baseName, rule)
		for _, p := range c.OursOnly {
			fmt.Fprintf(w, "  %s: '%s'\n", p.Ours.Description, p.Ours.Input)
			fmt.Fprintf(w, "    %s: %s\n", oursName, p.Ours.Default.Date)
			fmt.Fprintf(w, "    %s error: %s\n", baseName, p.Baseline.Default.Error)
		}
		fmt.Fprintln(w)
	}
	if len(c.Different) > 0 {
		fmt.Fprintf(w, "Tests with different results:\n%s\n", rule)
		for _, p := range c.Different {
			fmt.Fprintf(w, "  %s: '%s'\n", p.Ours.Description, p.Ours.Input)
			fmt.Fprintf(w, "    %-10s %s\n", oursName+":", p.Ours.Default.Date)
			fmt.Fprintf(w, "    %-10s %s\n", baseName+":", p.Baseline.Default.Date)
		}
		fmt.Fprintln(w)
	}

	if c.BothSucceed == 0 {
		return
	}
	fmt.Fprintf(w, "Performance (average ms):\n%s\n", rule)
	fmt.Fprintf(w, "  %-10s %.3fms\n", oursName+":", c.AvgOursMs)
	fmt.Fprintf(w, "  %-10s %.3fms\n", baseName+":", c.AvgBaseMs)
	if c.AvgBaseMs > 0 {
		fmt.Fprintf(w, "  Ratio:     %.2fx\n", c.AvgOursMs/c.AvgBaseMs)
	}
	if len(c.Ratios) > 0 {
		fmt.Fprintf(w, "  Median:    %.2fx\n", c.MedianRatio)
		fmt.Fprintf(w, "  Best:      %.2fx ('%s')\n", c.Ratios[0].Ratio, c.Ratios[0].Input)
		last := c.Ratios[len(c.Ratios)-1]
		fmt.Fprintf(w, "  Worst:     %.2fx ('%s')\n", last.Ratio, last.Input)
	}
}

// PrintBench writes one line per benchmarked input.
func PrintBench(w io.Writer, results []BenchResult) {
	for _, r := range results {
		fmt.Fprintf(w, "%-25s | Total: %s | Avg: %s", r.Input, r.Total, r.Avg())
		if r.Failures > 0 {
			fmt.Fprintf(w, " | %s %d failed", mark(false), r.Failures)
		}
		fmt.Fprintln(w)
	}
}
