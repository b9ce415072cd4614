package suite

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"github.com/gyeh/datesift/internal/dates"
)

// Parser is a date parser under test. Options it cannot honor are marked by
// the capability flags; Run skips the matching attempts.
type Parser struct {
	Name string
	// Parse returns the instant and, when known, the grammar that matched.
	Parse    func(input string, opts dates.Options) (time.Time, string, error)
	Fuzzy    bool
	DayFirst bool
}

// Engine is the dates engine.
var Engine = Parser{
	Name: "datesift",
	Parse: func(input string, opts dates.Options) (time.Time, string, error) {
		out, err := dates.ParseWithTokens(input, opts)
		if err != nil {
			return time.Time{}, "", err
		}
		return out.Time, string(out.Grammar), nil
	},
	Fuzzy:    true,
	DayFirst: true,
}

// Baseline is araddon/dateparse, resolved in the reference location.
var Baseline = Parser{
	Name: "dateparse",
	Parse: func(input string, opts dates.Options) (time.Time, string, error) {
		loc := time.UTC
		if !opts.Reference.IsZero() {
			loc = opts.Reference.Location()
		}
		t, err := dateparse.ParseIn(input, loc)
		return t, "", err
	},
}

// Attempt is one parse of one input under one option set.
type Attempt struct {
	Success bool `json:"success"`
	// Date is RFC 3339 in UTC. Unix is the same instant; compare on it.
	Date    string  `json:"date,omitempty"`
	Unix    int64   `json:"unix,omitempty"`
	Grammar string  `json:"grammar,omitempty"`
	TimeMs  float64 `json:"time_ms"`
	Error   string  `json:"error,omitempty"`
}

// Result is every attempt made for one scenario.
type Result struct {
	Input       string   `json:"input"`
	Description string   `json:"description"`
	Default     Attempt  `json:"default"`
	Fuzzy       *Attempt `json:"fuzzy,omitempty"`
	DayFirst    *Attempt `json:"dayfirst,omitempty"`
}

// Run parses every scenario with base options. An input that fails is
// retried in fuzzy mode; an input with a date separator is also parsed with
// day-first.
func Run(p Parser, scenarios []Scenario, base dates.Options) []Result {
	results := make([]Result, 0, len(scenarios))
	for _, sc := range scenarios {
		r := Result{
			Input:       sc.Input,
			Description: sc.Description,
			Default:     attempt(p, sc.Input, base),
		}
		if p.Fuzzy && !r.Default.Success && sc.Input != "" {
			opts := base
			opts.Fuzzy = true
			a := attempt(p, sc.Input, opts)
			r.Fuzzy = &a
		}
		if p.DayFirst && strings.ContainsAny(sc.Input, "/-.") {
			opts := base
			opts.DayFirst = true
			a := attempt(p, sc.Input, opts)
			r.DayFirst = &a
		}
		results = append(results, r)
	}
	return results
}

func attempt(p Parser, input string, opts dates.Options) Attempt {
	start := time.Now()
	t, grammar, err := p.Parse(input, opts)
	elapsed := time.Since(start)
	if err != nil {
		return Attempt{Error: err.Error()}
	}
	u := t.UTC()
	return Attempt{
		Success: true,
		Date:    u.Format(time.RFC3339Nano),
		Unix:    u.Unix(),
		Grammar: grammar,
		TimeMs:  float64(elapsed.Nanoseconds()) / 1e6,
	}
}

// Summary counts successes over a result set.
type Summary struct {
	Total        int
	Default      int
	FuzzyExtra   int
	DayFirstDiff int
}

// Summarize counts default successes, additional fuzzy successes and inputs
// whose day-first reading differs from the default.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Default.Success {
			s.Default++
		}
		if r.Fuzzy != nil && r.Fuzzy.Success {
			s.FuzzyExtra++
		}
		if r.DayFirst != nil && r.DayFirst.Date != r.Default.Date {
			s.DayFirstDiff++
		}
	}
	return s
}
