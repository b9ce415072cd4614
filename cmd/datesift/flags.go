package main

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/gyeh/datesift/internal/config"
	"github.com/gyeh/datesift/internal/dates"
)

// parserFlagSet holds the parser flags shared by every command that resolves dates.
type parserFlagSet struct {
	dayFirst    bool
	yearFirst   bool
	fuzzy       bool
	fuzzyTokens bool
	noValidate  bool
	ignoreTZ    bool
	reference   string
	tzAliases   []string
}

var parserFlags parserFlagSet

func (p *parserFlagSet) register(fs *pflag.FlagSet) {
	fs.BoolVar(&p.dayFirst, "day-first", false, "Read ambiguous numeric dates as day/month")
	fs.BoolVar(&p.yearFirst, "year-first", false, "Read ambiguous numeric dates as year/month/day")
	fs.BoolVar(&p.fuzzy, "fuzzy", false, "Skip non-date words around the date")
	fs.BoolVar(&p.fuzzyTokens, "fuzzy-tokens", false, "Fuzzy mode, reporting skipped tokens")
	fs.BoolVar(&p.noValidate, "no-validate", false, "Clamp out-of-range days instead of rejecting them")
	fs.BoolVar(&p.ignoreTZ, "ignore-tz", false, "Ignore zone designators; read times in the reference location")
	fs.StringVar(&p.reference, "reference", "", "Reference instant for missing fields (RFC 3339 or YYYY-MM-DD)")
	fs.StringArrayVar(&p.tzAliases, "tz-alias", nil, "Zone abbreviation NAME=±HH:MM (repeatable)")
}

// apply overrides p with the flags the user set explicitly.
func (p *parserFlagSet) apply(fs *pflag.FlagSet, pc *config.ParserConfig) error {
	if fs.Lookup("day-first") == nil {
		return nil
	}
	if fs.Changed("day-first") {
		pc.DayFirst = p.dayFirst
	}
	if fs.Changed("year-first") {
		pc.YearFirst = p.yearFirst
	}
	if fs.Changed("fuzzy") {
		pc.Fuzzy = p.fuzzy
	}
	if fs.Changed("fuzzy-tokens") {
		pc.FuzzyWithTokens = p.fuzzyTokens
	}
	if fs.Changed("no-validate") {
		v := !p.noValidate
		pc.ValidateDates = &v
	}
	if fs.Changed("ignore-tz") {
		pc.IgnoreTimezone = p.ignoreTZ
	}
	if fs.Changed("reference") {
		pc.Reference = p.reference
	}
	if len(p.tzAliases) > 0 && pc.TimezoneAliases == nil {
		pc.TimezoneAliases = make(map[string]string, len(p.tzAliases))
	}
	for _, a := range p.tzAliases {
		name, off, ok := strings.Cut(a, "=")
		if !ok || name == "" {
			return fmt.Errorf("--tz-alias %q: want NAME=±HH:MM", a)
		}
		for k := range pc.TimezoneAliases {
			if strings.EqualFold(k, name) {
				delete(pc.TimezoneAliases, k)
			}
		}
		pc.TimezoneAliases[strings.ToUpper(name)] = off
	}
	if _, err := pc.Options(); err != nil {
		return fmt.Errorf("parser flags: %w", err)
	}
	return nil
}

// parserOptions converts the merged parser config, already checked by
// loadConfig, and attaches log for matcher tracing.
func parserOptions(log zerolog.Logger) dates.Options {
	opts, err := cfg.Parser.Options()
	if err != nil {
		opts = dates.DefaultOptions()
	}
	opts.Logger = &log
	return opts
}
