package dates

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Options configures a single parse. The engine never mutates it.
type Options struct {
	// DayFirst resolves an ambiguous numeric pair as day, month.
	DayFirst bool
	// YearFirst treats the first group of an ambiguous numeric triple as the year.
	YearFirst bool
	// Fuzzy enables relative dates and extraction from text with non-date tokens.
	Fuzzy bool
	// FuzzyWithTokens implies Fuzzy and reports the skipped tokens.
	FuzzyWithTokens bool
	// ValidateDates rejects impossible days (2003-02-29). When false they are
	// clamped to the last day of the month instead.
	ValidateDates bool
	// IgnoreTimezone parses offsets but drops them from the result.
	IgnoreTimezone bool
	// Reference supplies year, month and day when the input omits them, and the
	// location for inputs without an offset. Zero means midnight UTC today.
	Reference time.Time
	// TimezoneAliases maps zone abbreviations (case-insensitive) to fixed
	// offsets in seconds east of UTC.
	TimezoneAliases map[string]int
	// Clock returns the wall clock. Relative dates and two-digit-year windowing
	// are anchored to it. Defaults to time.Now.
	Clock func() time.Time
	// Logger receives matcher decisions at debug and trace level. Nil disables it.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options used when the caller has no preference:
// month-first, strict calendar validation, no fuzzy matching.
func DefaultOptions() Options {
	return Options{ValidateDates: true}
}

// env is the per-call view of Options with defaults resolved and the wall
// clock read exactly once.
type env struct {
	Options
	now time.Time
	log zerolog.Logger
}

func newEnv(opts Options) *env {
	e := &env{Options: opts}
	if e.Clock == nil {
		e.Clock = time.Now
	}
	e.now = e.Clock()
	if e.Reference.IsZero() {
		u := e.now.UTC()
		e.Reference = time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
	}
	if e.Logger != nil {
		e.log = *e.Logger
	} else {
		e.log = zerolog.Nop()
	}
	return e
}

func (e *env) fuzzy() bool {
	return e.Fuzzy || e.FuzzyWithTokens
}

func (e *env) alias(name string) (int, bool) {
	for k, off := range e.TimezoneAliases {
		if strings.EqualFold(k, name) {
			return off, true
		}
	}
	return 0, false
}
