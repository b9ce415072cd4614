// Package dates recognizes free-form date and time strings and resolves them
// to a single instant.
//
// Input is normalized (NFKC, ASCII punctuation, collapsed whitespace) and run
// through a fixed chain of grammars: ISO 8601, compact ISO, numeric triples,
// single numbers, bare times, layout patterns, relative phrases, month names,
// apostrophe years, era markers and logger timestamps. The first grammar to
// match produces a FieldSet; fields it did not set are filled from the
// reference instant. In fuzzy mode, text around the date is skipped.
//
// Parsing is pure apart from the injected clock, and safe for concurrent use.
package dates

import (
	"time"

	"github.com/gyeh/datesift/internal/normalize"
)

// Parse returns the instant described by input.
func Parse(input string, opts Options) (time.Time, error) {
	out, err := ParseWithTokens(input, opts)
	if err != nil {
		return time.Time{}, err
	}
	return out.Time, nil
}

// ParseWithTokens is Parse returning the full Outcome: matched grammar, the
// recognized fields, the zone offset and, under FuzzyWithTokens, the tokens
// that were skipped.
func ParseWithTokens(input string, opts Options) (Outcome, error) {
	e := newEnv(opts)
	s := normalize.Input(input)
	if s == "" {
		return Outcome{}, &ParseError{Input: input, Err: ErrEmptyInput}
	}

	m, ok := tryParse(s, e)
	var skipped []string
	if !ok && e.fuzzy() {
		m, skipped, ok = fuzzyParse(s, e)
	}
	if !ok {
		e.log.Debug().Str("input", input).Msg("no grammar matched")
		return Outcome{}, &ParseError{Input: input, Err: ErrNoMatch}
	}

	t, err := assemble(m, e)
	if err != nil {
		e.log.Debug().Str("input", input).Str("grammar", string(m.Grammar)).Err(err).Msg("assembly failed")
		return Outcome{}, &ParseError{Input: input, Grammar: m.Grammar, Err: err}
	}

	out := Outcome{
		Time:    t,
		Grammar: m.Grammar,
		Fields:  m.Fields,
		Span:    m.Span,
	}
	if m.Fields.OffsetIsSet && !e.IgnoreTimezone {
		out.Offset, out.OffsetIsSet = m.Fields.Offset, true
	}
	if e.FuzzyWithTokens {
		out.SkippedTokens = skipped
	}
	e.log.Debug().Str("input", input).Str("grammar", string(m.Grammar)).Time("time", t).Msg("parsed")
	return out, nil
}
