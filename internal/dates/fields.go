package dates

import "time"

// Era distinguishes CE from BCE years. FieldSet.Year always holds the internal
// (astronomical) year; Era records which marker the input carried.
type Era int

const (
	EraCE Era = iota
	EraBCE
)

func (e Era) String() string {
	if e == EraBCE {
		return "BCE"
	}
	return "CE"
}

// Grammar names the surface form that recognized an input.
type Grammar string

const (
	GrammarISO8601       Grammar = "iso8601"
	GrammarCompactISO    Grammar = "compact_iso"
	GrammarNumericTriple Grammar = "numeric_triple"
	GrammarSingleNumber  Grammar = "single_number"
	GrammarTimeOnly      Grammar = "time_only"
	GrammarPattern       Grammar = "pattern"
	GrammarRelative      Grammar = "relative"
	GrammarMonthName     Grammar = "month_name"
	GrammarApostrophe    Grammar = "apostrophe_year"
	GrammarEra           Grammar = "era"
	GrammarLogger        Grammar = "logger_millis"
)

// FieldSet holds the date/time fields a grammar recognized. A field whose
// IsSet flag is false was not present in the input and is filled in by the
// assembler from the reference instant.
type FieldSet struct {
	Year            int
	YearIsSet       bool
	Month           int
	MonthIsSet      bool
	Day             int
	DayIsSet        bool
	Hour            int
	HourIsSet       bool
	Minute          int
	MinuteIsSet     bool
	Second          int
	SecondIsSet     bool
	Nanosecond      int
	NanosecondIsSet bool
	Offset          int // seconds east of UTC
	OffsetIsSet     bool
	Era             Era
}

// Span is a half-open byte range [Start, End) in the normalized input.
type Span struct {
	Start int
	End   int
}

// Match is what a grammar produces on success.
type Match struct {
	Fields  FieldSet
	Grammar Grammar
	Span    Span
	// Shift is added to the assembled instant. The logger grammar uses it to
	// apply milliseconds as an offset rather than a field.
	Shift time.Duration
}

// Outcome is the full result of a successful parse.
type Outcome struct {
	Time        time.Time
	Offset      int
	OffsetIsSet bool
	Grammar     Grammar
	Fields      FieldSet
	Span        Span
	// SkippedTokens lists the non-date tokens of a fuzzy parse in input order.
	// It is only populated when Options.FuzzyWithTokens is set.
	SkippedTokens []string
}
