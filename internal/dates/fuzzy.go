package dates

import (
	"strings"
)

// maxFuzzyWindowTokens bounds the sub-window search; above it only the full
// candidate of all date-bearing tokens is tried.
const maxFuzzyWindowTokens = 24

var fuzzyKeywords = map[string]struct{}{
	"today": {}, "tomorrow": {}, "yesterday": {},
	"next": {}, "last": {}, "ago": {}, "in": {},
	"minute": {}, "minutes": {}, "hour": {}, "hours": {},
	"day": {}, "days": {}, "week": {}, "weeks": {},
	"month": {}, "months": {}, "year": {}, "years": {},
	"am": {}, "pm": {}, "a.m.": {}, "p.m.": {},
	"ad": {}, "bc": {}, "bce": {}, "ce": {}, "a.d.": {}, "b.c.": {},
	"of": {}, "at": {},
	"monday": {}, "tuesday": {}, "wednesday": {}, "thursday": {}, "friday": {}, "saturday": {}, "sunday": {},
	"mon": {}, "tue": {}, "wed": {}, "thu": {}, "fri": {}, "sat": {}, "sun": {},
	"utc": {}, "gmt": {}, "z": {},
}

type token struct {
	text       string
	start, end int
}

// isDateToken reports whether tok may belong to a date: it contains a digit
// or a date separator, or is a month name or date keyword once trailing
// punctuation is removed.
func isDateToken(tok string) bool {
	if tok == "" {
		return false
	}
	if strings.ContainsAny(tok, "0123456789/-.") {
		return true
	}
	word := strings.ToLower(strings.TrimRight(tok, ",;:!?"))
	if word == "" {
		return false
	}
	if _, ok := monthNumber(word); ok {
		return true
	}
	_, ok := fuzzyKeywords[word]
	return ok
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// tokenize splits a normalized (single-spaced, trimmed) string.
func tokenize(s string) []token {
	var toks []token
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ' ' {
			if i > start {
				toks = append(toks, token{text: s[start:i], start: start, end: i})
			}
			start = i + 1
		}
	}
	return toks
}

// trimCandidate strips trailing sentence punctuation and a sentence-final
// period after a digit ("on 2003-09-25.").
func trimCandidate(s string) string {
	s = strings.TrimRight(s, ",;:!?")
	if n := len(s); n > 1 && s[n-1] == '.' && isDigit(s[n-2]) {
		s = s[:n-1]
	}
	return s
}

// fuzzyParse extracts a date from text containing non-date words. The full
// candidate of all date-bearing tokens is tried first, then contiguous
// windows of those tokens, longest first and leftmost first. The returned
// skipped tokens are the non-date tokens in input order; date-bearing tokens
// left out of the winning window are not reported.
func fuzzyParse(s string, e *env) (Match, []string, bool) {
	toks := tokenize(s)
	var dated []int
	for i, t := range toks {
		if isDateToken(t.text) {
			dated = append(dated, i)
		}
	}
	if len(dated) == 0 {
		return Match{}, nil, false
	}

	try := func(lo, hi int) (Match, bool) {
		parts := make([]string, 0, hi-lo)
		for _, i := range dated[lo:hi] {
			parts = append(parts, toks[i].text)
		}
		cand := trimCandidate(strings.Join(parts, " "))
		if cand == "" {
			return Match{}, false
		}
		m, ok := tryParse(cand, e)
		if !ok {
			return Match{}, false
		}
		m.Span = Span{Start: toks[dated[lo]].start, End: toks[dated[hi-1]].end}
		return m, true
	}

	n := len(dated)
	m, ok := try(0, n)
	lo, hi := 0, n
	if !ok && n <= maxFuzzyWindowTokens {
	search:
		for size := n - 1; size >= 1; size-- {
			for start := 0; start+size <= n; start++ {
				if m, ok = try(start, start+size); ok {
					lo, hi = start, start+size
					break search
				}
			}
		}
	}
	if !ok {
		return Match{}, nil, false
	}

	var skipped []string
	for _, t := range toks {
		if !isDateToken(t.text) {
			skipped = append(skipped, t.text)
		}
	}
	e.log.Debug().Str("input", s).Int("window", hi-lo).Strs("skipped", skipped).Msg("fuzzy match")
	return m, skipped, true
}
