package dates

import (
	"strconv"

	"github.com/gyeh/datesift/internal/calendar"
)

// tripleMatcher recognizes three 1-4 digit groups joined by one repeated
// separator ('/', '-' or '.'), optionally followed by a time of day.
type tripleMatcher struct{}

func (tripleMatcher) grammar() Grammar { return GrammarNumericTriple }

func (tripleMatcher) match(s string, e *env) (Match, bool) {
	g, ok := table().triple.match(s)
	if !ok {
		return Match{}, false
	}
	if a, b := g.end(gP1), g.end(gP2); a < 0 || b < 0 || s[a] != s[b] {
		return Match{}, false
	}
	var v [3]int
	for i, k := range [3]group{gP1, gP2, gP3} {
		n, err := strconv.Atoi(g.get(k))
		if err != nil {
			return Match{}, false
		}
		v[i] = n
	}
	y, m, d, err := resolveTriple(v, e.DayFirst, e.YearFirst, e.now.Year())
	if err != nil {
		e.log.Trace().Ints("groups", v[:]).Msg("numeric triple unresolved")
		return Match{}, false
	}
	f, ok := g.fields(e)
	if !ok {
		return Match{}, false
	}
	f.Year, f.YearIsSet = y, true
	f.Month, f.MonthIsSet = m, true
	f.Day, f.DayIsSet = d, true
	return Match{Fields: f}, true
}

// singleNumberMatcher recognizes a lone run of digits: a four-digit year, a
// day of the current month, or a two-digit year.
type singleNumberMatcher struct{}

func (singleNumberMatcher) grammar() Grammar { return GrammarSingleNumber }

func (singleNumberMatcher) match(s string, e *env) (Match, bool) {
	if !table().single.MatchString(s) {
		return Match{}, false
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return Match{}, false
	}
	var f FieldSet
	switch {
	case len(s) == 4 && n >= 1000:
		f.Year, f.YearIsSet = n, true
	case len(s) <= 2 && n >= 1 && n <= 31:
		f.Day, f.DayIsSet = n, true
	case len(s) <= 2 && n >= 32:
		f.Year, f.YearIsSet = calendar.WindowYear(n, e.now.Year()), true
	default:
		return Match{}, false
	}
	return Match{Fields: f}, true
}
