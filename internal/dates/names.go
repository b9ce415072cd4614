package dates

// patternMatcher walks the fixed table of layout patterns (Unix date, RFC 1123,
// RFC 850, year-month-day with time, month-only and year-less forms).
type patternMatcher struct{}

func (patternMatcher) grammar() Grammar { return GrammarPattern }

func (patternMatcher) match(s string, e *env) (Match, bool) {
	m, p, ok := matchFirst(table().fallback, s, e)
	if ok {
		e.log.Trace().Str("pattern", p.name).Msg("layout pattern matched")
	}
	return m, ok
}

// monthNameMatcher recognizes "3rd of May 2001", "25 Sep 2003",
// "May 3rd, 2001" and "Wed, September 25, 2003 10:36", with an optional
// weekday prefix and trailing time.
type monthNameMatcher struct{}

func (monthNameMatcher) grammar() Grammar { return GrammarMonthName }

func (monthNameMatcher) match(s string, e *env) (Match, bool) {
	m, _, ok := matchFirst(table().monthName, s, e)
	return m, ok
}

// apostropheMatcher recognizes abbreviated years written as 'YY:
// "July 10, '96", "'96-07-10" and "10-Jul-'96".
type apostropheMatcher struct{}

func (apostropheMatcher) grammar() Grammar { return GrammarApostrophe }

func (apostropheMatcher) match(s string, e *env) (Match, bool) {
	m, _, ok := matchFirst(table().apostrophe, s, e)
	return m, ok
}
