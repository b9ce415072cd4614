package dates

// isoMatcher recognizes extended ISO 8601: YYYY-MM-DD with an optional
// [T ]HH:MM[:SS[.fff]] and zone designator.
type isoMatcher struct{}

func (isoMatcher) grammar() Grammar { return GrammarISO8601 }

func (isoMatcher) match(s string, e *env) (Match, bool) {
	return matchOne(table().iso, s, e)
}

// compactMatcher recognizes basic ISO 8601: YYYYMMDD[THHMM[SS]].
type compactMatcher struct{}

func (compactMatcher) grammar() Grammar { return GrammarCompactISO }

func (compactMatcher) match(s string, e *env) (Match, bool) {
	return matchOne(table().compact, s, e)
}

func matchOne(p *pattern, s string, e *env) (Match, bool) {
	g, ok := p.match(s)
	if !ok {
		return Match{}, false
	}
	f, ok := g.fields(e)
	if !ok {
		return Match{}, false
	}
	return Match{Fields: f}, true
}

// matchFirst tries each pattern in order and returns the first that both
// matches and yields in-range fields.
func matchFirst(ps []*pattern, s string, e *env) (Match, *pattern, bool) {
	for _, p := range ps {
		if m, ok := matchOne(p, s, e); ok {
			return m, p, true
		}
	}
	return Match{}, nil, false
}
