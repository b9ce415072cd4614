package dates

// matcher is one grammar in the recognition chain. match reports false when
// the grammar does not apply so the chain can move on.
type matcher interface {
	grammar() Grammar
	match(s string, e *env) (Match, bool)
}

// chain is tried in order; the first grammar to match wins. Ambiguity inside
// a grammar is reported as a plain non-match.
var chain = [...]matcher{
	isoMatcher{},
	compactMatcher{},
	tripleMatcher{},
	singleNumberMatcher{},
	timeOnlyMatcher{},
	patternMatcher{},
	relativeMatcher{},
	monthNameMatcher{},
	apostropheMatcher{},
	eraMatcher{},
	loggerMatcher{},
}

func tryParse(s string, e *env) (Match, bool) {
	for _, m := range chain {
		res, ok := m.match(s, e)
		if !ok {
			continue
		}
		res.Grammar = m.grammar()
		res.Span = Span{Start: 0, End: len(s)}
		e.log.Trace().Str("candidate", s).Str("grammar", string(res.Grammar)).Msg("grammar matched")
		return res, true
	}
	return Match{}, false
}
