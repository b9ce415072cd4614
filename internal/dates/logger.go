package dates

import (
	"strconv"
	"time"
)

// loggerMatcher recognizes "<datetime>,NNN" as written by common logging
// libraries. The base must carry hours, minutes and seconds; the three digits
// after the comma are applied as a millisecond shift.
type loggerMatcher struct{}

func (loggerMatcher) grammar() Grammar { return GrammarLogger }

func (loggerMatcher) match(s string, e *env) (Match, bool) {
	sub := table().logger.FindStringSubmatch(s)
	if sub == nil {
		return Match{}, false
	}
	m, ok := patternMatcher{}.match(sub[1], e)
	if !ok {
		return Match{}, false
	}
	f := m.Fields
	if !f.HourIsSet || !f.MinuteIsSet || !f.SecondIsSet {
		return Match{}, false
	}
	ms, err := strconv.Atoi(sub[2])
	if err != nil {
		return Match{}, false
	}
	m.Shift = time.Duration(ms) * time.Millisecond
	return m, true
}
