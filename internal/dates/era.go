package dates

import (
	"strings"

	"github.com/gyeh/datesift/internal/calendar"
)

// eraMatcher recognizes years carrying an AD/CE/BC/BCE marker. Era years are
// taken literally (never windowed) and must be at least 1. Missing month and
// day default to January 1.
type eraMatcher struct{}

func (eraMatcher) grammar() Grammar { return GrammarEra }

func (eraMatcher) match(s string, e *env) (Match, bool) {
	for _, p := range table().era {
		g, ok := p.match(s)
		if !ok {
			continue
		}
		f, ok := g.fields(e)
		if !ok || f.Year < 1 {
			continue
		}
		if !f.MonthIsSet {
			f.Month, f.MonthIsSet = 1, true
		}
		if !f.DayIsSet {
			f.Day, f.DayIsSet = 1, true
		}
		if strings.ContainsRune(strings.ToLower(g.get(gEra)), 'b') {
			f.Year = calendar.FromBCE(f.Year)
			f.Era = EraBCE
		}
		return Match{Fields: f}, true
	}
	return Match{}, false
}
