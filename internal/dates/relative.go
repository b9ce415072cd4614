package dates

import (
	"strconv"
	"strings"
	"time"
)

// relativeMatcher recognizes today/tomorrow/yesterday, "next|last week|month|year",
// "N units ago" and "in N units". Only active in fuzzy mode. Results are
// anchored to the wall clock in the reference location and set every field.
type relativeMatcher struct{}

func (relativeMatcher) grammar() Grammar { return GrammarRelative }

func (relativeMatcher) match(s string, e *env) (Match, bool) {
	if !e.fuzzy() {
		return Match{}, false
	}
	now := e.now.In(e.Reference.Location())
	for _, p := range table().relative {
		g, ok := p.match(s)
		if !ok {
			continue
		}
		var t time.Time
		switch p.name {
		case "day-keyword":
			t, ok = resolveKeyword(strings.ToLower(g.named("kw")), now)
		case "next-last":
			n := 1
			if strings.EqualFold(g.named("dir"), "last") {
				n = -1
			}
			t, ok = shift(now, n, strings.ToLower(g.named("unit")))
		case "ago", "in":
			n, err := strconv.Atoi(g.named("n"))
			if err != nil {
				return Match{}, false
			}
			if p.name == "ago" {
				n = -n
			}
			t, ok = shift(now, n, strings.ToLower(g.named("unit")))
		}
		if !ok {
			return Match{}, false
		}
		return Match{Fields: fieldsOf(t)}, true
	}
	return Match{}, false
}

func resolveKeyword(kw string, now time.Time) (time.Time, bool) {
	anchor := startOfDay(now)
	switch kw {
	case "today":
		return anchor, true
	case "tomorrow":
		return anchor.AddDate(0, 0, 1), true
	case "yesterday":
		return anchor.AddDate(0, 0, -1), true
	default:
		return time.Time{}, false
	}
}

func shift(now time.Time, n int, unit string) (time.Time, bool) {
	switch unit {
	case "minute":
		return now.Add(time.Duration(n) * time.Minute), true
	case "hour":
		return now.Add(time.Duration(n) * time.Hour), true
	case "day":
		return now.AddDate(0, 0, n), true
	case "week":
		return now.AddDate(0, 0, 7*n), true
	case "month":
		return now.AddDate(0, n, 0), true
	case "year":
		return now.AddDate(n, 0, 0), true
	default:
		return time.Time{}, false
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func fieldsOf(t time.Time) FieldSet {
	return FieldSet{
		Year: t.Year(), YearIsSet: true,
		Month: int(t.Month()), MonthIsSet: true,
		Day: t.Day(), DayIsSet: true,
		Hour: t.Hour(), HourIsSet: true,
		Minute: t.Minute(), MinuteIsSet: true,
		Second: t.Second(), SecondIsSet: true,
		Nanosecond: t.Nanosecond(), NanosecondIsSet: true,
	}
}
