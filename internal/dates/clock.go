package dates

import (
	"strconv"
	"strings"
)

// setClock fills the time-of-day fields from captured strings. Empty strings
// leave a field unset. It reports false for out-of-range components.
func setClock(f *FieldSet, hour, minute, second, frac, ampm string) bool {
	if hour == "" {
		return true
	}
	h, err := strconv.Atoi(hour)
	if err != nil {
		return false
	}
	if ampm != "" {
		if h < 1 || h > 12 {
			return false
		}
		pm := strings.ToLower(ampm)[0] == 'p'
		switch {
		case pm && h != 12:
			h += 12
		case !pm && h == 12:
			h = 0
		}
	}
	if h > 23 {
		return false
	}
	f.Hour, f.HourIsSet = h, true

	if minute != "" {
		m, err := strconv.Atoi(minute)
		if err != nil || m > 59 {
			return false
		}
		f.Minute, f.MinuteIsSet = m, true
	}
	if second != "" {
		s, err := strconv.Atoi(second)
		if err != nil || s > 59 {
			return false
		}
		f.Second, f.SecondIsSet = s, true
	}
	if frac != "" {
		f.Nanosecond, f.NanosecondIsSet = fracToNanos(frac), true
	}
	return true
}

// fracToNanos keeps millisecond precision: digits past the third are dropped,
// shorter fractions are right-padded.
func fracToNanos(frac string) int {
	if len(frac) > 3 {
		frac = frac[:3]
	}
	for len(frac) < 3 {
		frac += "0"
	}
	ms, _ := strconv.Atoi(frac)
	return ms * 1_000_000
}

// zoneOffset resolves a zone token to seconds east of UTC. Unknown names
// report false, which fails the match.
func zoneOffset(name string, e *env) (int, bool) {
	lower := strings.ToLower(name)
	switch lower {
	case "z", "utc", "gmt", "ut":
		return 0, true
	}
	if rest, ok := strings.CutPrefix(lower, "utc"); ok {
		return parseOffset(rest)
	}
	if rest, ok := strings.CutPrefix(lower, "gmt"); ok {
		return parseOffset(rest)
	}
	if lower[0] == '+' || lower[0] == '-' {
		return parseOffset(lower)
	}
	return e.alias(name)
}

// parseOffset parses "+05", "+5", "+0530", "+05:30" and "-0800".
func parseOffset(s string) (int, bool) {
	if len(s) < 2 {
		return 0, false
	}
	sign := 1
	switch s[0] {
	case '+':
	case '-':
		sign = -1
	default:
		return 0, false
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	var hh, mm string
	switch len(digits) {
	case 1, 2:
		hh = digits
	case 3:
		hh, mm = digits[:1], digits[1:]
	case 4:
		hh, mm = digits[:2], digits[2:]
	default:
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h > 23 {
		return 0, false
	}
	m := 0
	if mm != "" {
		if m, err = strconv.Atoi(mm); err != nil || m > 59 {
			return 0, false
		}
	}
	return sign * (h*3600 + m*60), true
}

// timeOnlyMatcher recognizes a bare time of day; the date comes from the
// reference.
type timeOnlyMatcher struct{}

func (timeOnlyMatcher) grammar() Grammar { return GrammarTimeOnly }

func (timeOnlyMatcher) match(s string, e *env) (Match, bool) {
	m, _, ok := matchFirst(table().timeOnly, s, e)
	return m, ok
}
