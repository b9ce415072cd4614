package dates

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/gyeh/datesift/internal/calendar"
)

// Shared regex fragments. Every pattern is compiled case-insensitive and
// anchored at both ends.
const (
	monthAlt      = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`
	weekdayAlt    = `mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:r(?:s(?:day)?)?)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?`
	weekdayPrefix = `(?:(?:` + weekdayAlt + `)\.?,?\s+)?`
	ordinal       = `(?:st|nd|rd|th)?`
	mon           = `(?P<mon>` + monthAlt + `)\.?`
	ampm          = `(?P<ampm>[ap]\.?m\.?)`
	clock         = `(?P<hour>\d{1,2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d{1,9}))?)?(?:\s*` + ampm + `)?`
	numericZone   = `z|[+-]\d{2}(?::?\d{2})?`
	zone          = `(?P<tz>` + numericZone + `|(?:utc|gmt)[+-]\d{1,2}(?::?\d{2})?|[a-z]{3,5})`
	eraAlt        = `(?P<era>b\.c\.e\.|b\.c\.|bce|bc|a\.d\.|ad|c\.e\.|ce)`
)

type group int

const (
	gYear group = iota
	gMonth
	gMon
	gDay
	gHour
	gMinute
	gSecond
	gFrac
	gAmPm
	gTZ
	gEra
	gP1
	gP2
	gP3
	numGroups
)

var groupNames = [numGroups]string{
	"year", "month", "mon", "day", "hour", "minute", "second", "frac", "ampm", "tz", "era", "p1", "p2", "p3",
}

// pattern is a compiled grammar regex with its named-group indexes resolved.
type pattern struct {
	name string
	re   *regexp.Regexp
	idx  [numGroups]int
	// literalYear disables two-digit windowing for the year group.
	literalYear bool
}

func compile(name, expr string) *pattern {
	p := &pattern{name: name, re: regexp.MustCompile(`(?i)^(?:` + expr + `)$`)}
	for g, n := range groupNames {
		p.idx[g] = p.re.SubexpIndex(n)
	}
	return p
}

// groups is one submatch of a pattern against s.
type groups struct {
	s   string
	loc []int
	p   *pattern
}

func (p *pattern) match(s string) (groups, bool) {
	loc := p.re.FindStringSubmatchIndex(s)
	if loc == nil {
		return groups{}, false
	}
	return groups{s: s, loc: loc, p: p}, true
}

func (g groups) get(k group) string {
	i := g.p.idx[k]
	if i < 0 || g.loc[2*i] < 0 {
		return ""
	}
	return g.s[g.loc[2*i]:g.loc[2*i+1]]
}

// end returns the byte offset just past group k, or -1.
func (g groups) end(k group) int {
	i := g.p.idx[k]
	if i < 0 {
		return -1
	}
	return g.loc[2*i+1]
}

// named returns a group outside the shared set, or "" when it did not take part.
func (g groups) named(name string) string {
	i := g.p.re.SubexpIndex(name)
	if i < 0 || g.loc[2*i] < 0 {
		return ""
	}
	return g.s[g.loc[2*i]:g.loc[2*i+1]]
}

// fields converts the captured groups into a FieldSet. It reports false when a
// captured value is structurally out of range (month 13, minute 61) or a zone
// word resolves to neither UTC, a numeric offset nor an alias.
func (g groups) fields(e *env) (FieldSet, bool) {
	var f FieldSet
	if s := g.get(gYear); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return f, false
		}
		if len(s) <= 2 && !g.p.literalYear {
			y = calendar.WindowYear(y, e.now.Year())
		}
		f.Year, f.YearIsSet = y, true
	}
	if s := g.get(gMonth); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil || !calendar.ValidMonth(m) {
			return f, false
		}
		f.Month, f.MonthIsSet = m, true
	}
	if s := g.get(gMon); s != "" {
		m, ok := monthNumber(s)
		if !ok {
			return f, false
		}
		f.Month, f.MonthIsSet = m, true
	}
	if s := g.get(gDay); s != "" {
		d, err := strconv.Atoi(s)
		if err != nil || d < 1 || d > 31 {
			return f, false
		}
		f.Day, f.DayIsSet = d, true
	}
	if !setClock(&f, g.get(gHour), g.get(gMinute), g.get(gSecond), g.get(gFrac), g.get(gAmPm)) {
		return f, false
	}
	if s := g.get(gTZ); s != "" {
		off, ok := zoneOffset(s, e)
		if !ok {
			e.log.Trace().Str("zone", s).Msg("unknown zone")
			return f, false
		}
		f.Offset, f.OffsetIsSet = off, true
	}
	return f, true
}

var monthNames = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// monthNumber maps a full or three-letter month name (any case, optional
// trailing period) to 1..12.
func monthNumber(s string) (int, bool) {
	s = strings.TrimSuffix(strings.ToLower(s), ".")
	if s == "sept" {
		return 9, true
	}
	for i, name := range monthNames {
		if s == name || s == name[:3] {
			return i + 1, true
		}
	}
	return 0, false
}

// patternTable holds every compiled grammar. It is built once on first use and
// never mutated.
type patternTable struct {
	iso        *pattern
	compact    *pattern
	triple     *pattern
	single     *regexp.Regexp
	timeOnly   []*pattern
	fallback   []*pattern
	relative   []*pattern
	monthName  []*pattern
	apostrophe []*pattern
	era        []*pattern
	logger     *regexp.Regexp
}

var table = sync.OnceValue(buildTable)

func buildTable() *patternTable {
	t := &patternTable{
		iso: compile("iso8601",
			`(?P<year>\d{4})-(?P<month>\d{2})-(?P<day>\d{2})`+
				`(?:[t ](?P<hour>\d{2}):(?P<minute>\d{2})(?::(?P<second>\d{2})(?:\.(?P<frac>\d+))?)?\s?(?P<tz>`+numericZone+`)?)?`),
		compact: compile("compact_iso",
			`(?P<year>\d{4})(?P<month>\d{2})(?P<day>\d{2})`+
				`(?:t(?P<hour>\d{2})(?P<minute>\d{2})(?P<second>\d{2})?(?:\.(?P<frac>\d+))?(?P<tz>`+numericZone+`)?)?`),
		triple: compile("numeric_triple",
			`(?P<p1>\d{1,4})[/.-](?P<p2>\d{1,4})[/.-](?P<p3>\d{1,4})(?:,?\s+(?:at\s+)?`+clock+`(?:\s*`+zone+`)?)?`),
		single: regexp.MustCompile(`^\d+$`),
		timeOnly: []*pattern{
			compile("clock", clock+`(?:\s*`+zone+`)?`),
			compile("hour-ampm", `(?P<hour>\d{1,2})\s*`+ampm+`(?:\s+`+zone+`)?`),
		},
		fallback: []*pattern{
			compile("unixdate", weekdayPrefix+mon+`\s+(?P<day>\d{1,2})\s+`+clock+`(?:\s+`+zone+`)?\s+(?P<year>\d{4})`),
			compile("rfc1123", weekdayPrefix+`(?P<day>\d{1,2})\s+`+mon+`\s+(?P<year>\d{2,4})\s+`+clock+`(?:\s*`+zone+`)?`),
			compile("rfc850", weekdayPrefix+`(?P<day>\d{1,2})-`+mon+`-(?P<year>\d{2,4})\s+`+clock+`(?:\s*`+zone+`)?`),
			compile("datetime", `(?P<year>\d{4})[-/](?P<month>\d{1,2})[-/](?P<day>\d{1,2})(?:t|\s+)`+clock+`(?:\s*`+zone+`)?`),
			compile("month-year", mon+`,?\s+(?P<year>\d{4})`),
			compile("year-month-day", `(?P<year>\d{4})\s+`+mon+`\s+(?P<day>\d{1,2})`+ordinal),
			compile("month-day", weekdayPrefix+mon+`\s+(?P<day>\d{1,2})`+ordinal+`(?:,?\s+(?:at\s+)?`+clock+`)?`),
			compile("day-month", weekdayPrefix+`(?P<day>\d{1,2})`+ordinal+`\s+(?:of\s+)?`+mon),
			compile("day-mon-year", `(?P<day>\d{1,2})-`+mon+`-(?P<year>\d{2,4})`),
			compile("mon-day-year", mon+`-(?P<day>\d{1,2})-(?P<year>\d{2,4})`),
			compile("year-mon-day", `(?P<year>\d{4})-`+mon+`-(?P<day>\d{1,2})`),
		},
		relative: []*pattern{
			compile("day-keyword", `(?P<kw>today|tomorrow|yesterday)`),
			compile("next-last", `(?P<dir>next|last)\s+(?P<unit>week|month|year)`),
			compile("ago", `(?P<n>\d{1,6})\s+(?P<unit>minute|hour|day|week|month|year)s?\s+ago`),
			compile("in", `in\s+(?P<n>\d{1,6})\s+(?P<unit>minute|hour|day|week|month|year)s?`),
		},
		monthName: []*pattern{
			compile("day-of-month-year",
				weekdayPrefix+`(?P<day>\d{1,2})`+ordinal+`\s+(?:of\s+)?`+mon+`,?\s+(?P<year>\d{1,4})(?:,?\s+(?:at\s+)?`+clock+`(?:\s*`+zone+`)?)?`),
			compile("month-day-year",
				weekdayPrefix+mon+`\s+(?P<day>\d{1,2})`+ordinal+`,?\s+(?P<year>\d{1,4})(?:,?\s+(?:at\s+)?`+clock+`(?:\s*`+zone+`)?)?`),
		},
		apostrophe: []*pattern{
			compile("month-day-'yy", weekdayPrefix+mon+`\s+(?P<day>\d{1,2})`+ordinal+`,?\s+'(?P<year>\d{2})`),
			compile("'yy-mm-dd", `'(?P<year>\d{2})-(?P<month>\d{1,2})-(?P<day>\d{1,2})`),
			compile("dd-mon-'yy", `(?P<day>\d{1,2})-`+mon+`-'(?P<year>\d{2})`),
		},
		era: []*pattern{
			compile("year-era",
				`(?P<year>\d{1,4})(?:\.(?:`+mon+`|(?P<month>\d{1,2}))\.(?P<day>\d{1,2}))?\s*`+eraAlt+`(?:\s+`+clock+`)?`),
			compile("month-day-year-era", mon+`\s+(?P<day>\d{1,2})`+ordinal+`,?\s+(?P<year>\d{1,4})\s*`+eraAlt),
			compile("day-month-year-era", `(?P<day>\d{1,2})`+ordinal+`\s+(?:of\s+)?`+mon+`,?\s+(?P<year>\d{1,4})\s*`+eraAlt),
		},
		logger: regexp.MustCompile(`^(.+?),(\d{3})$`),
	}
	for _, p := range t.era {
		p.literalYear = true
	}
	return t
}
