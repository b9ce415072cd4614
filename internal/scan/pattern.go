package scan

import (
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"github.com/gyeh/datesift/internal/dates"
)

const patternTimeout = 250 * time.Millisecond

const (
	monthWords   = `jan(?:uary)?|feb(?:ruary)?|mar(?:ch)?|apr(?:il)?|may|june?|july?|aug(?:ust)?|sep(?:t(?:ember)?)?|oct(?:ober)?|nov(?:ember)?|dec(?:ember)?`
	weekdayWords = `mon(?:day)?|tue(?:s(?:day)?)?|wed(?:nesday)?|thu(?:r(?:s(?:day)?)?)?|fri(?:day)?|sat(?:urday)?|sun(?:day)?`
	unitWords    = `minute|hour|day|week|month|year`
	eraWords     = `b\.?c\.?(?:e\.?)?|a\.?d\.?|c\.?e\.?`
	clockExpr    = `\d{1,2}:\d{2}(?::\d{2}(?:[.,]\d{1,9})?)?(?:\s*[ap]\.?m\.?)?`
	zoneExpr     = `(?:z|[+-]\d{2}:?\d{2}|utc|gmt)`
)

// defaultPatterns cover the surface forms the engine recognizes. The numeric
// triple requires a repeated separator via a backreference.
var defaultPatterns = []string{
	`(?<![\w-])\d{4}-\d{2}-\d{2}(?:[t ]\d{2}:\d{2}(?::\d{2}(?:\.\d+)?)?\s?` + zoneExpr + `?)?(?![\w-])`,
	`(?<![\w])\d{8}t\d{4,6}(?:\.\d+)?` + zoneExpr + `?(?![\w])`,
	`(?<![\w/.-])\d{1,4}([/.-])\d{1,2}\1\d{1,4}(?:,?\s+(?:at\s+)?` + clockExpr + `)?(?![\w/-])`,
	`(?<![\w:])` + clockExpr + `(?:\s*` + zoneExpr + `)?(?![\w:])`,
	`\b(?:(?:` + weekdayWords + `)\.?,?\s+)?(?:` + monthWords + `)\.?\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s+'?\d{2,4}(?:\s*(?:` + eraWords + `)(?![a-z]))?)?(?:,?\s+(?:at\s+)?` + clockExpr + `)?(?![\w])`,
	`\b\d{1,2}(?:st|nd|rd|th)?\s+(?:of\s+)?(?:` + monthWords + `)\.?(?:,?\s+\d{1,4}(?:\s*(?:` + eraWords + `)(?![a-z]))?)?\b`,
	`\b(?:` + monthWords + `)\.?,?\s+\d{4}\b`,
	`(?<![\w'])'\d{2}-\d{1,2}-\d{1,2}\b`,
	`\b\d{1,4}\s*(?:` + eraWords + `)(?![a-z])`,
	`\b(?:today|tomorrow|yesterday|(?:next|last)\s+(?:week|month|year)|\d{1,6}\s+(?:` + unitWords + `)s?\s+ago|in\s+\d{1,6}\s+(?:` + unitWords + `)s?)\b`,
}

// PatternDetector finds candidate spans with backtracking regular
// expressions. Every pattern carries a match timeout.
type PatternDetector struct {
	res []*regexp2.Regexp
}

// NewPatternDetector compiles the given patterns case-insensitively. With no
// patterns it uses the built-in set.
func NewPatternDetector(patterns ...string) (*PatternDetector, error) {
	if len(patterns) == 0 {
		patterns = defaultPatterns
	}
	d := &PatternDetector{}
	for _, p := range patterns {
		re, err := regexp2.Compile(p, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
		re.MatchTimeout = patternTimeout
		d.res = append(d.res, re)
	}
	return d, nil
}

// DetectCandidateSpans returns byte spans ordered by start, longest first at
// each start. Spans from different patterns may overlap. A pattern that times
// out contributes the matches found so far.
func (d *PatternDetector) DetectCandidateSpans(text string) []dates.Span {
	offsets := runeOffsets(text)
	var spans []dates.Span
	for _, re := range d.res {
		m, err := re.FindStringMatch(text)
		for err == nil && m != nil {
			spans = append(spans, dates.Span{
				Start: offsets[m.Index],
				End:   offsets[m.Index+m.Length],
			})
			m, err = re.FindNextMatch(m)
		}
	}
	return uniqueSpans(spans)
}

// runeOffsets maps rune index i to its byte offset; the final entry is len(s).
func runeOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}
