package scan

import (
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"

	"github.com/gyeh/datesift/internal/dates"
)

// WhenDetector finds natural-language spans ("tomorrow at noon", "next
// friday") with olebedev/when. Only the span is used; resolution is left to
// the dates engine.
type WhenDetector struct {
	parser *when.Parser
	now    func() time.Time
}

// NewWhenDetector builds a detector with the English and common rule sets.
func NewWhenDetector() *WhenDetector {
	p := when.New(nil)
	p.Add(en.All...)
	p.Add(common.All...)
	return &WhenDetector{parser: p, now: time.Now}
}

// DetectCandidateSpans parses text repeatedly, resuming after each result.
func (d *WhenDetector) DetectCandidateSpans(text string) []dates.Span {
	var spans []dates.Span
	base := d.now()
	for off := 0; off < len(text); {
		r, err := d.parser.Parse(text[off:], base)
		if err != nil || r == nil || r.Text == "" {
			break
		}
		start := off + r.Index
		end := start + len(r.Text)
		if end > len(text) {
			break
		}
		spans = append(spans, dates.Span{Start: start, End: end})
		off = end
	}
	return uniqueSpans(spans)
}
