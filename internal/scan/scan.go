// Package scan finds dates embedded in free text. A Detector proposes
// candidate spans; Scan resolves each one with the dates engine and keeps
// those that parse.
package scan

import (
	"sort"

	"github.com/gyeh/datesift/internal/dates"
)

// Detector proposes byte spans of text that may hold a date.
type Detector interface {
	DetectCandidateSpans(text string) []dates.Span
}

// Hit is one resolved date found in text.
type Hit struct {
	Span    dates.Span
	Text    string
	Outcome dates.Outcome
}

// Scan resolves every candidate span proposed by d. Spans that fail to parse
// are dropped. Candidates are tried by start offset, longest first, and a span
// overlapping an earlier hit is skipped, so the longest span that parses wins.
// Hits are ordered by start offset.
func Scan(text string, d Detector, opts dates.Options) []Hit {
	spans := uniqueSpans(d.DetectCandidateSpans(text))

	var hits []Hit
	for _, sp := range spans {
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			continue
		}
		if n := len(hits); n > 0 && sp.Start < hits[n-1].Span.End {
			continue
		}
		out, err := dates.ParseWithTokens(text[sp.Start:sp.End], opts)
		if err != nil {
			continue
		}
		hits = append(hits, Hit{Span: sp, Text: text[sp.Start:sp.End], Outcome: out})
	}
	return hits
}

// uniqueSpans orders spans by start, longest first at a shared start, and
// drops exact duplicates. Overlapping spans are kept.
func uniqueSpans(spans []dates.Span) []dates.Span {
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End > spans[j].End
	})
	var out []dates.Span
	for _, sp := range spans {
		if n := len(out); n > 0 && sp == out[n-1] {
			continue
		}
		out = append(out, sp)
	}
	return out
}
