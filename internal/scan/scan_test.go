package scan

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/gyeh/datesift/internal/dates"
)

// ---------- helpers ----------

var fixedNow = time.Date(2026, 10, 19, 15, 4, 5, 0, time.UTC)

func scanOptions() dates.Options {
	opts := dates.DefaultOptions()
	opts.Fuzzy = true
	opts.Clock = func() time.Time { return fixedNow }
	return opts
}

// fixedDetector returns a canned span list.
type fixedDetector []dates.Span

func (d fixedDetector) DetectCandidateSpans(string) []dates.Span {
	return append([]dates.Span(nil), d...)
}

func spanOf(t *testing.T, text, sub string) dates.Span {
	t.Helper()
	i := strings.Index(text, sub)
	if i < 0 {
		t.Fatalf("%q not in %q", sub, text)
	}
	return dates.Span{Start: i, End: i + len(sub)}
}

func spanTexts(text string, spans []dates.Span) []string {
	out := make([]string, len(spans))
	for i, sp := range spans {
		out[i] = text[sp.Start:sp.End]
	}
	return out
}

// ---------- Scan ----------

func TestScan_OrdersDedupesAndDrops(t *testing.T) {
	text := "due 2003-09-25 or maybe 09/30/2003, certainly not blorp"
	iso := spanOf(t, text, "2003-09-25")
	triple := spanOf(t, text, "09/30/2003")
	bogus := spanOf(t, text, "blorp")
	isoShort := dates.Span{Start: iso.Start, End: iso.Start + 4}

	hits := Scan(text, fixedDetector{triple, bogus, isoShort, iso}, scanOptions())
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}
	if hits[0].Span != iso || hits[0].Text != "2003-09-25" {
		t.Errorf("hit 0 = %+v, want longest span at the shared start", hits[0])
	}
	if hits[1].Span != triple {
		t.Errorf("hit 1 span = %+v, want %+v", hits[1].Span, triple)
	}
	want := time.Date(2003, 9, 30, 0, 0, 0, 0, time.UTC)
	if !hits[1].Outcome.Time.Equal(want) {
		t.Errorf("hit 1 time = %v, want %v", hits[1].Outcome.Time, want)
	}
}

func TestScan_LongestParsingSpanWins(t *testing.T) {
	opts := dates.DefaultOptions()
	opts.Clock = func() time.Time { return fixedNow }

	text := "blorp 2003-09-25 10:00"
	whole := dates.Span{Start: 0, End: len(text)}
	date := spanOf(t, text, "2003-09-25")
	clock := spanOf(t, text, "10:00")
	stamp := dates.Span{Start: date.Start, End: clock.End}

	hits := Scan(text, fixedDetector{clock, date, whole}, opts)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2: %+v", len(hits), hits)
	}
	if hits[0].Span != date || hits[1].Span != clock {
		t.Errorf("hits = %+v, want the date then the clock", hits)
	}

	hits = Scan(text, fixedDetector{clock, date, whole, stamp}, opts)
	if len(hits) != 1 || hits[0].Span != stamp {
		t.Fatalf("hits = %+v, want only %q", hits, text[stamp.Start:stamp.End])
	}
	want := time.Date(2003, 9, 25, 10, 0, 0, 0, time.UTC)
	if !hits[0].Outcome.Time.Equal(want) {
		t.Errorf("time = %v, want %v", hits[0].Outcome.Time, want)
	}
}

func TestScan_IgnoresInvalidSpans(t *testing.T) {
	text := "2003-09-25"
	hits := Scan(text, fixedDetector{{Start: -1, End: 3}, {Start: 5, End: 50}, {Start: 4, End: 4}}, scanOptions())
	if len(hits) != 0 {
		t.Errorf("got %d hits from out-of-range spans", len(hits))
	}
}

func TestScan_NoSpans(t *testing.T) {
	if hits := Scan("nothing here", fixedDetector{}, scanOptions()); hits != nil {
		t.Errorf("got %v, want nil", hits)
	}
}

// ---------- PatternDetector ----------

func TestPatternDetector_Text(t *testing.T) {
	d, err := NewPatternDetector()
	if err != nil {
		t.Fatalf("NewPatternDetector: %v", err)
	}
	text := "Shipped 2003-09-25, returned 09/30/2003 and invoiced Oct 2, 2003 at 10:49 AM and again tomorrow"

	want := []string{"2003-09-25", "09/30/2003", "Oct 2, 2003 at 10:49 AM", "tomorrow"}
	detected := spanTexts(text, d.DetectCandidateSpans(text))
	for _, w := range want {
		if !slices.Contains(detected, w) {
			t.Errorf("spans %q missing %q", detected, w)
		}
	}

	hits := Scan(text, d, scanOptions())
	if len(hits) != len(want) {
		t.Fatalf("got %d hits, want %d: %+v", len(hits), len(want), hits)
	}
	for i, w := range want {
		if hits[i].Text != w {
			t.Errorf("hit %d = %q, want %q", i, hits[i].Text, w)
		}
	}
	wantTimes := []time.Time{
		time.Date(2003, 9, 25, 0, 0, 0, 0, time.UTC),
		time.Date(2003, 9, 30, 0, 0, 0, 0, time.UTC),
		time.Date(2003, 10, 2, 10, 49, 0, 0, time.UTC),
		time.Date(2026, 10, 20, 0, 0, 0, 0, time.UTC),
	}
	for i, w := range wantTimes {
		if !hits[i].Outcome.Time.Equal(w) {
			t.Errorf("hit %d (%q) = %v, want %v", i, hits[i].Text, hits[i].Outcome.Time, w)
		}
	}
}

func TestPatternDetector_MixedSeparatorsRejected(t *testing.T) {
	d, err := NewPatternDetector()
	if err != nil {
		t.Fatalf("NewPatternDetector: %v", err)
	}
	text := "ref 10/09-03 only"
	for _, sp := range d.DetectCandidateSpans(text) {
		if s := text[sp.Start:sp.End]; strings.Contains(s, "/") && strings.Contains(s, "-") {
			t.Errorf("detected mixed-separator span %q", s)
		}
	}
}

func TestPatternDetector_ByteOffsetsAfterMultibyte(t *testing.T) {
	d, err := NewPatternDetector()
	if err != nil {
		t.Fatalf("NewPatternDetector: %v", err)
	}
	text := "café – réunion le 2003-09-25"
	spans := d.DetectCandidateSpans(text)
	if len(spans) != 1 {
		t.Fatalf("spans = %v, want 1", spans)
	}
	if got := text[spans[0].Start:spans[0].End]; got != "2003-09-25" {
		t.Errorf("span text = %q, want 2003-09-25", got)
	}
}

func TestPatternDetector_Era(t *testing.T) {
	d, err := NewPatternDetector()
	if err != nil {
		t.Fatalf("NewPatternDetector: %v", err)
	}
	text := "Rome was founded in 753 BC by legend"
	got := spanTexts(text, d.DetectCandidateSpans(text))
	if len(got) != 1 || got[0] != "753 BC" {
		t.Errorf("spans = %q, want [753 BC]", got)
	}
}

func TestNewPatternDetector_BadPattern(t *testing.T) {
	if _, err := NewPatternDetector(`(unclosed`); err == nil {
		t.Error("expected compile error")
	}
}

func TestRuneOffsets(t *testing.T) {
	got := runeOffsets("aé b")
	want := []int{0, 1, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("runeOffsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("offset %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestUniqueSpans(t *testing.T) {
	got := uniqueSpans([]dates.Span{{Start: 10, End: 12}, {Start: 0, End: 5}, {Start: 0, End: 8}, {Start: 6, End: 9}, {Start: 0, End: 8}})
	want := []dates.Span{{Start: 0, End: 8}, {Start: 0, End: 5}, {Start: 6, End: 9}, {Start: 10, End: 12}}
	if len(got) != len(want) {
		t.Fatalf("uniqueSpans = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("span %d = %v, want %v", i, got[i], want[i])
		}
	}
}

// ---------- WhenDetector ----------

func TestWhenDetector_FindsCasualDate(t *testing.T) {
	d := NewWhenDetector()
	d.now = func() time.Time { return fixedNow }
	text := "let's sync tomorrow about the release"
	spans := d.DetectCandidateSpans(text)
	if len(spans) == 0 {
		t.Fatal("no spans detected")
	}
	found := false
	for _, sp := range spans {
		if sp.Start < 0 || sp.End > len(text) || sp.Start >= sp.End {
			t.Fatalf("span out of range: %+v", sp)
		}
		if strings.Contains(text[sp.Start:sp.End], "tomorrow") {
			found = true
		}
	}
	if !found {
		t.Errorf("spans %q do not cover tomorrow", spanTexts(text, spans))
	}
}

func TestWhenDetector_NoDates(t *testing.T) {
	d := NewWhenDetector()
	if spans := d.DetectCandidateSpans("plain words only"); len(spans) != 0 {
		t.Errorf("spans = %v, want none", spans)
	}
}
