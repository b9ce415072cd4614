package suite

import (
	"fmt"
	"sort"
	"time"
)

// Pair is the same scenario as seen by both parsers.
type Pair struct {
	Ours     Result
	Baseline Result
}

// Ratio is ours/baseline default-mode time for one input.
type Ratio struct {
	Input string
	Ratio float64
}

// Comparison is the agreement between two result sets.
type Comparison struct {
	Total        int
	BothSucceed  int
	BothFail     int
	OursOnly     []Pair
	BaselineOnly []Pair
	Different    []Pair
	// Ratios is sorted ascending: the fastest relative inputs first.
	Ratios      []Ratio
	AvgOursMs   float64
	AvgBaseMs   float64
	MedianRatio float64
}

// Compare matches two result sets scenario by scenario. Both sets must hold
// the same inputs in the same order.
func Compare(ours, baseline []Result) (*Comparison, error) {
	if len(ours) != len(baseline) {
		return nil, fmt.Errorf("result count mismatch: %d vs %d", len(ours), len(baseline))
	}
	c := &Comparison{Total: len(ours)}
	var sumOurs, sumBase float64
	var timed int
	for i := range ours {
		o, b := ours[i], baseline[i]
		if o.Input != b.Input {
			return nil, fmt.Errorf("scenario %d: input mismatch %q vs %q", i, o.Input, b.Input)
		}
		p := Pair{Ours: o, Baseline: b}
		switch {
		case o.Default.Success && b.Default.Success:
			c.BothSucceed++
			if !sameDate(o.Default, b.Default) {
				c.Different = append(c.Different, p)
			}
			sumOurs += o.Default.TimeMs
			sumBase += b.Default.TimeMs
			timed++
			if o.Default.TimeMs > 0 && b.Default.TimeMs > 0 {
				c.Ratios = append(c.Ratios, Ratio{Input: o.Input, Ratio: o.Default.TimeMs / b.Default.TimeMs})
			}
		case !o.Default.Success && !b.Default.Success:
			c.BothFail++
		case o.Default.Success:
			c.OursOnly = append(c.OursOnly, p)
		default:
			c.BaselineOnly = append(c.BaselineOnly, p)
		}
	}
	if timed > 0 {
		c.AvgOursMs = sumOurs / float64(timed)
		c.AvgBaseMs = sumBase / float64(timed)
	}
	sort.SliceStable(c.Ratios, func(i, j int) bool { return c.Ratios[i].Ratio < c.Ratios[j].Ratio })
	c.MedianRatio = median(c.Ratios)
	return c, nil
}

// sameDate reports whether two successful attempts agree on the instant or,
// failing that, on the UTC calendar date.
func sameDate(a, b Attempt) bool {
	if a.Unix == b.Unix {
		return true
	}
	ay, am, ad := time.Unix(a.Unix, 0).UTC().Date()
	by, bm, bd := time.Unix(b.Unix, 0).UTC().Date()
	return ay == by && am == bm && ad == bd
}

// median expects rs sorted by Ratio.
func median(rs []Ratio) float64 {
	n := len(rs)
	switch {
	case n == 0:
		return 0
	case n%2 == 1:
		return rs[n/2].Ratio
	default:
		return (rs[n/2-1].Ratio + rs[n/2].Ratio) / 2
	}
}
