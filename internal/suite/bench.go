package suite

import (
	"time"

	"github.com/gyeh/datesift/internal/dates"
)

// BenchResult is the timing of one input over many iterations.
type BenchResult struct {
	Input      string
	Iterations int
	Failures   int
	Total      time.Duration
}

// Avg is the mean time per parse.
func (b BenchResult) Avg() time.Duration {
	if b.Iterations == 0 {
		return 0
	}
	return b.Total / time.Duration(b.Iterations)
}

// Bench parses each input iterations times with p.
func Bench(p Parser, inputs []string, iterations int, opts dates.Options) []BenchResult {
	out := make([]BenchResult, 0, len(inputs))
	for _, in := range inputs {
		r := BenchResult{Input: in, Iterations: iterations}
		start := time.Now()
		for i := 0; i < iterations; i++ {
			if _, _, err := p.Parse(in, opts); err != nil {
				r.Failures++
			}
		}
		r.Total = time.Since(start)
		out = append(out, r)
	}
	return out
}
