package load

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/gyeh/datesift/internal/dates"
)

// Fingerprint renders the result-affecting parser options as a short stable
// digest. A file is loaded once per (sha256, fingerprint) pair.
func Fingerprint(opts dates.Options) string {
	var b strings.Builder
	fmt.Fprintf(&b, "df=%t;yf=%t;fz=%t;ft=%t;vd=%t;it=%t;",
		opts.DayFirst, opts.YearFirst, opts.Fuzzy, opts.FuzzyWithTokens,
		opts.ValidateDates, opts.IgnoreTimezone)
	if !opts.Reference.IsZero() {
		b.WriteString("ref=" + opts.Reference.Format(time.RFC3339Nano) + ";")
	}
	names := make([]string, 0, len(opts.TimezoneAliases))
	for name := range opts.TimezoneAliases {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(&b, "tz:%s=%d;", strings.ToUpper(name), opts.TimezoneAliases[name])
	}
	sum := sha256.Sum256([]byte(b.String()))
	return fmt.Sprintf("%x", sum[:8])
}
