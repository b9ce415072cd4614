package normalize

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var multiSpace = regexp.MustCompile(`\s+`)

// punctuationFolder maps typographic apostrophes and dashes to their ASCII forms.
var punctuationFolder = strings.NewReplacer(
	"‘", "'",
	"’", "'",
	"ʼ", "'",
	"′", "'",
	"‐", "-",
	"‑", "-",
	"‒", "-",
	"–", "-",
	"−", "-",
)

// Input prepares a raw date string for grammar matching: NFKC folding (full-width
// digits, no-break spaces), ASCII apostrophes and dashes, collapsed whitespace,
// trimmed ends. Case is preserved.
func Input(s string) string {
	s = norm.NFKC.String(s)
	s = punctuationFolder.Replace(s)
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Fields splits s on whitespace after the same folding Input applies, so that
// token boundaries agree with the normalized string.
func Fields(s string) []string {
	return strings.Fields(punctuationFolder.Replace(norm.NFKC.String(s)))
}
