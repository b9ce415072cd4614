package dates

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyInput  = errors.New("empty input")
	ErrNoMatch     = errors.New("no matching grammar")
	ErrInvalidDate = errors.New("invalid calendar date")
)

// ParseError wraps a terminal parse failure with the original, untrimmed input.
type ParseError struct {
	Input   string
	Grammar Grammar // set when a grammar matched but assembly failed
	Err     error
}

func (e *ParseError) Error() string {
	if e.Grammar != "" {
		return fmt.Sprintf("parse %q (%s): %s", e.Input, e.Grammar, e.Err)
	}
	return fmt.Sprintf("parse %q: %s", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Kind returns a short stable name for the failure class of err, or "" when
// err is nil or not a parse failure.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, ErrInvalidDate):
		return "invalid_date"
	case errors.Is(err, ErrNoMatch):
		return "no_match"
	default:
		return ""
	}
}
