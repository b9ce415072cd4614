package dates

import (
	"fmt"
	"time"

	"github.com/gyeh/datesift/internal/calendar"
)

// assemble fills absent fields from the reference, checks the calendar and
// builds the instant. A day borrowed from the reference is always clamped to
// the target month; a day from the input is validated or clamped according to
// ValidateDates.
func assemble(m Match, e *env) (time.Time, error) {
	f := m.Fields
	ref := e.Reference

	year, month, day := ref.Year(), int(ref.Month()), ref.Day()
	if f.YearIsSet {
		year = f.Year
	}
	if f.MonthIsSet {
		month = f.Month
	}
	if !calendar.ValidMonth(month) {
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, calendar.ErrMonthRange)
	}
	switch {
	case !f.DayIsSet:
		day = calendar.ClampDay(year, month, day)
	case e.ValidateDates:
		if err := calendar.Validate(year, month, f.Day); err != nil {
			return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidDate, err)
		}
		day = f.Day
	default:
		day = calendar.ClampDay(year, month, f.Day)
	}

	loc := ref.Location()
	if f.OffsetIsSet && !e.IgnoreTimezone {
		loc = fixedZone(f.Offset)
	}

	t := time.Date(year, time.Month(month), day,
		valueOr(f.Hour, f.HourIsSet), valueOr(f.Minute, f.MinuteIsSet),
		valueOr(f.Second, f.SecondIsSet), valueOr(f.Nanosecond, f.NanosecondIsSet), loc)
	return t.Add(m.Shift), nil
}

func valueOr(v int, set bool) int {
	if set {
		return v
	}
	return 0
}

func fixedZone(offset int) *time.Location {
	if offset == 0 {
		return time.UTC
	}
	return time.FixedZone("", offset)
}
