// Package calendar implements the proleptic Gregorian arithmetic the parser
// relies on: leap years, month lengths, date validation and era conversion.
//
// Years are astronomical ("internal") years: 1 BC is year 0, 2 BC is year -1.
// The leap rule is applied to the internal year, which keeps year 0 a leap year.
package calendar

import (
	"errors"
	"fmt"
)

var (
	ErrMonthRange = errors.New("month out of range")
	ErrDayRange   = errors.New("day out of range")
)

var daysInMonth = [13]int{0, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month of year, or 0 for an invalid month.
func DaysIn(year, month int) int {
	if !ValidMonth(month) {
		return 0
	}
	if month == 2 && IsLeap(year) {
		return 29
	}
	return daysInMonth[month]
}

// ValidMonth reports whether 1 <= month <= 12.
func ValidMonth(month int) bool {
	return month >= 1 && month <= 12
}

// Validate checks month range and day-in-month range, including February 29.
func Validate(year, month, day int) error {
	if !ValidMonth(month) {
		return fmt.Errorf("%w: %d", ErrMonthRange, month)
	}
	if day < 1 || day > DaysIn(year, month) {
		return fmt.Errorf("%w: %04d-%02d-%02d", ErrDayRange, year, month, day)
	}
	return nil
}

// ClampDay pulls day into [1, DaysIn(year, month)].
func ClampDay(year, month, day int) int {
	last := DaysIn(year, month)
	if day > last {
		return last
	}
	if day < 1 {
		return 1
	}
	return day
}

// FromBCE converts a displayed BC/BCE year to the internal year (1 BC -> 0).
func FromBCE(displayed int) int {
	return 1 - displayed
}

// DisplayYear returns the displayed year and whether it belongs to the BCE era.
func DisplayYear(internal int) (int, bool) {
	if internal <= 0 {
		return 1 - internal, true
	}
	return internal, false
}
