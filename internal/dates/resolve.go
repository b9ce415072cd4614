package dates

import (
	"errors"

	"github.com/gyeh/datesift/internal/calendar"
)

var errAmbiguous = errors.New("ambiguous numeric triple")

// resolveTriple assigns year, month and day roles to three numeric groups.
//
// A group greater than 31 can only be a year, so its position wins. Otherwise
// YearFirst picks the first group and the default picks the last. The other
// two are month, day (or day, month under DayFirst), swapped when the month
// candidate exceeds 12 and the day candidate does not. Years up to 99 are
// windowed around currentYear.
func resolveTriple(v [3]int, dayFirst, yearFirst bool, currentYear int) (year, month, day int, err error) {
	var yi int
	switch {
	case v[0] > 31:
		yi = 0
	case v[2] > 31:
		yi = 2
	case yearFirst:
		yi = 0
	default:
		yi = 2
	}

	var rest [2]int
	for i, n := 0, 0; i < 3; i++ {
		if i != yi {
			rest[n] = v[i]
			n++
		}
	}
	month, day = rest[0], rest[1]
	if dayFirst {
		month, day = day, month
	}
	if month > 12 && day <= 12 {
		month, day = day, month
	}
	if !calendar.ValidMonth(month) || day < 1 || day > 31 {
		return 0, 0, 0, errAmbiguous
	}

	year = v[yi]
	if year <= 99 {
		year = calendar.WindowYear(year, currentYear)
	}
	return year, month, day, nil
}
