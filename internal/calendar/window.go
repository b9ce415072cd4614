package calendar

// WindowYear expands a two-digit year to four digits using a sliding 50-year
// window around currentYear: the result lies in [currentYear-50, currentYear+50).
// Years >= 100 and negative years are returned unchanged.
func WindowYear(year, currentYear int) int {
	if year < 0 || year > 99 {
		return year
	}
	century := currentYear - currentYear%100
	full := century + year
	switch {
	case full >= currentYear+50:
		full -= 100
	case full < currentYear-50:
		full += 100
	}
	return full
}
