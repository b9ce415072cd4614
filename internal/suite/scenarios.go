// Package suite runs the dates engine over a fixed scenario list, compares
// the results with a baseline parser and times common inputs.
package suite

// Scenario is one input with a human description.
type Scenario struct {
	Input       string
	Description string
}

// Scenarios covers every grammar plus the usual failure cases.
var Scenarios = []Scenario{
	// ISO
	{"2003-09-25T10:49:41", "ISO datetime with T separator"},
	{"2003-09-25 10:49:41", "ISO datetime with space separator"},
	{"2003-09-25", "ISO date only"},
	{"20030925T104941", "Compact ISO datetime"},
	{"20030925", "Compact ISO date"},

	// numeric
	{"09/25/2003", "US format MM/DD/YYYY"},
	{"25/09/2003", "EU format DD/MM/YYYY"},
	{"09-25-2003", "US format with dashes"},
	{"25-09-2003", "EU format with dashes"},
	{"09.25.2003", "US format with dots"},
	{"25.09.2003", "EU format with dots"},
	{"2003/09/25", "Year first with slashes"},
	{"10/09/03", "Short date - ambiguous"},
	{"10-09-03", "Short date with dashes"},
	{"10.09.03", "Short date with dots"},

	// month names
	{"Sep 25 2003", "Month abbreviation"},
	{"September 25, 2003", "Full month name with comma"},
	{"25 Sep 2003", "Day first with month name"},
	{"3rd of May 2001", "Ordinal date"},
	{"May 3rd, 2001", "Ordinal date US style"},

	// time of day
	{"10:36:28", "Time only HH:MM:SS"},
	{"10:36", "Time only HH:MM"},
	{"10:36:28 PM", "Time with PM"},
	{"10:36:28 AM", "Time with AM"},
	{"22:36:28", "24-hour time"},

	// layouts
	{"Thu Sep 25 10:36:28 2003", "Unix date format"},
	{"Wed, July 10, '96", "Abbreviated year with apostrophe"},
	{"1996.July.10 AD 12:08 PM", "Complex format with AD"},
	{"2003-09-25 10:49:41,502", "Logger format with milliseconds"},

	// apostrophe years
	{"July 10, '96", "Apostrophe year without day name"},
	{"'96-07-10", "Apostrophe year ISO style"},
	{"10-Jul-'96", "Apostrophe year with month abbreviation"},
	{"December 25 '99", "Apostrophe year end of string"},

	// eras
	{"753 BC", "BC year only"},
	{"2023 CE", "CE year"},
	{"1 AD", "Year 1 AD"},
	{"December 31, 1 BC", "Date with BC"},
	{"1996.July.10 AD", "AD date without time"},
	{"44 BC", "Julius Caesar's death year"},

	// relative
	{"today", "Relative - today"},
	{"tomorrow", "Relative - tomorrow"},
	{"yesterday", "Relative - yesterday"},
	{"3 days ago", "Relative - days ago"},
	{"in 2 weeks", "Relative - in weeks"},
	{"next month", "Relative - next month"},
	{"last year", "Relative - last year"},

	// edge cases
	{"", "Empty string"},
	{"not a date", "Invalid text"},
	{"2003-02-29", "Invalid date - not leap year"},
	{"2004-02-29", "Valid leap year date"},
	{"2003-09-31", "Invalid date - September has 30 days"},
	{"99", "Two digit number"},
	{"10", "Two digit number"},
	{"2003", "Year only"},

	// fuzzy
	{"Today is January 1, 2047 at 8:21:00AM", "Fuzzy - date in sentence"},
	{"The deadline is 2023-12-25", "Fuzzy - date at end"},
	{"On Sep 25 2003 something happened", "Fuzzy - date in middle"},

	// separators
	{"2003/09/25", "Forward slashes"},
	{`2003\09\25`, "Backslashes"},
	{"2003_09_25", "Underscores"},

	// zones
	{"2003-09-25T10:49:41Z", "ISO with UTC timezone"},
	{"2003-09-25T10:49:41+05:00", "ISO with timezone offset"},
	{"2003-09-25T10:49:41-08:00", "ISO with negative timezone offset"},
}

// BenchInputs are the common forms timed by Bench.
var BenchInputs = []string{
	"2023-12-25",
	"12/25/2023",
	"December 25, 2023",
	"2023-12-25T10:30:00",
	"tomorrow",
	"3 days ago",
}
