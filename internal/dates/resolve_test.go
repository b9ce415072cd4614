package dates

import (
	"errors"
	"testing"
)

func TestResolveTriple(t *testing.T) {
	tests := []struct {
		name                string
		v                   [3]int
		dayFirst, yearFirst bool
		y, m, d             int
	}{
		{"mdy", [3]int{9, 25, 2003}, false, false, 2003, 9, 25},
		{"dmy by magnitude", [3]int{25, 9, 2003}, false, false, 2003, 9, 25},
		{"ymd by magnitude", [3]int{2003, 9, 25}, false, false, 2003, 9, 25},
		{"ydm by magnitude", [3]int{2003, 25, 9}, false, false, 2003, 9, 25},
		{"ambiguous default", [3]int{10, 9, 3}, false, false, 2003, 10, 9},
		{"ambiguous dayfirst", [3]int{10, 9, 3}, true, false, 2003, 9, 10},
		{"ambiguous yearfirst", [3]int{10, 9, 3}, false, true, 2010, 9, 3},
		{"yearfirst dayfirst", [3]int{10, 9, 3}, true, true, 2010, 3, 9},
		{"large first group wins over flags", [3]int{99, 1, 2}, true, false, 1999, 2, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			y, m, d, err := resolveTriple(tt.v, tt.dayFirst, tt.yearFirst, 2026)
			if err != nil {
				t.Fatalf("resolveTriple: %v", err)
			}
			if y != tt.y || m != tt.m || d != tt.d {
				t.Errorf("got %04d-%02d-%02d, want %04d-%02d-%02d", y, m, d, tt.y, tt.m, tt.d)
			}
		})
	}
}

func TestResolveTriple_Unresolvable(t *testing.T) {
	for _, v := range [][3]int{{13, 13, 2003}, {10, 45, 9}, {0, 5, 2003}} {
		if _, _, _, err := resolveTriple(v, false, false, 2026); !errors.Is(err, errAmbiguous) {
			t.Errorf("resolveTriple(%v): expected errAmbiguous, got %v", v, err)
		}
	}
}

func TestMonthNumber(t *testing.T) {
	tests := map[string]int{
		"Jan": 1, "january": 1, "SEPT": 9, "Sep.": 9, "september": 9, "dec": 12,
	}
	for in, want := range tests {
		if got, ok := monthNumber(in); !ok || got != want {
			t.Errorf("monthNumber(%q) = %d, %v; want %d", in, got, ok, want)
		}
	}
	if _, ok := monthNumber("smarch"); ok {
		t.Error("monthNumber accepted a non-month")
	}
}

func TestParseOffset(t *testing.T) {
	tests := []struct {
		in   string
		want int
		ok   bool
	}{
		{"+05:00", 18000, true},
		{"-0800", -28800, true},
		{"+5", 18000, true},
		{"+530", 19800, true},
		{"+25", 0, false},
		{"05:00", 0, false},
		{"+05:75", 0, false},
	}
	for _, tt := range tests {
		got, ok := parseOffset(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("parseOffset(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}
