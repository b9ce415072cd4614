package calendar

import (
	"errors"
	"testing"
)

func TestIsLeap(t *testing.T) {
	tests := []struct {
		year int
		want bool
	}{
		{2004, true},
		{2003, false},
		{1900, false},
		{2000, true},
		{0, true},
		{-1, false},
		{-4, true},
	}
	for _, tt := range tests {
		if got := IsLeap(tt.year); got != tt.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tt.year, got, tt.want)
		}
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2004, 2); got != 29 {
		t.Errorf("DaysIn(2004, 2) = %d, want 29", got)
	}
	if got := DaysIn(2003, 2); got != 28 {
		t.Errorf("DaysIn(2003, 2) = %d, want 28", got)
	}
	if got := DaysIn(2003, 9); got != 30 {
		t.Errorf("DaysIn(2003, 9) = %d, want 30", got)
	}
	if got := DaysIn(2003, 13); got != 0 {
		t.Errorf("DaysIn(2003, 13) = %d, want 0", got)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(2004, 2, 29); err != nil {
		t.Fatalf("2004-02-29 should be valid: %v", err)
	}
	if err := Validate(2003, 2, 29); !errors.Is(err, ErrDayRange) {
		t.Fatalf("2003-02-29: expected ErrDayRange, got %v", err)
	}
	if err := Validate(2003, 9, 31); !errors.Is(err, ErrDayRange) {
		t.Fatalf("2003-09-31: expected ErrDayRange, got %v", err)
	}
	if err := Validate(2003, 0, 1); !errors.Is(err, ErrMonthRange) {
		t.Fatalf("month 0: expected ErrMonthRange, got %v", err)
	}
}

func TestClampDay(t *testing.T) {
	if got := ClampDay(2003, 2, 31); got != 28 {
		t.Errorf("ClampDay(2003, 2, 31) = %d, want 28", got)
	}
	if got := ClampDay(2004, 2, 30); got != 29 {
		t.Errorf("ClampDay(2004, 2, 30) = %d, want 29", got)
	}
	if got := ClampDay(2003, 5, 0); got != 1 {
		t.Errorf("ClampDay(2003, 5, 0) = %d, want 1", got)
	}
}

func TestEraConversion(t *testing.T) {
	if got := FromBCE(1); got != 0 {
		t.Errorf("FromBCE(1) = %d, want 0", got)
	}
	if got := FromBCE(44); got != -43 {
		t.Errorf("FromBCE(44) = %d, want -43", got)
	}
	if y, bce := DisplayYear(-43); y != 44 || !bce {
		t.Errorf("DisplayYear(-43) = %d, %v", y, bce)
	}
	if y, bce := DisplayYear(2003); y != 2003 || bce {
		t.Errorf("DisplayYear(2003) = %d, %v", y, bce)
	}
}

func TestWindowYear(t *testing.T) {
	tests := []struct {
		year, current, want int
	}{
		{3, 2026, 2003},
		{96, 2026, 1996},
		{99, 2026, 1999},
		{75, 2026, 2075},
		{76, 2026, 1976},
		{0, 2026, 2000},
		{10, 2080, 2110},
		{40, 2080, 2040},
	}
	for _, tt := range tests {
		if got := WindowYear(tt.year, tt.current); got != tt.want {
			t.Errorf("WindowYear(%d, %d) = %d, want %d", tt.year, tt.current, got, tt.want)
		}
	}
}

func TestWindowYear_IdempotentAbove99(t *testing.T) {
	for _, y := range []int{100, 753, 1000, 1996, 2003, 9999} {
		if got := WindowYear(y, 2026); got != y {
			t.Errorf("WindowYear(%d) = %d, want unchanged", y, got)
		}
		once := WindowYear(y, 2026)
		if twice := WindowYear(once, 2026); twice != once {
			t.Errorf("WindowYear not idempotent for %d: %d then %d", y, once, twice)
		}
	}
}
