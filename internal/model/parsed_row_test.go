package model

import (
	"testing"
	"time"
)

func TestCopyValuesMatchColumns(t *testing.T) {
	r := &ParsedRow{RowNumber: 1, Input: "2003-09-25"}
	if got, want := len(r.CopyValues()), len(StageColumns()); got != want {
		t.Fatalf("CopyValues has %d values, StageColumns has %d", got, want)
	}
}

func TestParsed(t *testing.T) {
	r := &ParsedRow{}
	if r.Parsed() {
		t.Error("row without ParsedAt reported as parsed")
	}
	ts := time.Date(2003, 9, 25, 0, 0, 0, 0, time.UTC)
	r.ParsedAt = &ts
	if !r.Parsed() {
		t.Error("row with ParsedAt reported as unparsed")
	}
}
