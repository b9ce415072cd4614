package model

import "time"

// LoadSummary captures metrics from a single file load run.
type LoadSummary struct {
	FilePath         string
	FileSHA256       string
	BatchID          int64
	LoadUUID         string
	RowsRead         int64
	RowsStaged       int64
	RowsRejected     int64
	RowsParsed       int64
	RowsFailed       int64
	RowsPublished    int64
	GrammarCounts    map[string]int64
	DurationStage    time.Duration
	DurationPublish  time.Duration
	DurationFinalize time.Duration
	DurationTotal    time.Duration
}
