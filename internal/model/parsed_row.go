package model

import (
	"time"

	"github.com/google/uuid"
)

// ParsedRow is the DB-ready resolution of a single candidate string. A row
// whose input failed to parse keeps ParsedAt nil and records ErrorKind.
type ParsedRow struct {
	LoadUUID  uuid.UUID
	BatchID   int64
	RowNumber int64
	RowHash   []byte

	Input  string
	Source *string

	ParsedAt      *time.Time
	OffsetSeconds *int32
	Grammar       *string
	Era           *string
	SkippedTokens []string
	ErrorKind     *string
}

// Parsed reports whether the input resolved to an instant.
func (r *ParsedRow) Parsed() bool {
	return r.ParsedAt != nil
}

// StageColumns returns the ordered column names for COPY into dates.stage_parsed_values.
func StageColumns() []string {
	return []string{
		"load_uuid",
		"batch_id",
		"row_number",
		"row_hash",
		"input",
		"source",
		"parsed_at",
		"offset_seconds",
		"grammar",
		"era",
		"skipped_tokens",
		"error_kind",
	}
}

// CopyValues returns the row values in the same order as StageColumns(),
// suitable for pgx CopyFromSource.
func (r *ParsedRow) CopyValues() []any {
	return []any{
		r.LoadUUID,
		r.BatchID,
		r.RowNumber,
		r.RowHash,
		r.Input,
		r.Source,
		r.ParsedAt,
		r.OffsetSeconds,
		r.Grammar,
		r.Era,
		r.SkippedTokens,
		r.ErrorKind,
	}
}
