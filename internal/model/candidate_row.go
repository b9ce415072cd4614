package model

// CandidateRow mirrors the Parquet schema of a candidate-strings file: one
// free-form date string per row, with optional provenance.
type CandidateRow struct {
	Input  string  `parquet:"input"`
	Source *string `parquet:"source,optional"`
	// Note is carried through untouched; fixtures use it to record the grammar
	// the string is expected to hit.
	Note *string `parquet:"note,optional"`
}
