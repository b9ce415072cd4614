package load

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gyeh/datesift/internal/dates"
	"github.com/gyeh/datesift/internal/model"
	"github.com/gyeh/datesift/internal/normalize"
)

// minStorableYear is the earliest year a Postgres timestamptz can hold.
const minStorableYear = -4712

// ErrorKindOutOfRange marks an instant that resolved but cannot be stored.
const ErrorKindOutOfRange = "out_of_range"

var errNulByte = errors.New("contains NUL byte")

// ToParsedRow resolves one candidate row into its DB form. A parse failure is
// recorded on the row; only rows Postgres cannot accept are rejected.
func ToParsedRow(row *model.CandidateRow, pf *PreflightResult, rowNum int64, opts dates.Options) (*model.ParsedRow, error) {
	if strings.IndexByte(row.Input, 0) >= 0 {
		return nil, fmt.Errorf("input %w", errNulByte)
	}
	if row.Source != nil && strings.IndexByte(*row.Source, 0) >= 0 {
		return nil, fmt.Errorf("source %w", errNulByte)
	}

	out := &model.ParsedRow{
		LoadUUID:  pf.LoadUUID,
		BatchID:   pf.BatchID,
		RowNumber: rowNum,
		RowHash:   normalize.RowHash(rowNum, row.Input),
		Input:     row.Input,
		Source:    row.Source,
	}

	res, err := dates.ParseWithTokens(row.Input, opts)
	if err != nil {
		kind := dates.Kind(err)
		out.ErrorKind = &kind
		return out, nil
	}

	grammar := string(res.Grammar)
	out.Grammar = &grammar
	if res.Time.Year() < minStorableYear {
		kind := ErrorKindOutOfRange
		out.ErrorKind = &kind
		return out, nil
	}

	t := res.Time
	out.ParsedAt = &t
	if res.OffsetIsSet {
		off := int32(res.Offset)
		out.OffsetSeconds = &off
	}
	era := res.Fields.Era.String()
	out.Era = &era
	out.SkippedTokens = res.SkippedTokens
	return out, nil
}
