package load

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datesift/internal/dates"
	"github.com/gyeh/datesift/internal/db"
	"github.com/gyeh/datesift/internal/model"
	"github.com/gyeh/datesift/internal/parquetread"
)

const readBatchSize = 1024

// StageResult holds metrics from the staging phase.
type StageResult struct {
	RowsRead      int64
	RowsStaged    int64
	RowsRejected  int64
	RowsParsed    int64
	RowsFailed    int64
	GrammarCounts map[string]int64
	Duration      time.Duration
}

// Stage streams candidate rows from the Parquet file, resolves each one, and
// COPY-loads the results into the staging table via a channel-backed
// CopyFromSource.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, opts dates.Options) (*StageResult, error) {
	start := time.Now()

	reader, err := parquetread.Open(pf.FilePath)
	if err != nil {
		return nil, fmt.Errorf("stage open: %w", err)
	}
	defer reader.Close()

	ch := make(chan *model.ParsedRow, readBatchSize)
	errCh := make(chan error, 1)

	res := &StageResult{GrammarCounts: make(map[string]int64)}

	// Producer goroutine: read Parquet → resolve → push to channel
	go func() {
		defer close(ch)
		buf := make([]model.CandidateRow, readBatchSize)
		var rowNum int64

		for {
			n, readErr := reader.Read(buf)
			for i := 0; i < n; i++ {
				rowNum++
				res.RowsRead++

				row, convErr := ToParsedRow(&buf[i], pf, rowNum, opts)
				if convErr != nil {
					res.RowsRejected++
					log.Warn().Err(convErr).Int64("row", rowNum).Msg("row rejected")
					continue
				}
				if row.Parsed() {
					res.RowsParsed++
					res.GrammarCounts[*row.Grammar]++
				} else {
					res.RowsFailed++
					log.Debug().Int64("row", rowNum).Str("kind", *row.ErrorKind).Msg("row unresolved")
				}

				select {
				case ch <- row:
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				}
			}
			if readErr == io.EOF {
				break
			}
			if readErr != nil {
				errCh <- fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
				return
			}
		}
		errCh <- nil
	}()

	// Consumer: COPY from channel into staging table
	source := db.NewChannelSource(ch)
	rowsStaged, err := pool.CopyFrom(ctx,
		pgx.Identifier{"dates", "stage_parsed_values"},
		model.StageColumns(),
		source,
	)
	if err != nil {
		// Drain so the producer is not left blocked on send.
		for range ch {
		}
	}

	// Wait for producer to finish
	prodErr := <-errCh
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", err)
	}

	res.RowsStaged = rowsStaged
	res.Duration = time.Since(start)
	log.Info().
		Int64("rows_read", res.RowsRead).
		Int64("rows_staged", res.RowsStaged).
		Int64("rows_parsed", res.RowsParsed).
		Int64("rows_failed", res.RowsFailed).
		Int64("rows_rejected", res.RowsRejected).
		Str("duration", res.Duration.String()).
		Float64("rows_per_sec", float64(rowsStaged)/res.Duration.Seconds()).
		Msg("staging complete")

	return res, nil
}
