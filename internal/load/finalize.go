package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datesift/internal/sql"
)

// Finalize records row counts, marks the batch loaded, and runs ANALYZE.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID, rowsRead int64) (time.Duration, error) {
	start := time.Now()

	if _, err := pool.Exec(ctx, embedsql.FinalizeBatch, batchID, rowsRead); err != nil {
		return 0, fmt.Errorf("finalize batch: %w", err)
	}
	log.Info().Int64("batch_id", batchID).Msg("batch marked loaded")

	if _, err := pool.Exec(ctx, embedsql.Analyze); err != nil {
		return 0, fmt.Errorf("analyze parsed values: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
