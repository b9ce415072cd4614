package load

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	embedsql "github.com/gyeh/datesift/internal/sql"
)

// PublishResult holds metrics from the publish phase.
type PublishResult struct {
	RowsPublished int64
	Duration      time.Duration
}

// Publish moves one run's staged rows into dates.parsed_values in a single
// INSERT ... SELECT, upserting by (batch_id, row_number).
func Publish(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, loadUUID uuid.UUID) (*PublishResult, error) {
	start := time.Now()

	tag, err := pool.Exec(ctx, embedsql.PublishBatch, loadUUID)
	if err != nil {
		return nil, fmt.Errorf("publish parsed values: %w", err)
	}

	res := &PublishResult{RowsPublished: tag.RowsAffected(), Duration: time.Since(start)}
	log.Info().
		Int64("rows_published", res.RowsPublished).
		Dur("duration", res.Duration).
		Msg("publish complete")
	return res, nil
}
