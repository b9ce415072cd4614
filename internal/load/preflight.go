package load

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datesift/internal/normalize"
	"github.com/gyeh/datesift/internal/parquetread"
	embedsql "github.com/gyeh/datesift/internal/sql"
)

// PreflightResult holds all context resolved during the preflight phase.
type PreflightResult struct {
	// FilePath is the original path passed to Preflight, stored as-is.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 digest of the file.
	FileSHA256 string
	FileSize   int64
	// Fingerprint identifies the parser options the batch is resolved with.
	Fingerprint string
	// BatchID is the dates.load_batches key for (sha256, fingerprint).
	BatchID int64
	// LoadUUID tags this run's staged rows for publish and cleanup.
	LoadUUID uuid.UUID
	NumRows  int64
	// AlreadyLoaded is true when the batch finished loading earlier and force
	// mode is off.
	AlreadyLoaded bool
}

// Preflight hashes the file, validates its schema and registers the batch.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath, fingerprint string, force bool) (*PreflightResult, error) {
	start := time.Now()

	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetread.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetread.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}
	numRows := reader.NumRows()

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", sha).
		Int64("rows", numRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	batchID, alreadyLoaded, err := registerBatch(ctx, pool, filePath, sha, stat.Size(), fingerprint, force)
	if err != nil {
		return nil, fmt.Errorf("preflight register batch: %w", err)
	}

	return &PreflightResult{
		FilePath:      filePath,
		FileSHA256:    sha,
		FileSize:      stat.Size(),
		Fingerprint:   fingerprint,
		BatchID:       batchID,
		LoadUUID:      uuid.New(),
		NumRows:       numRows,
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerBatch(ctx context.Context, pool *pgxpool.Pool, filePath, sha string, fileSize int64, fingerprint string, force bool) (int64, bool, error) {
	var batchID int64
	err := pool.QueryRow(ctx, embedsql.RegisterBatch,
		filepath.Base(filePath), sha, fileSize, fingerprint,
	).Scan(&batchID)

	if errors.Is(err, pgx.ErrNoRows) {
		// Already registered (ON CONFLICT DO NOTHING returned no rows)
		var status string
		if err2 := pool.QueryRow(ctx, embedsql.LookupBatch, sha, fingerprint).Scan(&batchID, &status); err2 != nil {
			return 0, false, fmt.Errorf("lookup existing batch: %w", err2)
		}

		if !force && status == "loaded" {
			return batchID, true, nil
		}

		// Reset for re-import; publish upserts by row number, so stale rows
		// past the new file's end must go too.
		if _, err3 := pool.Exec(ctx, embedsql.DeletePublishedBatch, batchID); err3 != nil {
			return 0, false, fmt.Errorf("clear published rows: %w", err3)
		}
		if err3 := UpdateStatus(ctx, pool, batchID, "pending"); err3 != nil {
			return 0, false, fmt.Errorf("reset batch status: %w", err3)
		}
		return batchID, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("register batch: %w", err)
	}
	return batchID, false, nil
}

// UpdateStatus sets the load_batches status.
func UpdateStatus(ctx context.Context, pool *pgxpool.Pool, batchID int64, status string) error {
	_, err := pool.Exec(ctx, embedsql.UpdateBatchStatus, batchID, status)
	return err
}
