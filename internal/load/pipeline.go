package load

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datesift/internal/config"
	"github.com/gyeh/datesift/internal/model"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full load pipeline: preflight → stage → publish →
// finalize → cleanup.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, cfg *config.Config) (*model.LoadSummary, error) {
	totalStart := time.Now()

	opts, err := cfg.Parser.Options()
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}
	fingerprint := Fingerprint(opts)

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Str("options", fingerprint).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, fingerprint, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: "preflight", Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Int64("batch_id", pf.BatchID).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded with these options, skipping (use --force to reload)")
		return &model.LoadSummary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			BatchID:       pf.BatchID,
			LoadUUID:      pf.LoadUUID.String(),
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := UpdateStatus(ctx, pool, pf.BatchID, "staging"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	stageResult, err := Stage(ctx, pool, log, pf, opts)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.BatchID, "failed")
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	if err := UpdateStatus(ctx, pool, pf.BatchID, "staged"); err != nil {
		return nil, &PipelineError{Phase: "stage", Err: err}
	}

	// Phase 3: Publish
	log.Info().Msg("publishing")
	publishResult, err := Publish(ctx, pool, log, pf.LoadUUID)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.BatchID, "failed")
		return nil, &PipelineError{Phase: "publish", Err: err}
	}

	// Phase 4: Finalize
	log.Info().Msg("finalizing")
	finalizeDur, err := Finalize(ctx, pool, log, pf.BatchID, stageResult.RowsRead)
	if err != nil {
		_ = UpdateStatus(ctx, pool, pf.BatchID, "failed")
		return nil, &PipelineError{Phase: "finalize", Err: err}
	}

	// Phase 5: Cleanup staging
	if !cfg.KeepStaging {
		log.Info().Msg("cleaning up staging")
		if err := Cleanup(ctx, pool, log, pf.LoadUUID); err != nil {
			log.Warn().Err(err).Msg("staging cleanup failed (non-fatal)")
		}
	}

	summary := &model.LoadSummary{
		FilePath:         pf.FilePath,
		FileSHA256:       pf.FileSHA256,
		BatchID:          pf.BatchID,
		LoadUUID:         pf.LoadUUID.String(),
		RowsRead:         stageResult.RowsRead,
		RowsStaged:       stageResult.RowsStaged,
		RowsRejected:     stageResult.RowsRejected,
		RowsParsed:       stageResult.RowsParsed,
		RowsFailed:       stageResult.RowsFailed,
		RowsPublished:    publishResult.RowsPublished,
		GrammarCounts:    stageResult.GrammarCounts,
		DurationStage:    stageResult.Duration,
		DurationPublish:  publishResult.Duration,
		DurationFinalize: finalizeDur,
		DurationTotal:    time.Since(totalStart),
	}

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_staged", summary.RowsStaged).
		Int64("rows_parsed", summary.RowsParsed).
		Int64("rows_failed", summary.RowsFailed).
		Int64("rows_rejected", summary.RowsRejected).
		Int64("rows_published", summary.RowsPublished).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("load pipeline complete")

	return summary, nil
}
