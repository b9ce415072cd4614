package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// loadConns covers one COPY connection plus batch bookkeeping queries.
const loadConns = 4

// NewPool opens a pool for the dates schema. Sessions run without a statement
// timeout, render timestamps in UTC and resolve unqualified names in "dates".
func NewPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pc, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	if pc.MaxConns > loadConns {
		pc.MaxConns = loadConns
	}
	params := pc.ConnConfig.RuntimeParams
	params["application_name"] = "datesift"
	params["statement_timeout"] = "0"
	params["timezone"] = "UTC"
	params["search_path"] = "dates,public"

	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping %s: %w", pc.ConnConfig.Host, err)
	}
	return pool, nil
}
