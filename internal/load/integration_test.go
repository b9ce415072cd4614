package load_test

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/datesift/internal/config"
	"github.com/gyeh/datesift/internal/db"
	"github.com/gyeh/datesift/internal/load"
	"github.com/gyeh/datesift/internal/logging"
	"github.com/gyeh/datesift/internal/model"
)

const (
	testPort     = 15432
	testDB       = "datesifttest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

func TestMain(m *testing.M) {
	if os.Getenv("DATESIFT_INTEGRATION") == "" {
		fmt.Fprintln(os.Stderr, "SKIP: set DATESIFT_INTEGRATION=1 to run load integration tests")
		os.Exit(0)
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// ---------- helpers ----------

// setupDB creates a connection pool on a clean schema with migrations applied.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS dates CASCADE"); err != nil {
		t.Fatalf("drop schema dates: %v", err)
	}

	log := logging.Setup("text", "warn")
	if _, err := db.ApplyMigrations(ctx, pool, log); err != nil {
		pool.Close()
		t.Fatalf("migrations: %v", err)
	}

	t.Cleanup(func() { pool.Close() })
	return pool
}

// writeFixture writes candidate rows to a parquet file under t.TempDir.
func writeFixture(t *testing.T, inputs ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create fixture: %v", err)
	}
	defer f.Close()

	rows := make([]model.CandidateRow, len(inputs))
	for i, in := range inputs {
		rows[i] = model.CandidateRow{Input: in}
	}
	w := goparquet.NewGenericWriter[model.CandidateRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close fixture writer: %v", err)
	}
	return path
}

func testConfig(path string) *config.Config {
	return &config.Config{
		DSN:       testDSN,
		FilePath:  path,
		LogFormat: "text",
		LogLevel:  "warn",
		Parser:    config.ParserConfig{Reference: "2010-01-01"},
	}
}

func countRows(t *testing.T, pool *pgxpool.Pool, query string, args ...any) int64 {
	t.Helper()
	var n int64
	if err := pool.QueryRow(context.Background(), query, args...).Scan(&n); err != nil {
		t.Fatalf("count %q: %v", query, err)
	}
	return n
}

// ---------- tests ----------

func TestEndToEnd_DefaultMode(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")

	path := writeFixture(t,
		"2003-09-25T10:49:41-03:00",
		"09/25/2003",
		"Sep 25 2003",
		"753 BC",
		"not a date",
		"2003-02-30",
	)
	cfg := testConfig(path)
	cfg.KeepStaging = true

	summary, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("load.Run: %v", err)
	}

	t.Run("summary_metrics", func(t *testing.T) {
		if summary.RowsRead != 6 || summary.RowsStaged != 6 {
			t.Errorf("read/staged = %d/%d, want 6/6", summary.RowsRead, summary.RowsStaged)
		}
		if summary.RowsParsed != 4 || summary.RowsFailed != 2 {
			t.Errorf("parsed/failed = %d/%d, want 4/2", summary.RowsParsed, summary.RowsFailed)
		}
		if summary.RowsPublished != 6 {
			t.Errorf("RowsPublished = %d, want 6", summary.RowsPublished)
		}
		if summary.GrammarCounts["era"] != 1 || summary.GrammarCounts["iso8601"] != 1 {
			t.Errorf("GrammarCounts = %v", summary.GrammarCounts)
		}
	})

	t.Run("staging_kept", func(t *testing.T) {
		if n := countRows(t, pool, "SELECT count(*) FROM dates.stage_parsed_values"); n != 6 {
			t.Errorf("staging rows = %d, want 6", n)
		}
	})

	t.Run("published_instants", func(t *testing.T) {
		var at time.Time
		var off int32
		err := pool.QueryRow(ctx,
			"SELECT parsed_at, offset_seconds FROM dates.parsed_values WHERE row_number = 1").Scan(&at, &off)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if want := time.Date(2003, 9, 25, 13, 49, 41, 0, time.UTC); !at.Equal(want) {
			t.Errorf("parsed_at = %v, want %v", at, want)
		}
		if off != -10800 {
			t.Errorf("offset_seconds = %d, want -10800", off)
		}
	})

	t.Run("failures_recorded", func(t *testing.T) {
		rows, err := pool.Query(ctx,
			"SELECT row_number, error_kind FROM dates.parsed_values WHERE parsed_at IS NULL ORDER BY row_number")
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		defer rows.Close()
		got := make(map[int64]string)
		for rows.Next() {
			var n int64
			var kind string
			if err := rows.Scan(&n, &kind); err != nil {
				t.Fatalf("scan: %v", err)
			}
			got[n] = kind
		}
		if got[5] != "no_match" || got[6] != "invalid_date" {
			t.Errorf("error kinds = %v", got)
		}
	})

	t.Run("batch_loaded", func(t *testing.T) {
		var status string
		var read, parsed, failed int64
		err := pool.QueryRow(ctx,
			"SELECT status, rows_read, rows_parsed, rows_failed FROM dates.load_batches WHERE batch_id = $1",
			summary.BatchID).Scan(&status, &read, &parsed, &failed)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if status != "loaded" || read != 6 || parsed != 4 || failed != 2 {
			t.Errorf("batch = %s %d/%d/%d", status, read, parsed, failed)
		}
	})
}

func TestEndToEnd_Idempotent(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")
	cfg := testConfig(writeFixture(t, "2003-09-25", "today"))

	first, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("first run: %v", err)
	}
	second, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("second run: %v", err)
	}
	if second.BatchID != first.BatchID {
		t.Errorf("batch id changed: %d → %d", first.BatchID, second.BatchID)
	}
	if second.RowsRead != 0 {
		t.Errorf("second run read %d rows, want skip", second.RowsRead)
	}
	if n := countRows(t, pool, "SELECT count(*) FROM dates.stage_parsed_values"); n != 0 {
		t.Errorf("staging rows after cleanup = %d, want 0", n)
	}

	cfg.Force = true
	third, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("forced run: %v", err)
	}
	if third.RowsPublished != 2 {
		t.Errorf("forced RowsPublished = %d, want 2", third.RowsPublished)
	}
	if n := countRows(t, pool, "SELECT count(*) FROM dates.parsed_values WHERE batch_id = $1", first.BatchID); n != 2 {
		t.Errorf("published rows = %d, want 2", n)
	}
}

func TestEndToEnd_OptionsFormNewBatch(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	log := logging.Setup("text", "warn")
	path := writeFixture(t, "01/02/2003")

	cfg := testConfig(path)
	monthFirst, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("month-first run: %v", err)
	}

	cfg.Parser.DayFirst = true
	dayFirst, err := load.Run(ctx, pool, log, cfg)
	if err != nil {
		t.Fatalf("day-first run: %v", err)
	}
	if dayFirst.BatchID == monthFirst.BatchID {
		t.Fatal("day-first run should register a separate batch")
	}

	var a, b time.Time
	q := "SELECT parsed_at FROM dates.parsed_values WHERE batch_id = $1"
	if err := pool.QueryRow(ctx, q, monthFirst.BatchID).Scan(&a); err != nil {
		t.Fatalf("query: %v", err)
	}
	if err := pool.QueryRow(ctx, q, dayFirst.BatchID).Scan(&b); err != nil {
		t.Fatalf("query: %v", err)
	}
	if a.Month() != time.January || b.Month() != time.February {
		t.Errorf("month-first %v, day-first %v", a, b)
	}
}

func TestMigrations_Reapply(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()

	applied, err := db.ApplyMigrations(ctx, pool, logging.Setup("text", "warn"))
	if err != nil {
		t.Fatalf("reapply: %v", err)
	}
	if len(applied) != 0 {
		t.Errorf("reapply ran %v, want nothing", applied)
	}
	if n := countRows(t, pool, "SELECT count(*) FROM dates.schema_migrations"); n == 0 {
		t.Error("migration ledger is empty")
	}
}
