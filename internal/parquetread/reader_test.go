package parquetread

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datesift/internal/model"
)

// ---------- helpers ----------

func writeCandidates(t *testing.T, rows []model.CandidateRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "candidates.parquet")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()

	w := parquet.NewGenericWriter[model.CandidateRow](f)
	if _, err := w.Write(rows); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return path
}

func strPtr(s string) *string { return &s }

// ---------- tests ----------

func TestReader_RoundTrip(t *testing.T) {
	path := writeCandidates(t, []model.CandidateRow{
		{Input: "2003-09-25", Source: strPtr("iso")},
		{Input: "Sep 25 2003"},
		{Input: "753 BC", Note: strPtr("era")},
	})

	r, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer r.Close()

	if err := ValidateSchema(r.Schema()); err != nil {
		t.Fatalf("ValidateSchema: %v", err)
	}
	if r.NumRows() != 3 {
		t.Fatalf("NumRows = %d, want 3", r.NumRows())
	}

	buf := make([]model.CandidateRow, 8)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		t.Fatalf("Read: %v", err)
	}
	if n != 3 {
		t.Fatalf("read %d rows, want 3", n)
	}
	if buf[0].Input != "2003-09-25" || buf[0].Source == nil || *buf[0].Source != "iso" {
		t.Errorf("row 0 = %+v", buf[0])
	}
	if buf[1].Source != nil {
		t.Errorf("row 1 source should be null, got %q", *buf[1].Source)
	}
	if buf[2].Note == nil || *buf[2].Note != "era" {
		t.Errorf("row 2 note = %v", buf[2].Note)
	}
}

func TestValidateSchema_MissingInput(t *testing.T) {
	type other struct {
		Text string `parquet:"text"`
	}
	if err := ValidateSchema(parquet.SchemaOf(other{})); err == nil {
		t.Fatal("expected error for missing input column")
	}
}

func TestValidateSchema_WrongType(t *testing.T) {
	type numeric struct {
		Input int64 `parquet:"input"`
	}
	if err := ValidateSchema(parquet.SchemaOf(numeric{})); err == nil {
		t.Fatal("expected error for non-string input column")
	}
}

func TestOpen_MissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.parquet")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
