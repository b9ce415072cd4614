// mkfixture writes a Parquet file of candidate date strings for load runs.
// Candidates come from a text file (one per line) or the built-in scenario
// suite. Selection is round-robin across matched grammars so a small fixture
// still covers every grammar present in the input.
// Usage: go run ./cmd/mkfixture --in samples.txt --out testdata/candidates.parquet --rows 200
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	goparquet "github.com/parquet-go/parquet-go"

	"github.com/gyeh/datesift/internal/dates"
	"github.com/gyeh/datesift/internal/model"
	"github.com/gyeh/datesift/internal/suite"
)

const unresolved = "unresolved"

func main() {
	in := flag.String("in", "", "text file with one candidate per line (default: built-in scenarios)")
	out := flag.String("out", "testdata/candidates.parquet", "output parquet")
	maxRows := flag.Int("rows", 200, "max rows to output")
	checkOnly := flag.Bool("check", false, "only print the grammar distribution of --out, don't write")
	flag.Parse()

	opts := dates.DefaultOptions()
	opts.Fuzzy = true

	if *checkOnly {
		check(*out, opts)
		return
	}

	candidates, err := readCandidates(*in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "read candidates: %v\n", err)
		os.Exit(1)
	}

	// Pass 1: bucket by the grammar each candidate resolves with.
	buckets := make(map[string][]model.CandidateRow)
	for _, c := range candidates {
		key := unresolved
		if res, err := dates.ParseWithTokens(c.Input, opts); err == nil {
			key = string(res.Grammar)
		}
		buckets[key] = append(buckets[key], c)
	}
	names := make([]string, 0, len(buckets))
	for name := range buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("Scanned %d candidates across %d grammars\n", len(candidates), len(names))

	// Pass 2: round-robin so every grammar is represented.
	var selected []model.CandidateRow
	for i := 0; len(selected) < *maxRows; i++ {
		took := false
		for _, name := range names {
			if i < len(buckets[name]) && len(selected) < *maxRows {
				selected = append(selected, buckets[name][i])
				took = true
			}
		}
		if !took {
			break
		}
	}

	if dir := filepath.Dir(*out); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
			os.Exit(1)
		}
	}
	outFile, err := os.Create(*out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "create output: %v\n", err)
		os.Exit(1)
	}
	defer outFile.Close()

	writer := goparquet.NewGenericWriter[model.CandidateRow](outFile)
	if _, err := writer.Write(selected); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	if err := writer.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "close writer: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(selected), *out)
}

// readCandidates loads one candidate per line from path, or the scenario
// suite when path is empty.
func readCandidates(path string) ([]model.CandidateRow, error) {
	if path == "" {
		src := "suite"
		rows := make([]model.CandidateRow, 0, len(suite.Scenarios))
		for _, sc := range suite.Scenarios {
			note := sc.Description
			rows = append(rows, model.CandidateRow{Input: sc.Input, Source: &src, Note: &note})
		}
		return rows, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src := filepath.Base(path)
	var rows []model.CandidateRow
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		rows = append(rows, model.CandidateRow{Input: sc.Text(), Source: &src})
	}
	return rows, sc.Err()
}

// check prints how many rows of an existing fixture resolve with each grammar.
func check(path string, opts dates.Options) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	stat, _ := f.Stat()
	pf, err := goparquet.OpenFile(f, stat.Size())
	if err != nil {
		fmt.Fprintf(os.Stderr, "open parquet: %v\n", err)
		os.Exit(1)
	}

	reader := goparquet.NewGenericReader[model.CandidateRow](pf)
	defer reader.Close()

	counts := make(map[string]int)
	buf := make([]model.CandidateRow, 1024)
	total := 0
	for {
		n, readErr := reader.Read(buf)
		for i := 0; i < n; i++ {
			total++
			key := unresolved
			if res, err := dates.ParseWithTokens(buf[i].Input, opts); err == nil {
				key = string(res.Grammar)
			}
			counts[key]++
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			fmt.Fprintf(os.Stderr, "read: %v\n", readErr)
			os.Exit(1)
		}
	}

	names := make([]string, 0, len(counts))
	for name := range counts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Printf("Total: %d\n", total)
	for _, name := range names {
		fmt.Printf("  %-16s %d\n", name, counts[name])
	}
}
