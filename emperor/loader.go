// SPDX-License-Identifier: MIT
// Package: forcelib/emperor
//
// loader.go — Load / LoadPath and the header/body parsing pipeline.

package emperor

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tensolab/forcelib/table"
)

// LoadPath opens path and parses it with Load. The file handle is released
// on every exit path, parse failures included. The open error is wrapped so
// callers see the failing path.
func LoadPath(path string, opts ...Option) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("emperor: open %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// Load parses an Emperor CSV export from r into a measurement table.
//
// The header line count is detected (see package docs), minutes become
// seconds, and each four-column test block becomes one contiguous run of
// rows tagged with its test name. Structural problems return ErrNoHeader or
// ErrColumnLayout; malformed individual cells become missing values.
// Complexity: O(bytes) time, one in-memory copy of the input.
func Load(r io.Reader, opts ...Option) (*table.Table, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("emperor: read input: %w", err)
	}
	lines := splitLines(string(raw))

	nHeaders, err := countHeaders(lines)
	if err != nil {
		return nil, err
	}

	records, err := readBody(lines[nHeaders:])
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return table.New(nil), nil
	}

	blocks := len(records[0]) / ColsPerTest
	if blocks < 1 || len(records[0])%ColsPerTest != 0 {
		return nil, fmt.Errorf("emperor: body width %d: %w", len(records[0]), ErrColumnLayout)
	}
	for _, rec := range records {
		if len(rec) > blocks*ColsPerTest {
			return nil, fmt.Errorf("emperor: body width %d exceeds %d tests: %w",
				len(rec), blocks, ErrColumnLayout)
		}
	}

	names := testNames(lines, nHeaders, blocks)

	return table.New(buildRows(records, names, cfg)), nil
}

// countHeaders returns the number of header lines before the data body.
//
// A data line is recognized by its SECOND field parsing as a float: the
// first field may be a sample name that happens to be numeric, the second
// never is inside the header block (original exporter convention).
func countHeaders(lines []string) (int, error) {
	limit := len(lines)
	if limit > HeaderRowsMax {
		limit = HeaderRowsMax
	}
	for i := 0; i < limit; i++ {
		fields := strings.Split(lines[i], ",")
		if len(fields) < 2 {
			continue
		}
		if _, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64); err == nil {
			return i, nil
		}
	}

	return 0, ErrNoHeader
}

// testNames returns one name per test block, taken from the sample-name
// header line (every ColsPerTest fields) with a "Test N" fallback for
// short or blank entries.
func testNames(lines []string, nHeaders, blocks int) []string {
	var fields []string
	if nHeaders > testNameLine {
		fields = strings.Split(lines[testNameLine], ",")
	}
	names := make([]string, blocks)
	for b := range names {
		names[b] = fmt.Sprintf("Test %d", b+1)
		if i := b * ColsPerTest; i < len(fields) {
			if name := strings.TrimSpace(fields[i]); name != "" {
				names[b] = name
			}
		}
	}

	return names
}

// readBody parses the data lines with encoding/csv. Records may be ragged:
// shorter trailing lines are padded with missing cells later.
func readBody(lines []string) ([][]string, error) {
	rd := csv.NewReader(strings.NewReader(strings.Join(lines, "\n")))
	rd.FieldsPerRecord = -1

	records, err := rd.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("emperor: parse body: %w", err)
	}

	return records, nil
}

// buildRows converts the wide records into long rows, one contiguous run
// per test block, skipping excluded blocks.
//
// Per-row policy: no parseable minutes cell means no timestamp, so the row
// is dropped for that block (covers blank trailing rows of shorter tests);
// a garbled force or displacement cell stays in as a missing value.
func buildRows(records [][]string, names []string, cfg loadConfig) []table.Row {
	var rows []table.Row
	for b, name := range names {
		if _, skip := cfg.exclude[b+1]; skip {
			continue
		}
		base := b * ColsPerTest
		for _, rec := range records {
			minutes, err := strconv.ParseFloat(blockField(rec, base, fieldMinutes), 64)
			if err != nil {
				continue
			}
			rows = append(rows, table.Row{
				Test:         name,
				Seconds:      minutes * secondsPerMinute,
				Force:        parseCell(blockField(rec, base, fieldForce)),
				Displacement: parseCell(blockField(rec, base, fieldDisplacement)),
				Event:        parseEvent(blockField(rec, base, fieldEvent)),
			})
		}
	}

	return rows
}

// blockField returns the trimmed field at offset off inside the block
// starting at base, or "" when the record is too short.
func blockField(rec []string, base, off int) string {
	if i := base + off; i < len(rec) {
		return strings.TrimSpace(rec[i])
	}

	return ""
}

// parseCell maps a field to a nullable cell: best-effort, never an error.
func parseCell(s string) table.Value {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return table.Missing()
	}

	return table.Val(f)
}

// parseEvent treats any non-zero numeric marker as an event.
func parseEvent(s string) bool {
	f, err := strconv.ParseFloat(s, 64)

	return err == nil && f != 0
}

// splitLines splits on newlines, tolerating CRLF exports and a trailing
// newline.
func splitLines(s string) []string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}

	return lines
}
