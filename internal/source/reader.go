// Package source acquires the raw timesheet bytes (local file or remote
// HTTP endpoint), decodes the legacy charset and parses the CSV text into
// the anonymous string grid the transform pipeline consumes. Any failure
// here is a hard failure for the invocation; the pipeline is never run on
// partial input.
package source

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"kosoku-conv/internal/logger"
)

// ReadFile reads and decodes a local CSV export.
func ReadFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return DecodeBytes(raw)
}

// DecodeBytes converts raw export bytes to UTF-8 text. The timesheet
// system writes cp932 (Shift_JIS), but re-saved files are often UTF-8
// already, so valid UTF-8 passes through untouched.
func DecodeBytes(raw []byte) (string, error) {
	if utf8.Valid(raw) {
		return string(raw), nil
	}

	decoder := japanese.ShiftJIS.NewDecoder()
	decoded, _, err := transform.Bytes(decoder, raw)
	if err != nil {
		return "", fmt.Errorf("failed to decode input as Shift_JIS: %w", err)
	}
	return string(decoded), nil
}

// ParseCSV parses decoded CSV text into a raw grid. The export is
// headerless and sloppy: field counts vary row to row and quoting is
// inconsistent, so rows are taken as-is (width is squared later by the
// normalizer) and unreadable lines are skipped rather than fatal.
func ParseCSV(text string) ([][]string, error) {
	reader := csv.NewReader(strings.NewReader(stripBOM(text)))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var grid [][]string
	line := 0

	for {
		line++
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			logger.Debug("skipping unreadable CSV line %d: %v", line, err)
			continue
		}
		grid = append(grid, row)
	}

	if len(grid) == 0 {
		return nil, fmt.Errorf("input contained no readable CSV rows")
	}

	return grid, nil
}

func stripBOM(s string) string {
	return strings.TrimPrefix(s, "\uFEFF")
}
