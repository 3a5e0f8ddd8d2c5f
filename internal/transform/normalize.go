package transform

import "strings"

// missingTokens are the textual spellings a null cell picks up when the
// upstream system coerces it to a string. They collapse to "".
var missingTokens = map[string]bool{
	"nan":  true,
	"NaN":  true,
	"None": true,
	"NULL": true,
}

// NormalizeGrid squares an arbitrary-width grid to exactly width cells per
// row: longer rows are truncated, shorter rows right-padded with "".
// Every cell is whitespace-trimmed and missing-value tokens become "".
// Malformed width is corrected, never rejected.
func NormalizeGrid(rows [][]string, width int) [][]string {
	out := make([][]string, len(rows))

	for i, row := range rows {
		cells := make([]string, width)
		for j := 0; j < width && j < len(row); j++ {
			cells[j] = normalizeCell(row[j])
		}
		out[i] = cells
	}

	return out
}

func normalizeCell(s string) string {
	s = strings.TrimSpace(s)
	if missingTokens[s] {
		return ""
	}
	return s
}
