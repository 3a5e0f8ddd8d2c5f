package transform

import (
	"regexp"
	"strconv"
	"strings"
)

// The export interleaves declaration rows with data rows: an era-year
// banner ("令和5年度") and a driver identity block (氏名 label in column 1
// with the name in column 2, コード label in column 3 with the code in
// column 4). Declarations apply to their own row and everything below
// until the next declaration of the same attribute.

// yearPattern matches the era-year declaration: the era kanji followed by
// the year digits ("令和5年度" -> 5). Stored pre-conversion; the Gregorian
// offset is applied at date synthesis, not here.
var yearPattern = regexp.MustCompile(`和\s*(\d+)`)

const (
	nameLabel = "氏名"
	codeLabel = "コード"
)

// rowContext is the carried-forward state of the sequential scan.
type rowContext struct {
	eraYear    int // 0 = no year declared yet
	driverName string
	driverCode string
}

// AnnotatedRow pairs a normalized grid row with the context snapshot in
// effect on that row.
type AnnotatedRow struct {
	Cells []string
	Ctx   rowContext
}

// AnnotateContext runs the single ordered fold over the grid, updating the
// carried context per row and emitting (row, snapshot) pairs. The fill is
// strictly forward: a row's snapshot depends only on itself and the rows
// before it, and rows before the first declaration carry zero values.
func AnnotateContext(grid [][]string) []AnnotatedRow {
	out := make([]AnnotatedRow, 0, len(grid))
	ctx := rowContext{}

	for _, cells := range grid {
		if m := yearPattern.FindStringSubmatch(cell(cells, 0)); m != nil {
			if y, err := strconv.Atoi(m[1]); err == nil {
				ctx.eraYear = y
			}
		}
		if strings.Contains(cell(cells, 0), nameLabel) {
			ctx.driverName = cell(cells, 1)
		}
		if strings.Contains(cell(cells, 2), codeLabel) {
			ctx.driverCode = cell(cells, 3)
		}

		out = append(out, AnnotatedRow{Cells: cells, Ctx: ctx})
	}

	return out
}

func cell(cells []string, i int) string {
	if i < len(cells) {
		return cells[i]
	}
	return ""
}
