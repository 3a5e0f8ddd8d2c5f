// Package transform turns the anonymous 22-column timesheet grid into the
// driver/date record set. The source export mixes year banners, driver
// identity blocks, day rows and summary footers with no row-type marker,
// so classification is inferred from column-1 text patterns and context
// is forward-filled down the grid.
package transform

import (
	"kosoku-conv/internal/logger"
	"kosoku-conv/internal/model"
)

// Transform is the single pipeline entry: normalize the grid, annotate it
// with carried context, classify the day rows and project them into
// records. Pure and deterministic for a given grid; row-level exclusions
// are silent apart from the debug log trail.
func Transform(grid [][]string, width int) []model.DataRecord {
	if width <= 0 {
		width = model.GridWidth
	}

	normalized := NormalizeGrid(grid, width)
	annotated := AnnotateContext(normalized)
	classified := Classify(annotated, func(i int, reason string) {
		logger.LogRowDrop(i, reason)
	})

	records := make([]model.DataRecord, 0, len(classified))
	for _, row := range classified {
		records = append(records, project(row))
	}

	return records
}

// project maps the payload columns onto named fields per the fixed
// position table.
func project(row classifiedRow) model.DataRecord {
	values := make(map[string]string, len(model.Fields))
	for _, f := range model.Fields {
		values[f.Name] = cell(row.Cells, f.Column-1)
	}

	return model.DataRecord{
		DriverCode: row.Ctx.driverCode,
		DriverName: row.Ctx.driverName,
		Date:       row.Date,
		Values:     values,
	}
}
