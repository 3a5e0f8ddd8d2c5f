package exporter

import (
	"fmt"

	"kosoku-conv/internal/config"
	"kosoku-conv/internal/model"

	"github.com/xuri/excelize/v2"
)

// ExcelExporter writes the primary workbook: one data sheet with typed
// date and duration cells, plus an overview sheet with run metrics and
// per-driver totals.
type ExcelExporter struct {
	// Stateless
}

// NewExcelExporter creates a new ExcelExporter
func NewExcelExporter() *ExcelExporter {
	return &ExcelExporter{}
}

// fixedHeaders lead every data row before the positional fields.
var fixedHeaders = []string{"乗務員コード", "氏名", "日付"}

// Export generates the Excel workbook
func (e *ExcelExporter) Export(summary *model.Summary, records []model.DataRecord, cfg *config.Config) error {
	outputFile := cfg.GetOutputPath()
	f := excelize.NewFile()
	styler, err := NewStyler(f)
	if err != nil {
		return fmt.Errorf("failed to register styles: %w", err)
	}

	if err := e.writeRecords(f, styler, records, cfg.Output.SheetName); err != nil {
		return err
	}

	if err := e.writeOverview(f, styler, summary); err != nil {
		return err
	}

	// Remove default "Sheet1"
	if idx, err := f.GetSheetIndex("Sheet1"); err == nil && idx != -1 {
		f.DeleteSheet("Sheet1")
	}

	if err := f.SaveAs(outputFile); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	return nil
}

// --- Data Sheet Logic ---

func (e *ExcelExporter) writeRecords(f *excelize.File, s *Styler, records []model.DataRecord, sheet string) error {
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %q: %w", sheet, err)
	}

	headers := append(append([]string{}, fixedHeaders...), model.FieldNames()...)
	e.writeHeaderRow(f, sheet, 1, headers, s.HeaderStyle)

	f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})

	row := 2
	for _, rec := range records {
		e.writeRecordRow(f, sheet, row, rec, s)
		row++
	}

	if len(records) > 0 {
		e.writeTotalsRow(f, sheet, row, records, s)
	}

	// Column widths: identity block, date, then the payload columns
	f.SetColWidth(sheet, "A", "A", 14)
	f.SetColWidth(sheet, "B", "B", 16)
	f.SetColWidth(sheet, "C", "C", 12)
	firstField, _ := excelize.ColumnNumberToName(len(fixedHeaders) + 1)
	lastField, _ := excelize.ColumnNumberToName(len(fixedHeaders) + len(model.Fields))
	f.SetColWidth(sheet, firstField, lastField, 12)

	return nil
}

func (e *ExcelExporter) writeRecordRow(f *excelize.File, sheet string, row int, rec model.DataRecord, s *Styler) {
	set := func(col int, value interface{}, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		if value != nil {
			f.SetCellValue(sheet, cell, value)
		}
		f.SetCellStyle(sheet, cell, cell, style)
	}

	set(1, rec.DriverCode, s.TextStyle)
	set(2, rec.DriverName, s.TextStyle)
	set(3, rec.Date, s.DateStyle)

	for i, field := range model.Fields {
		col := len(fixedHeaders) + 1 + i

		if !field.Duration {
			set(col, rec.Value(field.Name), s.TextStyle)
			continue
		}

		// Duration cells hold the day-fraction serial so that [h]:mm
		// displays them and native SUM over the column stays correct.
		// Empty and malformed cells stay blank, not zero.
		if d, ok := rec.DurationValue(field.Name); ok {
			set(col, d.Serial(), s.DurationStyle)
		} else {
			set(col, nil, s.DurationStyle)
		}
	}
}

func (e *ExcelExporter) writeTotalsRow(f *excelize.File, sheet string, row int, records []model.DataRecord, s *Styler) {
	set := func(col int, value interface{}, style int) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		if value != nil {
			f.SetCellValue(sheet, cell, value)
		}
		f.SetCellStyle(sheet, cell, cell, style)
	}

	set(1, "合計", s.MetricStyle)
	set(2, nil, s.MetricStyle)
	set(3, nil, s.MetricStyle)

	for i, field := range model.Fields {
		col := len(fixedHeaders) + 1 + i
		if !field.Duration {
			set(col, nil, s.TotalStyle)
			continue
		}

		var total model.Duration
		any := false
		for _, rec := range records {
			if d, ok := rec.DurationValue(field.Name); ok {
				total += d
				any = true
			}
		}
		if any {
			set(col, total.Serial(), s.TotalStyle)
		} else {
			set(col, nil, s.TotalStyle)
		}
	}
}

// --- Overview Sheet Logic ---

func (e *ExcelExporter) writeOverview(f *excelize.File, s *Styler, summary *model.Summary) error {
	sheet := "Overview"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create overview sheet: %w", err)
	}

	period := ""
	if !summary.PeriodStart.IsZero() {
		period = fmt.Sprintf("%s 〜 %s",
			summary.PeriodStart.Format("2006/1/2"),
			summary.PeriodEnd.Format("2006/1/2"))
	}

	metrics := []struct {
		Key string
		Val interface{}
	}{
		{"入力元", summary.Source},
		{"変換日時", summary.GeneratedAt},
		{"読込行数", summary.RowsRead},
		{"レコード数", summary.RecordCount},
		{"乗務員数", summary.DriverCount},
		{"対象期間", period},
	}

	row := 1
	e.writeHeaderRow(f, sheet, row, []string{"項目", "値"}, s.HeaderStyle)
	row++

	for _, m := range metrics {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), m.Key)
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), s.MetricStyle)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), m.Val)
		f.SetCellStyle(sheet, fmt.Sprintf("B%d", row), fmt.Sprintf("B%d", row), s.TextStyle)
		row++
	}

	row += 2 // Spacer

	// Per-driver totals
	e.writeHeaderRow(f, sheet, row, []string{"No", "乗務員コード", "氏名", "日数", "拘束時間合計", "拘束時間(h)"}, s.HeaderStyle)
	row++

	listIndex := 1
	for _, dt := range summary.DriverTotals {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), listIndex)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), dt.Code)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), dt.Name)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), dt.Days)
		if dt.HasData {
			f.SetCellValue(sheet, fmt.Sprintf("E%d", row), dt.Total.Serial())
			f.SetCellValue(sheet, fmt.Sprintf("F%d", row), dt.Total.Hours())
		}
		f.SetCellStyle(sheet, fmt.Sprintf("A%d", row), fmt.Sprintf("D%d", row), s.TextStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), s.DurationStyle)
		f.SetCellStyle(sheet, fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), s.TextStyle)
		row++
		listIndex++
	}

	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "C", 18)
	f.SetColWidth(sheet, "D", "F", 14)

	return nil
}

func (e *ExcelExporter) writeHeaderRow(f *excelize.File, sheet string, row int, values []string, style int) {
	for i, val := range values {
		cell, _ := excelize.CoordinatesToCellName(i+1, row)
		f.SetCellValue(sheet, cell, val)
		f.SetCellStyle(sheet, cell, cell, style)
	}
}
