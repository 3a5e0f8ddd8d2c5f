package html

import (
	"fmt"
	"html/template"
	"os"
	"strings"

	"kosoku-conv/internal/config"
	"kosoku-conv/internal/model"
)

type HTMLExporter struct{}

func NewHTMLExporter() *HTMLExporter {
	return &HTMLExporter{}
}

// Data structures for the preview template
type PreviewData struct {
	Source      string
	GeneratedAt string
	RowsRead    int
	RecordCount int
	DriverCount int
	Period      string
	Headers     []string
	Rows        []PreviewRow
}

type PreviewRow struct {
	Cells []PreviewCell
}

type PreviewCell struct {
	Text    string
	Numeric bool
}

func (e *HTMLExporter) Export(summary *model.Summary, records []model.DataRecord, cfg *config.Config) error {
	data := PreviewData{
		Source:      summary.Source,
		GeneratedAt: summary.GeneratedAt,
		RowsRead:    summary.RowsRead,
		RecordCount: summary.RecordCount,
		DriverCount: summary.DriverCount,
		Period:      formatPeriod(summary),
		Headers:     append([]string{"乗務員コード", "氏名", "日付"}, model.FieldNames()...),
	}

	for _, rec := range records {
		row := PreviewRow{
			Cells: []PreviewCell{
				{Text: rec.DriverCode},
				{Text: rec.DriverName},
				{Text: rec.Date.Format("2006/01/02")},
			},
		}
		for _, f := range model.Fields {
			row.Cells = append(row.Cells, PreviewCell{
				Text:    rec.Value(f.Name),
				Numeric: f.Duration,
			})
		}
		data.Rows = append(data.Rows, row)
	}

	outputFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".html"
	f, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create HTML report: %w", err)
	}
	defer f.Close()

	tmpl, err := template.New("preview").Parse(PreviewTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse preview template: %w", err)
	}

	return tmpl.Execute(f, data)
}

func formatPeriod(summary *model.Summary) string {
	if summary.PeriodStart.IsZero() {
		return "-"
	}
	return summary.PeriodStart.Format("2006/1/2") + " 〜 " + summary.PeriodEnd.Format("2006/1/2")
}
