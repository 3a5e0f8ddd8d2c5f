package word

import (
	"embed"
	"fmt"
	"os"
	"strings"

	"kosoku-conv/internal/config"
	"kosoku-conv/internal/model"

	"github.com/nguyenthenguyen/docx"
)

//go:embed template.docx
var templateFS embed.FS

// WordExporter writes the per-driver summary document that gets attached
// to the monthly report mail, next to the workbook itself.
type WordExporter struct{}

func NewWordExporter() *WordExporter {
	return &WordExporter{}
}

func (e *WordExporter) Export(summary *model.Summary, records []model.DataRecord, cfg *config.Config) error {
	// The docx library only edits existing files, so the embedded
	// template goes through a temp file first.
	templateBytes, err := templateFS.ReadFile("template.docx")
	if err != nil {
		return fmt.Errorf("failed to read embedded template: %w", err)
	}

	tmpFile, err := os.CreateTemp("", "kosoku-conv-template-*.docx")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(templateBytes); err != nil {
		return fmt.Errorf("failed to write template to temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	r, err := docx.ReadDocxFile(tmpFile.Name())
	if err != nil {
		return fmt.Errorf("failed to read docx template: %w", err)
	}
	defer r.Close()

	doc := r.Editable()

	doc.Replace("{{Date}}", summary.GeneratedAt, -1)
	doc.Replace("{{Source}}", summary.Source, -1)
	doc.Replace("{{TotalRecords}}", fmt.Sprintf("%d", summary.RecordCount), -1)
	doc.Replace("{{TotalDrivers}}", fmt.Sprintf("%d", summary.DriverCount), -1)

	doc.Replace("{{Content}}", buildSummaryText(summary), -1)

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".docx"
	if err := doc.WriteToFile(outFile); err != nil {
		return fmt.Errorf("failed to write Word document: %w", err)
	}

	return nil
}

// buildSummaryText renders the per-driver totals as plain text; the docx
// library handles the XML encoding.
func buildSummaryText(summary *model.Summary) string {
	var sb strings.Builder

	sb.WriteString("乗務員別 拘束時間サマリ\n\n")
	if !summary.PeriodStart.IsZero() {
		sb.WriteString(fmt.Sprintf("対象期間: %s 〜 %s\n\n",
			summary.PeriodStart.Format("2006/1/2"),
			summary.PeriodEnd.Format("2006/1/2")))
	}

	sb.WriteString(fmt.Sprintf("%-12s %-14s %6s %12s %10s\n",
		"コード", "氏名", "日数", "拘束時間合計", "時間(h)"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")

	for _, dt := range summary.DriverTotals {
		total := "-"
		hours := "-"
		if dt.HasData {
			total = dt.Total.Clock()
			hours = fmt.Sprintf("%.2f", dt.Total.Hours())
		}
		sb.WriteString(fmt.Sprintf("%-12s %-14s %6d %12s %10s\n",
			dt.Code, dt.Name, dt.Days, total, hours))
	}

	return sb.String()
}
