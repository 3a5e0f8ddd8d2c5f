package exporter

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"kosoku-conv/internal/config"
	"kosoku-conv/internal/model"
)

// JSONExporter writes the record set in a machine-readable form for
// callers that post-process the data instead of opening the workbook.
type JSONExporter struct{}

// NewJSONExporter creates a new JSONExporter
func NewJSONExporter() *JSONExporter {
	return &JSONExporter{}
}

type jsonReport struct {
	Source      string       `json:"source"`
	GeneratedAt string       `json:"generatedAt"`
	RecordCount int          `json:"recordCount"`
	DriverCount int          `json:"driverCount"`
	Records     []jsonRecord `json:"records"`
}

type jsonRecord struct {
	DriverCode string                  `json:"driverCode"`
	DriverName string                  `json:"driverName"`
	Date       string                  `json:"date"`
	Fields     map[string]string       `json:"fields"`
	Durations  map[string]jsonDuration `json:"durations,omitempty"`
}

type jsonDuration struct {
	Clock string  `json:"clock"`
	Hours float64 `json:"hours"`
}

// Export writes the JSON report next to the workbook.
func (e *JSONExporter) Export(summary *model.Summary, records []model.DataRecord, cfg *config.Config) error {
	report := jsonReport{
		Source:      summary.Source,
		GeneratedAt: summary.GeneratedAt,
		RecordCount: summary.RecordCount,
		DriverCount: summary.DriverCount,
		Records:     make([]jsonRecord, 0, len(records)),
	}

	for _, rec := range records {
		jr := jsonRecord{
			DriverCode: rec.DriverCode,
			DriverName: rec.DriverName,
			Date:       rec.Date.Format("2006/01/02"),
			Fields:     rec.Values,
		}

		for _, f := range model.Fields {
			if !f.Duration {
				continue
			}
			if d, ok := rec.DurationValue(f.Name); ok {
				if jr.Durations == nil {
					jr.Durations = make(map[string]jsonDuration)
				}
				jr.Durations[f.Name] = jsonDuration{Clock: d.Clock(), Hours: d.Hours()}
			}
		}

		report.Records = append(report.Records, jr)
	}

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".json"
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create JSON report: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("failed to write JSON report: %w", err)
	}

	return nil
}
