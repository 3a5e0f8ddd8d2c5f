package exporter

import (
	"encoding/json"
	"os"
	"strings"
	"testing"

	"kosoku-conv/internal/model"
)

func TestJSONExport(t *testing.T) {
	records := testRecords()
	summary := model.BuildSummary("test.csv", 10, records)
	summary.GeneratedAt = "2023-10-27 10:00"
	cfg := testConfig(t)

	if err := NewJSONExporter().Export(summary, records, cfg); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	outFile := strings.TrimSuffix(cfg.GetOutputPath(), ".xlsx") + ".json"
	raw, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("JSON report not written: %v", err)
	}

	var report struct {
		Source      string `json:"source"`
		RecordCount int    `json:"recordCount"`
		Records     []struct {
			DriverCode string            `json:"driverCode"`
			Date       string            `json:"date"`
			Fields     map[string]string `json:"fields"`
			Durations  map[string]struct {
				Clock string  `json:"clock"`
				Hours float64 `json:"hours"`
			} `json:"durations"`
		} `json:"records"`
	}
	if err := json.Unmarshal(raw, &report); err != nil {
		t.Fatalf("invalid JSON report: %v", err)
	}

	if report.RecordCount != 2 || len(report.Records) != 2 {
		t.Fatalf("report has %d/%d records, expected 2", report.RecordCount, len(report.Records))
	}

	first := report.Records[0]
	if first.DriverCode != "001" || first.Date != "2023/03/15" {
		t.Errorf("first record = (%s, %s)", first.DriverCode, first.Date)
	}
	if first.Fields["始業時刻"] != "8:00" {
		t.Errorf("始業時刻 = %q, expected 8:00", first.Fields["始業時刻"])
	}

	d, ok := first.Durations["拘束時間合計"]
	if !ok {
		t.Fatal("durations view missing 拘束時間合計")
	}
	if d.Clock != "9:00" || d.Hours != 9.0 {
		t.Errorf("拘束時間合計 = (%s, %v), expected (9:00, 9)", d.Clock, d.Hours)
	}

	// Empty duration cells carry no derived view.
	if _, ok := report.Records[1].Durations["終業時刻"]; ok {
		t.Error("empty cell should not appear in the durations view")
	}
}
