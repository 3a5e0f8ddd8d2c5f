package transform

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	"kosoku-conv/internal/model"
)

// dataRow builds a full-width day row: column 1 is the date fragment,
// columns 2+ are the payload cells.
func dataRow(dateText string, payload ...string) []string {
	return pad(append([]string{dateText}, payload...)...)
}

func TestTransformEndToEnd(t *testing.T) {
	grid := [][]string{
		pad("事業所: 東京営業所"),
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		pad("日付", "始業時刻", "終業時刻"), // column header row
		dataRow("3月15日", "8:00", "17:00", "6:30"),
	}

	records := Transform(grid, 22)

	if len(records) != 1 {
		t.Fatalf("transformed %d records, expected 1", len(records))
	}

	rec := records[0]
	if rec.DriverCode != "001" || rec.DriverName != "山田太郎" {
		t.Errorf("identity = (%q, %q), expected (001, 山田太郎)", rec.DriverCode, rec.DriverName)
	}
	if !rec.Date.Equal(time.Date(2023, 3, 15, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("date = %v, expected 2023/3/15", rec.Date)
	}
	if rec.Value("始業時刻") != "8:00" {
		t.Errorf("始業時刻 = %q, expected 8:00", rec.Value("始業時刻"))
	}
	if rec.Value("終業時刻") != "17:00" {
		t.Errorf("終業時刻 = %q, expected 17:00", rec.Value("終業時刻"))
	}
	if rec.Value("運転時間") != "6:30" {
		t.Errorf("運転時間 = %q, expected 6:30", rec.Value("運転時間"))
	}
	if rec.Value("摘要1") != "" {
		t.Errorf("摘要1 = %q, expected empty", rec.Value("摘要1"))
	}
}

func TestTransformMultipleDrivers(t *testing.T) {
	grid := [][]string{
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		dataRow("3月1日", "8:00"),
		dataRow("3月2日", "8:15"),
		pad("氏名", "佐藤花子", "コード", "002"),
		dataRow("3月1日", "9:00"),
	}

	records := Transform(grid, 22)
	if len(records) != 3 {
		t.Fatalf("transformed %d records, expected 3", len(records))
	}

	if records[0].DriverCode != "001" || records[1].DriverCode != "001" {
		t.Error("first two records should belong to driver 001")
	}
	if records[2].DriverCode != "002" || records[2].DriverName != "佐藤花子" {
		t.Errorf("third record identity = (%q, %q), expected (002, 佐藤花子)",
			records[2].DriverCode, records[2].DriverName)
	}
}

func TestTransformRaggedGrid(t *testing.T) {
	// Rows narrower or wider than the nominal 22 columns are corrected,
	// never rejected.
	grid := [][]string{
		{"令和5年度"},
		{"氏名", "山田太郎", "コード", "001"},
		append([]string{"3月15日", "8:00"}, make([]string, 30)...), // 32 columns
	}

	records := Transform(grid, 22)
	if len(records) != 1 {
		t.Fatalf("transformed %d records, expected 1", len(records))
	}
	if records[0].Value("始業時刻") != "8:00" {
		t.Errorf("始業時刻 = %q, expected 8:00", records[0].Value("始業時刻"))
	}
}

func TestTransformDeterministic(t *testing.T) {
	grid := [][]string{
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		dataRow("3月15日", "8:00", "17:00"),
		dataRow("3月16日", "8:30", "18:00"),
	}

	first := Transform(grid, 22)
	second := Transform(grid, 22)

	if !reflect.DeepEqual(first, second) {
		t.Error("transform is not deterministic for identical input")
	}
}

// encodeRecords renders a record set back into grid form: an era-year
// declaration, an identity row per driver change and one day row per
// record with the payload cells in their fixed columns.
func encodeRecords(records []model.DataRecord) [][]string {
	var grid [][]string
	year, name, code := 0, "", ""

	for _, rec := range records {
		if y := rec.Date.Year() - eraEpoch; y != year {
			year = y
			grid = append(grid, pad(fmt.Sprintf("令和%d年度", year)))
		}
		if rec.DriverName != name || rec.DriverCode != code {
			name, code = rec.DriverName, rec.DriverCode
			grid = append(grid, pad("氏名", name, "コード", code))
		}

		row := make([]string, 22)
		row[0] = fmt.Sprintf("%d月%d日", int(rec.Date.Month()), rec.Date.Day())
		for _, f := range model.Fields {
			row[f.Column-1] = rec.Value(f.Name)
		}
		grid = append(grid, row)
	}

	return grid
}

func TestTransformIdempotent(t *testing.T) {
	grid := [][]string{
		pad("事業所: 東京営業所"),
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		pad("日付", "始業時刻", "終業時刻"), // column header row
		dataRow("3月15日", "8:00", "17:00", "6:30"),
		dataRow("3月16日", "8:30", "18:00", "7:00"),
		pad("累計拘束時間", "18:30"),
		pad("氏名", "佐藤花子", "コード", "002"),
		dataRow("3月17日", "9:00", "19:30", "8:00"),
	}

	first := Transform(grid, 22)
	if len(first) != 3 {
		t.Fatalf("transformed %d records, expected 3", len(first))
	}

	// Re-encoding the output and transforming again must drop nothing
	// and change nothing: the record set is a fixed point.
	second := Transform(encodeRecords(first), 22)

	if len(second) != len(first) {
		t.Fatalf("second pass produced %d records, expected %d", len(second), len(first))
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("transform of re-encoded output differs from first pass")
	}
}

func TestTransformDefaultWidth(t *testing.T) {
	grid := [][]string{
		pad("令和5年度"),
		pad("氏名", "山田太郎", "コード", "001"),
		dataRow("3月15日", "8:00"),
	}

	// width <= 0 falls back to the nominal 22
	records := Transform(grid, 0)
	if len(records) != 1 {
		t.Fatalf("transformed %d records, expected 1", len(records))
	}
}
