package model

import "time"

// DataRecord is one qualifying day-row of the timesheet, keyed by driver
// and date. Field values keep the grid's clock-string display form; for
// duration fields an empty string means "no value" (a day without that
// entry), while for the remark fields an empty string is ordinary content.
//
// Records are never mutated after the transform produces them; the numeric
// and serial views the exporters need are derived on the way out.
type DataRecord struct {
	DriverCode string
	DriverName string
	Date       time.Time
	Values     map[string]string // keyed by field name, see Fields
}

// Value returns the raw cell for a named field ("" when absent).
func (r DataRecord) Value(name string) string {
	return r.Values[name]
}

// DurationValue parses a duration field's clock string. ok is false for
// empty, malformed or non-duration cells.
func (r DataRecord) DurationValue(name string) (Duration, bool) {
	f, found := FieldByName(name)
	if !found || !f.Duration {
		return 0, false
	}
	return ParseClock(r.Values[name])
}

// Summary carries run metadata for the report exporters.
type Summary struct {
	Source       string // input path or URL
	GeneratedAt  string
	RowsRead     int // grid rows after CSV parsing
	RecordCount  int // surviving day-rows
	DriverCount  int
	PeriodStart  time.Time
	PeriodEnd    time.Time
	DriverTotals []DriverTotal // per-driver 拘束時間合計, record order
}

// DriverTotal is one driver's summed total-restraint figure.
type DriverTotal struct {
	Code    string
	Name    string
	Days    int
	Total   Duration
	HasData bool // false when every 拘束時間合計 cell was empty
}

// BuildSummary derives the run summary from a transformed record set.
func BuildSummary(source string, rowsRead int, records []DataRecord) *Summary {
	s := &Summary{
		Source:      source,
		RowsRead:    rowsRead,
		RecordCount: len(records),
	}

	order := []string{}
	totals := map[string]*DriverTotal{}

	for _, rec := range records {
		if s.PeriodStart.IsZero() || rec.Date.Before(s.PeriodStart) {
			s.PeriodStart = rec.Date
		}
		if rec.Date.After(s.PeriodEnd) {
			s.PeriodEnd = rec.Date
		}

		key := rec.DriverCode + "\x00" + rec.DriverName
		dt, ok := totals[key]
		if !ok {
			dt = &DriverTotal{Code: rec.DriverCode, Name: rec.DriverName}
			totals[key] = dt
			order = append(order, key)
		}
		dt.Days++
		if d, ok := rec.DurationValue("拘束時間合計"); ok {
			dt.Total += d
			dt.HasData = true
		}
	}

	for _, key := range order {
		s.DriverTotals = append(s.DriverTotals, *totals[key])
	}
	s.DriverCount = len(order)

	return s
}
