package transform

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// datePattern matches the day-fragment text in column 1 ("3月15日",
// "12月 3日"). The year is never on the row itself, it comes from the
// carried era-year context.
var datePattern = regexp.MustCompile(`(\d+)月\s*(\d+)日`)

// eraEpoch converts a Reiwa year number to a Gregorian year
// (era year 1 = 2019).
const eraEpoch = 2018

// ignoreKeywords mark banner, header and summary rows. The filter runs
// after date synthesis so that a summary row which happens to contain a
// date-like fragment is still excluded.
var ignoreKeywords = []string{
	"累計拘束時間",
	"D2 :",
	"最大拘束時間",
	"事業所",
	"令和",
	"日付",
	"氏名",
}

// SynthesizeDate combines the column-1 day fragment with the carried era
// year into a calendar date. ok is false when the fragment is absent, no
// year has been declared yet, or the combination is not a real date
// (Feb 30 and friends). Such rows are simply not data rows.
func SynthesizeDate(text string, eraYear int) (time.Time, bool) {
	if eraYear <= 0 {
		return time.Time{}, false
	}

	m := datePattern.FindStringSubmatch(text)
	if m == nil {
		return time.Time{}, false
	}

	month, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(m[2])
	if err != nil {
		return time.Time{}, false
	}

	year := eraYear + eraEpoch
	d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != time.Month(month) || d.Day() != day {
		// time.Date normalizes out-of-range components; a shifted
		// result means the date never existed on the calendar.
		return time.Time{}, false
	}

	return d, true
}

// isIgnoredRow reports whether column 1 carries any of the fixed
// non-data keywords.
func isIgnoredRow(text string) bool {
	for _, kw := range ignoreKeywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// classifiedRow is an annotated row that survived classification.
type classifiedRow struct {
	AnnotatedRow
	Date time.Time
}

// Classify keeps the rows that synthesize a valid calendar date and do
// not match the ignore keywords, preserving grid order. Drops are silent;
// the reasons callers may want for debugging go through the drop hook.
func Classify(rows []AnnotatedRow, onDrop func(rowIndex int, reason string)) []classifiedRow {
	drop := func(i int, reason string) {
		if onDrop != nil {
			onDrop(i, reason)
		}
	}

	out := make([]classifiedRow, 0, len(rows))
	for i, row := range rows {
		head := cell(row.Cells, 0)

		date, ok := SynthesizeDate(head, row.Ctx.eraYear)
		if !ok {
			drop(i, "no synthesizable date")
			continue
		}
		if isIgnoredRow(head) {
			drop(i, "ignore keyword")
			continue
		}

		out = append(out, classifiedRow{AnnotatedRow: row, Date: date})
	}

	return out
}
