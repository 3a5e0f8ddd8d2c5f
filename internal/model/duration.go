package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Duration is a time span held as whole minutes. The timesheet works with
// durations, not clock times, so the hour part may exceed 24 (an overnight
// restraint block of "25:30" is legal input).
//
// The clock-string, fractional-hour and spreadsheet-serial forms are all
// derived views of the minute count; none of them is stored independently.
type Duration int

// ParseClock parses an "H:MM" clock string into a Duration.
// The second return value reports whether the cell held a usable value.
//
// Accepted range is 0 <= H < 100 and 0 <= M <= 59. Anything else (empty
// cell, missing colon, non-numeric parts, negative or three-digit hours)
// is treated as "no value", never as an error.
func ParseClock(s string) (Duration, bool) {
	s = strings.TrimSpace(s)
	if s == "" || !strings.Contains(s, ":") {
		return 0, false
	}

	parts := strings.SplitN(s, ":", 2)
	h, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, false
	}

	if h < 0 || h >= 100 || m < 0 || m > 59 {
		return 0, false
	}

	return Duration(h*60 + m), true
}

// FromHours converts fractional hours (e.g. 15.75) back to a Duration,
// rounding to the nearest minute.
func FromHours(hours float64) Duration {
	return Duration(math.Round(hours * 60))
}

// Clock renders the canonical "H:MM" display form. The minute part is
// zero-padded; the hour part is unbounded.
func (d Duration) Clock() string {
	return fmt.Sprintf("%d:%02d", int(d)/60, int(d)%60)
}

// Hours returns the fractional-hour view (H + M/60), rounded to two
// decimal places. This is the arithmetic form used for summation.
func (d Duration) Hours() float64 {
	return math.Round(float64(d)/60*100) / 100
}

// Serial returns the spreadsheet day-fraction serial (H/24 + M/1440).
// A cell holding this value formatted as "[h]:mm" displays and sums as a
// duration instead of wrapping at 24 hours.
func (d Duration) Serial() float64 {
	return float64(d) / 1440
}
