package transform

import (
	"fmt"

	"kosoku-conv/internal/model"
)

// Aggregate sums one named duration field over the record set and returns
// the total as a clock string plus the fractional-hour figure. Empty and
// malformed cells contribute zero so the sum is always defined. Asking for
// an unknown field, or for a text field, is a caller mistake and errors.
func Aggregate(records []model.DataRecord, fieldName string) (string, float64, error) {
	f, ok := model.FieldByName(fieldName)
	if !ok {
		return "", 0, fmt.Errorf("unknown field: %s", fieldName)
	}
	if !f.Duration {
		return "", 0, fmt.Errorf("field %s is not a duration column", fieldName)
	}

	var total model.Duration
	for _, rec := range records {
		if d, ok := model.ParseClock(rec.Values[fieldName]); ok {
			total += d
		}
	}

	return total.Clock(), total.Hours(), nil
}
