package services

import (
	"time"
)

const dateLayout = "2006-01-02"

// DateRange bounds a sales query on created_at. Both ends are inclusive; a nil end is open.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// ParseDateRange parses optional start and end bounds given as YYYY-MM-DD or RFC 3339.
// A date-only end covers the whole day.
func ParseDateRange(start, end string) (DateRange, error) {
	var r DateRange

	if start != "" {
		t, _, err := parseBound(start)
		if err != nil {
			return DateRange{}, NewValidationError("start", "The start field must be a valid date (YYYY-MM-DD or RFC 3339).")
		}
		r.Start = &t
	}

	if end != "" {
		t, dateOnly, err := parseBound(end)
		if err != nil {
			return DateRange{}, NewValidationError("end", "The end field must be a valid date (YYYY-MM-DD or RFC 3339).")
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		r.End = &t
	}

	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return DateRange{}, NewValidationError("end", "The end field must be a date after or equal to start.")
	}
	return r, nil
}

func parseBound(value string) (time.Time, bool, error) {
	if t, err := time.ParseInLocation(dateLayout, value, time.UTC); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}
