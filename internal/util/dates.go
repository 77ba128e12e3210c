package util

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid date format (use YYYY-MM-DD or RFC3339)")

// ParseDateRange turns optional start/end filters into [start, endExclusive).
// A date-only end includes that whole day.
func ParseDateRange(startStr, endStr *string) (start time.Time, hasStart bool, endExclusive time.Time, hasEnd bool, err error) {
	if startStr != nil {
		t, ok, _, e := parseDate(*startStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		start, hasStart = t, ok
	}

	if endStr != nil {
		t, ok, dateOnly, e := parseDate(*endStr)
		if e != nil {
			return time.Time{}, false, time.Time{}, false, e
		}
		if ok {
			endExclusive, hasEnd = t, true
			if dateOnly {
				endExclusive = t.AddDate(0, 0, 1)
			}
		}
	}

	return start, hasStart, endExclusive, hasEnd, nil
}

func parseDate(s string) (t time.Time, ok bool, dateOnly bool, err error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false, false, nil
	}
	if tt, e := time.Parse(time.RFC3339, s); e == nil {
		return tt, true, false, nil
	}
	if tt, e := time.Parse("2006-01-02", s); e == nil {
		return tt, true, true, nil
	}
	return time.Time{}, false, false, ErrInvalidDate
}

// ParseTimestamp accepts RFC3339 (with or without fractions) or unix milliseconds.
// An empty string yields nil.
func ParseTimestamp(raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		return &t, nil
	}
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		t := time.UnixMilli(ms).UTC()
		return &t, nil
	}
	return nil, errors.New("invalid timestamp (use RFC3339 or unix milliseconds)")
}
