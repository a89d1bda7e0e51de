package booking

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("invalid booking date")

const DateLayout = "2006-01-02"

// NormalizeDate keeps the calendar day as the caller expressed it and drops the
// time of day and zone, so 09:00 and 23:00 on the same day map to one slot.
func NormalizeDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a plain date or an RFC 3339 timestamp and returns it normalized.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return NormalizeDate(t), nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NormalizeDate(t), nil
	}
	if t, err := time.Parse("2006-01-02T15:04:05", s); err == nil {
		return NormalizeDate(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
