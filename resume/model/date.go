package model

import (
	"bytes"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// Date is a nullable calendar date. The zero value is the unset date, which
// serializes as JSON null and renders as an empty string.
type Date struct {
	Time  time.Time
	Valid bool
}

// NewDate builds a set Date from year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC), Valid: true}
}

// ParseDate accepts an ISO-8601 calendar date or timestamp. An empty string
// parses to the unset date.
func ParseDate(value string) (Date, error) {
	if value == "" {
		return Date{}, nil
	}
	for _, layout := range []string{dateLayout, time.RFC3339, "2006-01-02T15:04:05.000Z"} {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{Time: t.UTC(), Valid: true}, nil
		}
	}
	return Date{}, fmt.Errorf("invalid date %q", value)
}

// Display formats the date as "{abbreviated month} {4-digit year}", or an
// empty string when unset.
func (d Date) Display() string {
	if !d.Valid {
		return ""
	}
	return d.Time.Format("Jan 2006")
}

// MarshalJSON encodes set dates as "YYYY-MM-DD" and unset dates as null.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Time.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON accepts null, an empty string, a calendar date, or a full
// ISO-8601 timestamp (the common browser Date serialization).
func (d *Date) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if bytes.Equal(trimmed, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(trimmed) < 2 || trimmed[0] != '"' || trimmed[len(trimmed)-1] != '"' {
		return fmt.Errorf("invalid date value %s", string(trimmed))
	}
	parsed, err := ParseDate(string(trimmed[1 : len(trimmed)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
