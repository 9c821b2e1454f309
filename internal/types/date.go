package types

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the on-disk date format.
const DateLayout = "2006-01-02"

// Date is a civil calendar date with no time or zone component. The zero
// value means unset and marshals to JSON null. Dates are comparable with ==.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses an ISO date (2006-01-02).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) asTime() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// AddDays returns the date n days after d. Negative n moves backwards.
func (d Date) AddDays(n int) Date {
	return DateOf(d.asTime().AddDate(0, 0, n))
}

// DaysSince returns the number of days from other to d. The result is
// negative when d precedes other.
func (d Date) DaysSince(other Date) int {
	return int(d.asTime().Sub(other.asTime()) / (24 * time.Hour))
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return d.asTime().Before(other.asTime())
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return d.asTime().After(other.asTime())
}

// String formats the date as 2006-01-02, or empty when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.asTime().Format(DateLayout)
}

// MarshalJSON encodes the date as an ISO string, or null when unset.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

// UnmarshalJSON decodes an ISO date string or null.
func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a %q string: %w", DateLayout, err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
