package task

import (
	"encoding/json"
	"fmt"
	"time"
)

// dateLayouts are the accepted due-date formats. The first is canonical;
// RFC 3339 timestamps are accepted and truncated to their calendar date.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// Date is a naive calendar date with no time-of-day and no time zone.
// All arithmetic is done on midnight UTC so day counts are exact.
type Date struct {
	t time.Time
}

// ParseDate parses s as a calendar date. Both plain dates (2026-08-26) and
// RFC 3339 timestamps are accepted; timestamps lose their time component.
func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse %q as a calendar date", s)
}

// DateOf truncates t to its calendar date in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar date in local time.
func Today() Date {
	return DateOf(time.Now())
}

// DaysUntil returns the whole number of days from ref to d. Negative when
// d is before ref (overdue relative to the reference date).
func (d Date) DaysUntil(ref Date) int {
	return int(d.t.Sub(ref.t) / (24 * time.Hour))
}

// Before reports whether d is an earlier calendar date than other.
func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// Equal reports whether d and other are the same calendar date.
func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool {
	return d.t.IsZero()
}

// String renders the canonical YYYY-MM-DD form.
func (d Date) String() string {
	return d.t.Format("2006-01-02")
}

// MarshalJSON writes the date as a YYYY-MM-DD string.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON reads a date from any accepted layout.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a JSON string: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
