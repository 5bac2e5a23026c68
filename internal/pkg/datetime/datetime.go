// Package datetime provides the wire formats used for attendance times and
// vacation dates. Both are zone-less on the wire; the wall clock is stored
// with a UTC location.
package datetime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

var dateTimeLayouts = []string{
	DateTimeLayout,
	"2006-01-02T15:04",
	time.RFC3339,
	time.RFC3339Nano,
}

// ParseDateTime accepts ISO-8601 local date-times with or without seconds, and RFC3339.
// An offset is dropped: the wall clock as written is kept and tagged UTC.
func ParseDateTime(s string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return wallClock(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date-time %q: expected YYYY-MM-DDTHH:MM[:SS]", s)
}

// ParseDate parses a "YYYY-MM-DD" date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return t, nil
}

func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

type LocalDateTime time.Time

func (d LocalDateTime) Time() time.Time { return time.Time(d) }

func (d LocalDateTime) IsZero() bool { return time.Time(d).IsZero() }

func (d LocalDateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateTimeLayout))
}

func (d *LocalDateTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return err
	}
	*d = LocalDateTime(t)
	return nil
}

type LocalDate time.Time

func (d LocalDate) Time() time.Time { return time.Time(d) }

func (d LocalDate) IsZero() bool { return time.Time(d).IsZero() }

func (d LocalDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Time(d).Format(DateLayout))
}

func (d *LocalDate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	t, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = LocalDate(t)
	return nil
}
