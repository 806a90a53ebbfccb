package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04:05"
	DateTimeLayout  = "2006-01-02T15:04:05"
)

var (
	dateLayouts      = []string{DateLayout, time.RFC3339, DateTimeLayout}
	timeOfDayLayouts = []string{TimeOfDayLayout, "15:04", "15:04:05.999999"}
	dateTimeLayouts  = []string{time.RFC3339, DateTimeLayout, "2006-01-02T15:04", "2006-01-02 15:04:05", DateLayout}
)

func parseFirst(layouts []string, s string) (time.Time, error) {
	var lastErr error
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func unquote(b []byte) (string, bool, error) {
	if bytes.Equal(b, []byte("null")) {
		return "", true, nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return "", false, err
	}
	return strings.TrimSpace(s), false, nil
}

// Date is a calendar date without time of day, carried as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate truncates t to its calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, isNull, err := unquote(b)
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	if isNull || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := parseFirst(dateLayouts, s)
	if err != nil {
		return fmt.Errorf("date %q must be YYYY-MM-DD", s)
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}

// Value stores the date as text so the store casts it to its date type.
func (d Date) Value() (driver.Value, error) {
	return d.Format(DateLayout), nil
}

func (d *Date) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v.Year(), v.Month(), v.Day())
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("date: cannot scan %T", src)
	}
}

func (d *Date) scanString(s string) error {
	t, err := parseFirst(dateLayouts, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("date: %w", err)
	}
	*d = NewDate(t.Year(), t.Month(), t.Day())
	return nil
}

// TimeOfDay is a wall clock time, carried as "HH:MM:SS".
type TimeOfDay struct {
	time.Duration
}

// NewTimeOfDay builds a TimeOfDay from its components.
func NewTimeOfDay(hour, minute, second int) TimeOfDay {
	return TimeOfDay{Duration: time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute + time.Duration(second)*time.Second}
}

func (t TimeOfDay) String() string {
	total := int(t.Duration / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(b []byte) error {
	s, isNull, err := unquote(b)
	if err != nil {
		return fmt.Errorf("time of day: %w", err)
	}
	if isNull || s == "" {
		t.Duration = 0
		return nil
	}
	return t.parse(s)
}

func (t *TimeOfDay) parse(s string) error {
	parsed, err := parseFirst(timeOfDayLayouts, s)
	if err != nil {
		return fmt.Errorf("time of day %q must be HH:MM[:SS]", s)
	}
	*t = NewTimeOfDay(parsed.Hour(), parsed.Minute(), parsed.Second())
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String(), nil
}

func (t *TimeOfDay) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimeOfDay(v.Hour(), v.Minute(), v.Second())
		return nil
	case []byte:
		return t.parse(strings.TrimSpace(string(v)))
	case string:
		return t.parse(strings.TrimSpace(v))
	case nil:
		t.Duration = 0
		return nil
	default:
		return fmt.Errorf("time of day: cannot scan %T", src)
	}
}

// DateTime is a local timestamp without zone, carried as "YYYY-MM-DDTHH:MM:SS".
// Zoned RFC 3339 input is accepted and kept in its own zone.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateTimeLayout))
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s, isNull, err := unquote(b)
	if err != nil {
		return fmt.Errorf("date time: %w", err)
	}
	if isNull || s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := parseFirst(dateTimeLayouts, s)
	if err != nil {
		return fmt.Errorf("date time %q must be YYYY-MM-DDTHH:MM[:SS]", s)
	}
	d.Time = t
	return nil
}

func (d DateTime) Value() (driver.Value, error) {
	return d.Format(DateTimeLayout), nil
}

func (d *DateTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		d.Time = v
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("date time: cannot scan %T", src)
	}
}

func (d *DateTime) scanString(s string) error {
	t, err := parseFirst(dateTimeLayouts, strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("date time: %w", err)
	}
	d.Time = t
	return nil
}
