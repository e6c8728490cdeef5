// Package types implements special types for the finance dashboard.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of a calendar date.
const DateLayout = "2006-01-02"

// Date is a calendar date without a time of day.
type Date time.Time

// NewDate returns a new Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the Date on which a time occurs in that time's location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// Today returns the current date in UTC.
func Today() Date {
	return DateOf(time.Now().In(time.UTC))
}

// ParseDate parses a "YYYY-MM-DD" string and returns the Date value it represents.
//
// Full RFC3339 timestamps are accepted as well, everything but the
// calendar date is ignored for them.
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)

	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return DateOf(t), nil
	}

	t, rfcErr := time.Parse(time.RFC3339, s)
	if rfcErr != nil {
		return Date{}, err
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
//
// The zero date is formatted as the empty string.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}

	t := time.Time(d)
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), t.Month(), t.Day())
}

// MarshalJSON implements the json.Marshaler interface.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}

	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
// The date is expected to be a string in a format accepted by ParseDate.
func (d *Date) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// UnmarshalParam implements gin's BindUnmarshaler for query and form binding.
func (d *Date) UnmarshalParam(param string) error {
	return d.UnmarshalJSON([]byte(param))
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	switch v := value.(type) {
	case string:
		*d, err = parseStored(v)
		return err
	case []byte:
		*d, err = parseStored(string(v))
		return err
	}

	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if err != nil || !nullTime.Valid {
		*d = Date{}
		return err
	}

	*d = DateOf(nullTime.Time)
	return nil
}

// parseStored parses a date stored as text. Drivers store time.Time
// values with a time of day, only the date part is used.
func parseStored(s string) (Date, error) {
	if len(s) >= len(DateLayout) {
		s = s[:len(DateLayout)]
	}

	return ParseDate(s)
}

// Value returns the value for the SQL driver to write to the database.
func (d Date) Value() (driver.Value, error) {
	year, month, day := time.Time(d).Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), nil
}

// GormDataType defines the data type used by gorm the type.
func (Date) GormDataType() string {
	return "date"
}

// Time returns the date as time.Time at midnight UTC.
func (d Date) Time() time.Time {
	return time.Time(d)
}

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds the specified amount of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// Before reports whether the date d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether the date d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same date.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// StartOfMonth returns the first day of the month the date is in.
func (d Date) StartOfMonth() Date {
	t := time.Time(d)
	return NewDate(t.Year(), t.Month(), 1)
}

// EndOfMonth returns the last day of the month the date is in.
func (d Date) EndOfMonth() Date {
	return d.StartOfMonth().AddDate(0, 1, -1)
}
