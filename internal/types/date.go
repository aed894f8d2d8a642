// Package types implements special types for fundledger.
package types

import (
	"database/sql"
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of a Date.
const DateLayout = "2006-01-02"

// Date is a calendar day without a time of day.
//
// Ledger postings, funding receipts and expenses are all dated by day, the
// time of day has no meaning for any of them.
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

// ParseDate parses a string in RFC3339 full-date format.
//
// Full RFC3339 timestamps are accepted too, everything except the day is
// then ignored.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err == nil {
		return DateOf(t), nil
	}

	t, err = time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("could not parse date %q, use YYYY-MM-DD format", s)
	}

	return DateOf(t), nil
}

// String returns the date formatted as YYYY-MM-DD.
func (d Date) String() string {
	return time.Time(d).Format(DateLayout)
}

// Time returns the time at midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Time(d)
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
	value := strings.Trim(string(data), `"`) // get rid of "
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

// UnmarshalParam implements gin's BindUnmarshaler so that
// dates can be used in query and URI bindings.
func (d *Date) UnmarshalParam(p string) error {
	if p == "" {
		*d = Date{}
		return nil
	}

	parsed, err := ParseDate(p)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// Scan writes the value from the database.
func (d *Date) Scan(value interface{}) (err error) {
	if s, ok := value.(string); ok {
		parsed, err := ParseDate(strings.SplitN(s, " ", 2)[0])
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	}

	nullTime := &sql.NullTime{}
	err = nullTime.Scan(value)
	if nullTime.Valid {
		*d = DateOf(nullTime.Time)
	} else {
		*d = Date{}
	}
	return err
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

// IsZero reports if the date is the zero value.
func (d Date) IsZero() bool {
	return time.Time(d).IsZero()
}

// AddDate adds a specified amount of years, months and days.
func (d Date) AddDate(years, months, days int) Date {
	return Date(time.Time(d).AddDate(years, months, days))
}

// Before reports whether d is before e.
func (d Date) Before(e Date) bool {
	return time.Time(d).Before(time.Time(e))
}

// After reports whether d is after e.
func (d Date) After(e Date) bool {
	return time.Time(d).After(time.Time(e))
}

// Equal reports whether d and e represent the same day.
func (d Date) Equal(e Date) bool {
	return time.Time(d).Equal(time.Time(e))
}

// Compare returns -1 if d is before e, +1 if d is after e, 0 if they are equal.
func (d Date) Compare(e Date) int {
	return time.Time(d).Compare(time.Time(e))
}

// Within reports whether d lies in the closed interval [start, end].
// A zero start or end leaves that side of the interval open.
func (d Date) Within(start, end Date) bool {
	if !start.IsZero() && d.Before(start) {
		return false
	}

	if !end.IsZero() && d.After(end) {
		return false
	}

	return true
}

// YearBounds returns the first and the last day of the year d is in.
func (d Date) YearBounds() (Date, Date) {
	year := time.Time(d).Year()
	return NewDate(year, time.January, 1), NewDate(year, time.December, 31)
}
