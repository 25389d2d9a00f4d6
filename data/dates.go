package data

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date represents a calendar date with no time component. Loan dates are
// recorded date-only: a book borrowed at 23:59 and one borrowed at 00:01
// on the same day age identically.
type Date struct {
	time.Time
}

// NewDate truncates a point in time to its UTC calendar date.
func NewDate(t time.Time) Date {
	t = t.UTC()
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// MustParseDate is a test helper which parses a YYYY-MM-DD string.
// It panics on malformed input.
func MustParseDate(value string) Date {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return Date{t}
}

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return Date{d.Time.AddDate(0, 0, n)}
}

// DaysUntil returns the whole number of days from d to other.
// The result is negative if other is before d.
func (d Date) DaysUntil(other Date) int {
	return int(other.Time.Sub(d.Time).Hours() / 24)
}

// Before reports whether d is strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// String renders the date in YYYY-MM-DD format.
func (d Date) String() string {
	return d.Time.Format("2006-01-02")
}

// MarshalJSON renders the date in YYYY-MM-DD format.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON parses a YYYY-MM-DD JSON string.
func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return fmt.Errorf("invalid date: %w", err)
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so a DATE column scans directly into a Date.
func (d *Date) Scan(src interface{}) error {
	t, ok := src.(time.Time)
	if !ok {
		return fmt.Errorf("cannot scan %T into Date", src)
	}
	*d = NewDate(t)
	return nil
}

// Value implements driver.Valuer.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
