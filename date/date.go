// Package date provides a day-granularity Date and a sorted, date-indexed
// series container used by the return engine and the growth simulator.
package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// Format is the format used to represent dates as strings, ISO-8601.
const Format = "2006-01-02"

// readFormat is more permissive and accepts single-digit month/day.
const readFormat = "2006-1-2"

const day = 24 * time.Hour

// Date represents a calendar date with no granularity lower than a day.
type Date struct {
	y int
	m time.Month
	d int
}

// New returns a normalized Date for the given year, month, and day.
func New(year int, month time.Month, d int) Date {
	n := Date{year, month, d}
	n.y, n.m, n.d = n.time().Date()
	return n
}

// time returns the canonical representation of that day (midnight UTC).
func (d Date) time() time.Time { return time.Date(d.y, d.m, d.d, 0, 0, 0, 0, time.UTC) }

// Today returns the current date.
func Today() Date { return New(time.Now().Date()) }

// Year returns the year of the date.
func (d Date) Year() int { return d.y }

// Month returns the month of the date.
func (d Date) Month() time.Month { return d.m }

// Day returns the day of the month.
func (d Date) Day() int { return d.d }

// Before reports whether d is strictly before x.
func (d Date) Before(x Date) bool { return d.time().Before(x.time()) }

// After reports whether d is strictly after x.
func (d Date) After(x Date) bool { return d.time().After(x.time()) }

// Add returns a new Date with the given number of days added.
func (d Date) Add(days int) Date { return New(d.y, d.m, d.d+days) }

// Sub returns the number of days elapsed from x to d. It is zero when both
// dates are equal and negative when d is before x.
func (d Date) Sub(x Date) int { return int(d.time().Sub(x.time()) / day) }

// Unix returns the Unix time of midnight UTC on that day.
func (d Date) Unix() int64 { return d.time().Unix() }

// IsZero reports whether the date is the zero value.
func (d Date) IsZero() bool { return d == Date{} }

// String formats the date in its standard format.
func (d Date) String() string { return d.time().Format(Format) }

// Parse parses a Date from a string. It is lenient and accepts formats
// like "2025-7-1".
func Parse(str string) (Date, error) {
	on, err := time.Parse(readFormat, str)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q want format %q: %w", str, Format, err)
	}
	return New(on.Date()), nil
}

// MustParse is like Parse but panics on error.
func MustParse(str string) Date {
	d, err := Parse(str)
	if err != nil {
		panic(err.Error())
	}
	return d
}

// UnmarshalJSON decodes a date from a json string.
func (d *Date) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	p, err := Parse(str)
	if err != nil {
		return err
	}
	*d = p
	return nil
}

// MarshalJSON encodes the date as a json string.
func (d Date) MarshalJSON() ([]byte, error) {
	str := d.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Date)(nil)
var _ json.Unmarshaler = (*Date)(nil)

// MarshalCSV encodes the date for CSV fields.
func (d Date) MarshalCSV() (string, error) { return d.String(), nil }

// UnmarshalCSV decodes the date from a CSV field.
func (d *Date) UnmarshalCSV(field string) error {
	p, err := Parse(field)
	if err != nil {
		return err
	}
	*d = p
	return nil
}
