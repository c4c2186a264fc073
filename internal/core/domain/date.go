package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// DateLayout is the wire format of calendar dates: month/day/year.
	DateLayout = "01/02/2006"
	// parseLayout accepts single-digit month and day as well.
	parseLayout = "1/2/2006"
	isoLayout   = "2006-01-02"
)

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date. It does not normalise out-of-range values.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// ParseDate parses a MM/DD/YYYY string. Any other shape, or a day that does not
// exist in the given month, is rejected.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(parseLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q, expected MM/DD/YYYY", s)
	}
	return DateOf(t), nil
}

// ParseISODate parses the YYYY-MM-DD form used for storage.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid stored date %q: %w", s, err)
	}
	return DateOf(t), nil
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.Time().Format(isoLayout)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time().Format(DateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date must be a MM/DD/YYYY string")
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
