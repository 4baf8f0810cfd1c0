// Package date provides calendar dates without time of day, year/month keys
// and the month-floor date used for month bucketing and month ranges.
// All dates use the proleptic Gregorian calendar and ignore time zones.
package date

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a year/month/day triple is not a real calendar day.
var ErrInvalidDate = errors.New("invalid date")

var loc = time.FixedZone("default", 0)

type Date struct {
	t time.Time
}

// New returns the date for year, month and day or an error wrapping ErrInvalidDate.
func New(year int, month time.Month, day int) (Date, error) {
	if month < time.January || month > time.December {
		return Date{}, fmt.Errorf("%w: month %d out of range", ErrInvalidDate, month)
	}
	d := Make(year, month, day)
	if day < 1 || d.Month() != month || d.Day() != day {
		return Date{}, fmt.Errorf("%w: %d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// Make normalizes out-of-range values the way time.Date does.
func Make(year int, month time.Month, day int) Date {
	return Date{
		t: time.Date(year, month, day, 0, 0, 0, 0, loc),
	}
}

func FromTime(t time.Time) Date {
	return Make(t.Year(), t.Month(), t.Day())
}

const CanonicalDate = "2006-01-02"

var parseLayouts = []string{
	CanonicalDate,
	time.RFC3339Nano,
}

// Parse takes the calendar date as written, the offset of RFC3339 input is not applied.
func Parse(s string) (Date, error) {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return FromTime(t), nil
		}
	}
	return Date{}, fmt.Errorf("cannot parse %q in any layout of %v", s, parseLayouts)
}

func (d Date) CanonicalString() string {
	return d.t.Format(CanonicalDate)
}

func (d Date) String() string {
	return d.CanonicalString()
}

func (d Date) Time() time.Time {
	return d.t
}

func (d Date) Year() int {
	return d.t.Year()
}

func (d Date) Month() time.Month {
	return d.t.Month()
}

func (d Date) Day() int {
	return d.t.Day()
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(od Date) bool {
	return d.t.Equal(od.t)
}

func (d Date) Before(od Date) bool {
	return d.t.Before(od.t)
}

func (d Date) After(od Date) bool {
	return d.t.After(od.t)
}

func (d Date) FirstOfMonth() Date {
	return Make(d.Year(), d.Month(), 1)
}
