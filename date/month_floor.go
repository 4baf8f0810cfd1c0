package date

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lestrrat-go/strftime"
)

// DisplayLayout renders like the strftime pattern "%b%e, %Y", e.g. "Aug 1, 2021".
const DisplayLayout = "Jan_2, 2006"

// MonthFloor is a calendar date used for bucketing and ranging by month.
// Equality is day-exact while the ordering methods only look at year and month.
type MonthFloor struct {
	d Date
}

func NewMonthFloor(year int, month time.Month, day int) (MonthFloor, error) {
	d, err := New(year, month, day)
	if err != nil {
		return MonthFloor{}, err
	}
	return MonthFloor{d: d}, nil
}

func MustMonthFloor(year int, month time.Month, day int) MonthFloor {
	mf, err := NewMonthFloor(year, month, day)
	if err != nil {
		panic(fmt.Sprintf("make month-floor date: %v", err))
	}
	return mf
}

// MonthFloorFromTime drops the time of day and keeps the date in t's own location.
func MonthFloorFromTime(t time.Time) MonthFloor {
	return MonthFloor{d: FromTime(t)}
}

func ParseMonthFloor(s string) (MonthFloor, error) {
	d, err := Parse(s)
	if err != nil {
		return MonthFloor{}, err
	}
	return MonthFloor{d: d}, nil
}

func (mf MonthFloor) Date() Date {
	return mf.d
}

func (mf MonthFloor) Year() int {
	return mf.d.Year()
}

func (mf MonthFloor) Month() time.Month {
	return mf.d.Month()
}

func (mf MonthFloor) Day() int {
	return mf.d.Day()
}

func (mf MonthFloor) YearMonth() YearMonth {
	return YearMonthOf(mf.Year(), mf.Month())
}

func (mf MonthFloor) Equal(omf MonthFloor) bool {
	return mf.d.Equal(omf.d)
}

func (mf MonthFloor) YearMonthEq(omf MonthFloor) bool {
	return mf.Year() == omf.Year() && mf.Month() == omf.Month()
}

// DayBefore reports whether mf's month is strictly before omf's month.
// The day of month is not consulted.
func (mf MonthFloor) DayBefore(omf MonthFloor) bool {
	return mf.YearMonth().Before(omf.YearMonth())
}

func (mf MonthFloor) DayBeforeOrEq(omf MonthFloor) bool {
	return mf.YearMonthEq(omf) || mf.DayBefore(omf)
}

// AddMonthsResetDay moves to the first of the month and then n months forward
// (or backward for negative n).
func (mf MonthFloor) AddMonthsResetDay(n int) MonthFloor {
	return MonthFloor{d: mf.YearMonth().AddMonths(n).FirstDay()}
}

// Format renders mf with a strftime pattern like "%b %e, %Y" or "%D".
func (mf MonthFloor) Format(pattern string) (string, error) {
	s, err := strftime.Format(pattern, mf.d.Time())
	if err != nil {
		return "", fmt.Errorf("strftime %q: %w", pattern, err)
	}
	return s, nil
}

func (mf MonthFloor) MustFormat(pattern string) string {
	s, err := mf.Format(pattern)
	if err != nil {
		panic(err.Error())
	}
	return s
}

func (mf MonthFloor) String() string {
	return mf.d.Time().Format(DisplayLayout)
}

func (mf MonthFloor) GoString() string {
	return mf.String()
}

func (mf MonthFloor) MarshalJSON() ([]byte, error) {
	return json.Marshal(mf.d.CanonicalString())
}

func (mf *MonthFloor) UnmarshalJSON(data []byte) error {
	var s string
	err := json.Unmarshal(data, &s)
	if err != nil {
		return err
	}
	pmf, err := ParseMonthFloor(s)
	if err != nil {
		return fmt.Errorf("parse-month-floor %q: %w", s, err)
	}
	*mf = pmf
	return nil
}

func (mf MonthFloor) Value() (driver.Value, error) {
	return mf.d.CanonicalString(), nil
}

func (mf *MonthFloor) Scan(src any) error {
	switch v := src.(type) {
	case string:
		pmf, err := ParseMonthFloor(v)
		if err != nil {
			return fmt.Errorf("scan %q: %w", v, err)
		}
		*mf = pmf
	case []byte:
		return mf.Scan(string(v))
	case time.Time:
		*mf = MonthFloorFromTime(v)
	default:
		return fmt.Errorf("cannot scan %T into date.MonthFloor", src)
	}
	return nil
}
