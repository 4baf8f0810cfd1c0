package date

import (
	"fmt"
	"time"
)

// YearMonth is the month a date falls into. It is the key for all
// month-granularity comparisons.
type YearMonth struct {
	d Date
}

func YearMonthOf(year int, month time.Month) YearMonth {
	return YearMonth{d: Make(year, month, 1)}
}

func (ym YearMonth) Year() int {
	return ym.d.Year()
}

func (ym YearMonth) Month() time.Month {
	return ym.d.Month()
}

func (ym YearMonth) FirstDay() Date {
	return ym.d
}

func (ym YearMonth) Previous() YearMonth {
	return ym.AddMonths(-1)
}

func (ym YearMonth) Next() YearMonth {
	return ym.AddMonths(1)
}

// AddMonths is exact since the underlying date is always the first of the month.
func (ym YearMonth) AddMonths(n int) YearMonth {
	return YearMonthOf(ym.Year(), ym.Month()+time.Month(n))
}

// Compare returns -1, 0 or +1 depending on whether ym is before, equal to or after oym.
func (ym YearMonth) Compare(oym YearMonth) int {
	switch {
	case ym.Year() < oym.Year():
		return -1
	case ym.Year() > oym.Year():
		return 1
	case ym.Month() < oym.Month():
		return -1
	case ym.Month() > oym.Month():
		return 1
	default:
		return 0
	}
}

func (ym YearMonth) Before(oym YearMonth) bool {
	return ym.Compare(oym) < 0
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%d-%02d", ym.Year(), ym.Month())
}
