package date

import "iter"

// MonthIter steps month by month from a start date through the month of an end date.
type MonthIter struct {
	current MonthFloor
	end     MonthFloor
}

// NextBeforeEq returns an iterator starting at mf itself. The first value is
// not normalized; call AddMonthsResetDay(0) first to start on the 1st.
func (mf MonthFloor) NextBeforeEq(end MonthFloor) *MonthIter {
	return &MonthIter{
		current: mf,
		end:     end,
	}
}

// Next returns the current month and advances, or false once the cursor is past end's month.
func (it *MonthIter) Next() (MonthFloor, bool) {
	if !it.current.DayBeforeOrEq(it.end) {
		return MonthFloor{}, false
	}
	current := it.current
	it.current = it.current.AddMonthsResetDay(1)
	return current, true
}

// All drains the iterator.
func (it *MonthIter) All() iter.Seq[MonthFloor] {
	return func(yield func(MonthFloor) bool) {
		for {
			mf, ok := it.Next()
			if !ok || !yield(mf) {
				return
			}
		}
	}
}

// Months yields the first day of every month from start's month through end's month.
func Months(start, end MonthFloor) iter.Seq[MonthFloor] {
	return func(yield func(MonthFloor) bool) {
		for mf := range start.AddMonthsResetDay(0).NextBeforeEq(end).All() {
			if !yield(mf) {
				return
			}
		}
	}
}

// Range collects the months from start's month through end's month with an explicit loop.
func Range(start, end MonthFloor) []MonthFloor {
	var mfs []MonthFloor
	for mf := start.AddMonthsResetDay(0); mf.DayBeforeOrEq(end); mf = mf.AddMonthsResetDay(1) {
		mfs = append(mfs, mf)
	}
	return mfs
}
