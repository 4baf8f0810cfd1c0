package date

import (
	"testing"

	"github.com/mazzegi/mfdate/testx"
)

func TestYearMonthAddMonths(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		in   YearMonth
		n    int
		want YearMonth
	}
	tests := []test{
		{in: YearMonthOf(2020, 8), n: 0, want: YearMonthOf(2020, 8)},
		{in: YearMonthOf(2020, 12), n: 1, want: YearMonthOf(2021, 1)},
		{in: YearMonthOf(2020, 1), n: -1, want: YearMonthOf(2019, 12)},
		{in: YearMonthOf(2020, 1), n: -13, want: YearMonthOf(2018, 12)},
		{in: YearMonthOf(2020, 1), n: 25, want: YearMonthOf(2022, 2)},
		{in: YearMonthOf(0, 1), n: -1, want: YearMonthOf(-1, 12)},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, test.in.AddMonths(test.n))
	})

	tx.AssertEqual(YearMonthOf(2021, 9), YearMonthOf(2021, 8).Next())
	tx.AssertEqual(YearMonthOf(2021, 7), YearMonthOf(2021, 8).Previous())
}

func TestYearMonthCompare(t *testing.T) {
	tx := testx.NewTx(t)
	type test struct {
		a, b YearMonth
		want int
	}
	tests := []test{
		{a: YearMonthOf(2021, 8), b: YearMonthOf(2021, 8), want: 0},
		{a: YearMonthOf(2021, 7), b: YearMonthOf(2021, 8), want: -1},
		{a: YearMonthOf(2021, 9), b: YearMonthOf(2021, 8), want: 1},
		{a: YearMonthOf(2020, 12), b: YearMonthOf(2021, 1), want: -1},
		{a: YearMonthOf(2022, 1), b: YearMonthOf(2021, 12), want: 1},
		{a: YearMonthOf(-48, 1), b: YearMonthOf(0, 1), want: -1},
	}
	testx.RunTestsParallel(tx, tests, func(tx *testx.Tx, test test) {
		tx.AssertEqual(test.want, test.a.Compare(test.b))
		tx.AssertEqual(-test.want, test.b.Compare(test.a))
		tx.AssertEqual(test.want < 0, test.a.Before(test.b))
	})
}

func TestYearMonthString(t *testing.T) {
	tx := testx.NewTx(t)
	tx.AssertEqual("2021-08", YearMonthOf(2021, 8).String())
	tx.AssertEqual(Make(2021, 8, 1), YearMonthOf(2021, 8).FirstDay())
}
