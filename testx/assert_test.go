package testx

import (
	"testing"

	"github.com/r3labs/diff/v3"
)

func TestFormatChangelog(t *testing.T) {
	type ymd struct {
		Year  int
		Month int
	}
	cl, err := diff.Diff(ymd{Year: 2021, Month: 8}, ymd{Year: 2021, Month: 9})
	AssertNoErr(t, err)
	AssertEqual(t, "update Month: 8 -> 9", formatChangelog(cl))
}

func TestAsserts(t *testing.T) {
	tx := NewTx(t)
	tx.AssertTrue(true)
	tx.AssertFalse(false, "value %d", 1)
	tx.AssertNoChanges(struct{ A string }{A: "a"}, struct{ A string }{A: "a"})
	AssertInRange(t, 7, 1, 12)
	AssertEqual(t, " (value 1)", suffix([]any{"value %d", 1}))
	AssertEqual(t, "", suffix(nil))
}
