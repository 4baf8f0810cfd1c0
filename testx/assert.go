package testx

import (
	"reflect"
	"strings"
	"testing"

	"github.com/r3labs/diff/v3"
	"golang.org/x/exp/constraints"
)

func AssertEqual(t *testing.T, want, have any) {
	t.Helper()
	if reflect.DeepEqual(want, have) {
		return
	}
	t.Fatalf("want %v, have %v", want, have)
}

func AssertInRange[T constraints.Ordered](t *testing.T, val, lower, upper T) {
	t.Helper()
	if val >= lower && val <= upper {
		return
	}
	t.Fatalf("%v not in range [%v, %v]", val, lower, upper)
}

// AssertNoChanges compares structs with exported fields and reports every differing field.
func AssertNoChanges(t *testing.T, want, have any) {
	t.Helper()
	cl, err := diff.Diff(want, have)
	if err != nil {
		t.Fatalf("diff: %v", err)
	}
	if len(cl) == 0 {
		return
	}
	t.Fatalf("want %v, have %v: %s", want, have, formatChangelog(cl))
}

func formatChangelog(cl diff.Changelog) string {
	var sl []string
	for _, c := range cl {
		sl = append(sl, c.Type+" "+strings.Join(c.Path, ".")+": "+fmtValue(c.From)+" -> "+fmtValue(c.To))
	}
	return strings.Join(sl, "; ")
}

func AssertNoErr(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		return
	}
	t.Fatalf("error is not-nil but: %v", err)
}

func AssertErr(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		return
	}
	t.Fatalf("expect err; got none")
}
