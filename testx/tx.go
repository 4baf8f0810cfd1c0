package testx

import (
	"fmt"
	"testing"
)

func NewTx(t *testing.T) *Tx {
	return &Tx{t: t}
}

type Tx struct {
	t *testing.T
}

func (tx *Tx) T() *testing.T {
	return tx.t
}

func (tx *Tx) AssertEqual(want, have any) {
	tx.t.Helper()
	AssertEqual(tx.t, want, have)
}

func (tx *Tx) AssertTrue(b bool, msgAndArgs ...any) {
	tx.t.Helper()
	if b {
		return
	}
	tx.t.Fatalf("expect true; got false%s", suffix(msgAndArgs))
}

func (tx *Tx) AssertFalse(b bool, msgAndArgs ...any) {
	tx.t.Helper()
	if !b {
		return
	}
	tx.t.Fatalf("expect false; got true%s", suffix(msgAndArgs))
}

func (tx *Tx) AssertNoChanges(want, have any) {
	tx.t.Helper()
	AssertNoChanges(tx.t, want, have)
}

func (tx *Tx) AssertNoErr(err error) {
	tx.t.Helper()
	if err == nil {
		return
	}
	tx.t.Fatalf("error is not-nil but: %v", err)
}

func (tx *Tx) AssertErr(err error) {
	tx.t.Helper()
	if err != nil {
		return
	}
	tx.t.Fatalf("expect err; got none")
}

func suffix(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return " (" + fmt.Sprint(msgAndArgs...) + ")"
	}
	return " (" + fmt.Sprintf(format, msgAndArgs[1:]...) + ")"
}

func fmtValue(v any) string {
	return fmt.Sprintf("%v", v)
}
