// unwrap_test.go — verification of Root / Cause / Records and stdlib interop.
package vexerror

import (
	"errors"
	"fmt"
	"testing"
)

func TestRoot_UnchangedThroughWraps(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	err := Lift(nf)
	for i := 0; i < 7; i++ {
		err = Wrap(err, fmt.Sprintf("layer %d", i))
	}
	got := Root(err)
	if got != nf {
		t.Fatalf("Root = %v, want the originally lifted failure", got)
	}
	if got.(*notFoundErr).resource != "user" {
		t.Fatalf("root content must be untouched")
	}
}

func TestRoot_ForeignAndNil(t *testing.T) {
	t.Parallel()

	plain := errors.New("plain")
	if Root(plain) != plain {
		t.Fatalf("a non-chain error is its own root")
	}
	if Root(nil) != nil {
		t.Fatalf("Root(nil) must be nil")
	}
}

func TestCause_OneStepWalk(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(Lift(&timeoutErr{ms: 1}), "inner"), "outer")
	recs := Records(err)

	step := Cause(err)
	if step != error(recs[1]) {
		t.Fatalf("Cause(outer) must be the next record")
	}
	if Cause(recs[2]) != nil {
		t.Fatalf("Cause at the root must be nil")
	}
	if Cause(nil) != nil {
		t.Fatalf("Cause(nil) must be nil")
	}
}

func TestCause_ForeignErrorsDegradeToUnwrap(t *testing.T) {
	t.Parallel()

	inner := errors.New("inner")
	wrapped := fmt.Errorf("outer: %w", inner)
	if Cause(wrapped) != inner {
		t.Fatalf("Cause should follow stdlib Unwrap on foreign errors")
	}
	if Cause(inner) != nil {
		t.Fatalf("Cause of a leaf foreign error is nil")
	}
}

func TestRecords_OuterToInnerSnapshot(t *testing.T) {
	t.Parallel()

	err := Wrap(Wrap(Lift(&timeoutErr{ms: 1}), "inner"), "outer")
	recs := Records(err)
	if len(recs) != 3 {
		t.Fatalf("len = %d, want 3", len(recs))
	}
	if recs[0].Message() != "outer" || recs[1].Message() != "inner" {
		t.Fatalf("records must be ordered outermost first")
	}
	if Records(errors.New("plain")) != nil {
		t.Fatalf("Records of a foreign error is nil")
	}
}

// --- stdlib interop ----------------------------------------------------------

func TestInterop_ErrorsIsReachesRoot(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("sentinel")
	err := Wrap(Wrap(Lift(sentinel), "inner"), "outer")
	if !errors.Is(err, sentinel) {
		t.Fatalf("errors.Is must see the lifted root through the chain")
	}
}

func TestInterop_ErrorsAsReachesRoot(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	err := Wrap(Lift(nf), "ctx")

	var got *notFoundErr
	if !errors.As(err, &got) || got != nf {
		t.Fatalf("errors.As must recover the lifted root")
	}
}

func TestInterop_MidChainValueVisible(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	qe := &quotaErr{limit: 3}
	err := Wrap(WrapWith(Lift(nf), qe), "outer")

	var gotQuota *quotaErr
	if !errors.As(err, &gotQuota) || gotQuota != qe {
		t.Fatalf("errors.As must see a mid-chain context value")
	}
	if !errors.Is(err, qe) {
		t.Fatalf("errors.Is must see a mid-chain context value")
	}
	var gotNF *notFoundErr
	if !errors.As(err, &gotNF) || gotNF != nf {
		t.Fatalf("errors.As must still reach the root below the context value")
	}
}

func TestInterop_ErrorsUnwrapSingleStep(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	root := Lift(nf)
	if errors.Unwrap(root) != nf {
		t.Fatalf("the root record unwraps to its concrete failure")
	}

	outer := Wrap(root, "ctx")
	if errors.Unwrap(outer) != root {
		t.Fatalf("an outer record unwraps to the prior chain")
	}
}
