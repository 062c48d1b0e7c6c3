// error_test.go — shared test fixtures and type-identity verification.
package vexerror

import (
	"strings"
	"testing"
)

// ---- fixture failure types used across the test suite ------------------------

type notFoundErr struct {
	resource string
}

func (e *notFoundErr) Error() string { return e.resource + " not found" }

type timeoutErr struct {
	ms int
}

func (e *timeoutErr) Error() string { return "timed out" }

type quotaErr struct {
	limit int
}

func (e *quotaErr) Error() string { return "quota exceeded" }

// ---- TypeID -----------------------------------------------------------------

func TestTypeIDOf_StableAndDistinct(t *testing.T) {
	t.Parallel()

	a1 := TypeIDOf[*notFoundErr]()
	a2 := TypeIDOf[*notFoundErr]()
	if a1 == "" || a1 != a2 {
		t.Fatalf("TypeIDOf must be stable and non-empty: %q vs %q", a1, a2)
	}
	if a1 == TypeIDOf[*timeoutErr]() {
		t.Fatalf("distinct types must not alias: %q", a1)
	}
	if TypeIDOf[*notFoundErr]() == TypeIDOf[notFoundErr]() {
		t.Fatalf("pointer and value types must have distinct identity")
	}
}

func TestTypeIDOf_IncludesPackagePath(t *testing.T) {
	t.Parallel()

	id := string(TypeIDOf[*notFoundErr]())
	if !strings.Contains(id, "github.com/vex-io/vex-error") {
		t.Fatalf("TypeID should embed the full package path; got %q", id)
	}
	if !strings.HasPrefix(id, "*") {
		t.Fatalf("pointer identity should be marked; got %q", id)
	}
}

func TestTypeIDOf_UnnamedStructQualifiesFields(t *testing.T) {
	t.Parallel()

	// An unnamed struct satisfies error via the embedded pointer's
	// promoted method, so it can end up as a stored failure identity.
	type carrier = struct{ *notFoundErr }
	id := string(TypeIDOf[carrier]())
	if !strings.Contains(id, "github.com/vex-io/vex-error.notFoundErr") {
		t.Fatalf("unnamed struct identity should embed full field paths; got %q", id)
	}
	if TypeID(id) == TypeIDOf[struct{ *timeoutErr }]() {
		t.Fatalf("unnamed structs with different fields must not alias")
	}

	var err error = carrier{&notFoundErr{resource: "user"}}
	if typeIDOfErr(err) != TypeID(id) {
		t.Fatalf("dynamic identity of an unnamed struct failure must match TypeIDOf")
	}
}

func TestTypeIDOf_InterfaceIsEmpty(t *testing.T) {
	t.Parallel()

	if id := TypeIDOf[error](); id != "" {
		t.Fatalf("interface targets have no concrete identity; got %q", id)
	}
}

// ---- Value ------------------------------------------------------------------

func TestValue_ImmutableIdentityAndText(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	v := newValue(nf)
	if v.Err() != nf {
		t.Fatalf("Value must store the concrete failure untouched")
	}
	if v.TypeID() != TypeIDOf[*notFoundErr]() {
		t.Fatalf("Value identity mismatch: %q", v.TypeID())
	}
	if v.String() != "user not found" {
		t.Fatalf("display text = %q", v.String())
	}
	if v.Detail() == "" {
		t.Fatalf("debug text should never be empty for a non-nil failure")
	}
}

func TestDowncastValue_ExactMatchOnly(t *testing.T) {
	t.Parallel()

	nf := &notFoundErr{resource: "user"}
	v := newValue(nf)

	got, ok := DowncastValue[*notFoundErr](v)
	if !ok || got != nf {
		t.Fatalf("DowncastValue to the lifted type must return the original reference")
	}
	if _, ok := DowncastValue[*timeoutErr](v); ok {
		t.Fatalf("DowncastValue must fail for a different concrete type")
	}
	if _, ok := DowncastValue[error](v); ok {
		t.Fatalf("interface targets never match")
	}
	if _, ok := DowncastValue[*notFoundErr](nil); ok {
		t.Fatalf("nil Value never matches")
	}
}

// ---- Location ---------------------------------------------------------------

func TestLocation_StringForms(t *testing.T) {
	t.Parallel()

	var zero Location
	if !zero.IsZero() || zero.String() != "<unknown>" {
		t.Fatalf("zero Location should stringify as <unknown>; got %q", zero.String())
	}
	l := Location{File: "pkg/svc.go", Line: 42, Function: "svc.run"}
	if l.String() != "pkg/svc.go:42" {
		t.Fatalf("Location.String() = %q", l.String())
	}
}
