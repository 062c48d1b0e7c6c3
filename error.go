// error.go — core carrier types for vex-error: Value, Record, Location.
//
// Scope (tiny core):
//   - Value: a type-erased capsule around exactly one concrete failure plus
//     a stable runtime type identity.
//   - Record: one node of the causal chain (value?, message?, location,
//     cause?), the unit every other file operates on.
//   - Location: the call site captured at each wrap/lift.
//
// Interop:
//   - *Record implements error, Unwrap() error, and the Is/As hooks so
//     stdlib errors.Is/As observe lifted values anywhere in the chain.
//
// Notes:
//   - Records are immutable after construction. There are no mutating
//     methods; wrapping always allocates a fresh outer record.
//   - Type identity is derived from package path + type name, never from
//     a pointer, so it is stable across module boundaries and process
//     lifetime.
package vexerror

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// TypeID is a process-stable identifier for a concrete failure type.
//
// Two distinct concrete types never alias to the same TypeID, and a given
// type always maps to the same TypeID for the process lifetime. The empty
// TypeID is reserved for "no type" (nil errors, interface targets).
type TypeID string

// TypeIDOf returns the TypeID for the concrete type T.
// For interface types it returns the empty TypeID: identity is defined
// only for concrete types.
func TypeIDOf[T any]() TypeID {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Interface {
		return ""
	}
	return typeIDFor(t)
}

// typeIDFor builds the stable identifier for a reflect.Type.
// Pointer levels are preserved ("*pkg/path.Name") so *T and T stay distinct.
func typeIDFor(t reflect.Type) TypeID {
	if t == nil {
		return ""
	}
	prefix := ""
	for t.Kind() == reflect.Pointer {
		prefix += "*"
		t = t.Elem()
	}
	if t.PkgPath() != "" && t.Name() != "" {
		return TypeID(prefix + t.PkgPath() + "." + t.Name())
	}
	if t.Kind() == reflect.Struct {
		// An unnamed struct can satisfy error through an embedded field, so
		// its identity must carry the full package path of every field type;
		// t.String() abbreviates those to the short package name, which can
		// collide across same-named packages.
		if t.NumField() == 0 {
			return TypeID(prefix + "struct {}")
		}
		parts := make([]string, t.NumField())
		for i := range parts {
			f := t.Field(i)
			parts[i] = f.Name + " " + string(typeIDFor(f.Type))
		}
		return TypeID(prefix + "struct { " + strings.Join(parts, "; ") + " }")
	}
	// Remaining unnamed kinds (func, map, slice) cannot carry methods, so
	// they never occur as stored failure identities; the printed form is
	// enough for the general TypeIDOf surface.
	return TypeID(prefix + t.String())
}

// typeIDOfErr resolves the dynamic type identity of an error value.
func typeIDOfErr(err error) TypeID {
	if err == nil {
		return ""
	}
	return typeIDFor(reflect.TypeOf(err))
}

// -----------------------------------------------------------------------------
// Value — type-erased failure capsule
// -----------------------------------------------------------------------------

// Value holds exactly one concrete failure behind a uniform surface:
// display text, debug text, and the stored type identity. Values are
// immutable; the identity never changes after construction.
type Value struct {
	err error
	id  TypeID
}

// newValue lifts a concrete error into a Value, recording its identity.
// Callers guarantee err != nil.
func newValue(err error) *Value {
	return &Value{err: err, id: typeIDOfErr(err)}
}

// Err returns the stored concrete failure.
func (v *Value) Err() error { return v.err }

// TypeID returns the stable identity of the stored failure's concrete type.
func (v *Value) TypeID() TypeID { return v.id }

// String returns the failure's display text.
func (v *Value) String() string { return v.err.Error() }

// Detail returns the failure's debug text (its %+v rendering), which for
// rich error types includes whatever extra detail they format themselves.
func (v *Value) Detail() string { return fmt.Sprintf("%+v", v.err) }

// DowncastValue recovers a typed reference from a Value. It succeeds only
// when the stored TypeID exactly equals the TypeID of T; a failed match is
// a (zero, false) return, never an error.
func DowncastValue[T error](v *Value) (T, bool) {
	var zero T
	if v == nil {
		return zero, false
	}
	want := TypeIDOf[T]()
	if want == "" || v.id != want {
		return zero, false
	}
	return v.err.(T), true
}

// -----------------------------------------------------------------------------
// Location — captured call site
// -----------------------------------------------------------------------------

// Location identifies the source position captured at a wrap or lift call
// site. The Go runtime resolves file and line (no column information);
// Function is the fully-qualified symbol when resolvable.
type Location struct {
	Function string
	File     string
	Line     int
}

// IsZero reports whether nothing could be resolved at capture time.
func (l Location) IsZero() bool { return l.File == "" && l.Function == "" }

// String renders "file:line", the diffable short form used by DebugFull.
func (l Location) String() string {
	if l.IsZero() {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// -----------------------------------------------------------------------------
// Record — one node of the causal chain
// -----------------------------------------------------------------------------

// Record is one point in the causal history of a failure. The root record
// (cause == nil) always carries a Value and, uniquely, the origin Trace;
// records created by message wraps carry only message + location.
type Record struct {
	value *Value
	msg   string
	loc   Location
	trace Trace // non-nil only on the chain's root record
	cause *Record
}

// Value returns the failure lifted at this record, or nil for
// message-only records.
func (r *Record) Value() *Value { return r.value }

// Message returns the contextual message attached at this record.
// It may be empty; the call site is recorded either way.
func (r *Record) Message() string { return r.msg }

// Location returns the call site captured when this record was created.
func (r *Record) Location() Location { return r.loc }

// Trace returns the origin capture, present only on the chain's root
// record. An empty or nil Trace means no trace is available.
func (r *Record) Trace() Trace { return r.trace }

// Cause returns the prior record in the chain, or nil at the root.
func (r *Record) Cause() *Record { return r.cause }

// Error renders the compact form: the first message found walking outward
// to inward, falling back to the first value's display text. The result
// never carries color codes, terminal or not.
func (r *Record) Error() string { return renderCompact(r, noColor) }

// Unwrap exposes the chain to stdlib traversal: the prior record when one
// exists, otherwise the concrete failure lifted at the root.
func (r *Record) Unwrap() error {
	if r.cause != nil {
		return r.cause
	}
	if r.value != nil {
		return r.value.err
	}
	return nil
}

// Is lets errors.Is observe the value lifted at THIS record. Mid-chain
// context values are otherwise invisible to the single-step Unwrap walk.
func (r *Record) Is(target error) bool {
	return r.value != nil && errors.Is(r.value.err, target)
}

// As is the errors.As counterpart of Is: it tries this record's own value
// before stdlib traversal continues down the chain.
func (r *Record) As(target any) bool {
	return r.value != nil && errors.As(r.value.err, target)
}
