// construct.go — chain construction for vex-error: Lift, New, Newf.
//
// Scope:
//   - Lift is the propagation boundary: any concrete error becomes a
//     one-record chain with value, call-site location, and the single
//     origin Trace the chain will ever carry.
//   - New/Newf are the literal-string on-ramp; the message becomes a
//     concrete messageError so the root still carries a downcastable value.
//
// Skip accounting: the exported constructors pass how many of our own
// frames sit between the user and the internal lift helper, so both the
// recorded Location and the origin Trace begin at the user's call site.
package vexerror

import "fmt"

// messageError is the concrete type behind New/Newf: a failure that exists
// only to carry a literal message. It downcasts like any other type.
type messageError struct {
	msg string
}

func (e *messageError) Error() string { return e.msg }

// New creates a fresh one-record chain whose root value is a message-only
// failure. The origin trace is captured here.
func New(msg string) error {
	return lift(&messageError{msg: msg}, 1)
}

// Newf is New with fmt-style formatting, rendered eagerly.
func Newf(format string, args ...any) error {
	return lift(&messageError{msg: fmt.Sprintf(format, args...)}, 1)
}

// Lift converts any error into a chain without adding context.
//   - nil → nil (no allocation)
//   - an existing chain → returned as-is, trace NOT re-captured
//   - anything else → a new root record with value, location, and the
//     chain's one origin Trace
//
// This is the implicit on-ramp at propagation boundaries; Wrap calls it
// for you when handed a plain error.
func Lift(err error) error {
	if err == nil {
		return nil
	}
	if r, ok := err.(*Record); ok {
		return r
	}
	return lift(err, 1)
}

// lift creates the root record for a concrete failure. skip counts the
// exported wrappers between the user and this call (Lift → 1,
// Wrap → wrap → 2, ...) so location and trace start at the user frame.
func lift(err error, skip int) *Record {
	return &Record{
		value: newValue(err),
		loc:   callerLocation(skip + 1),
		trace: captureTrace(skip + 1),
	}
}
