// wrap.go — contextual wrapping that grows a chain by one record.
//
// Purpose
//   - Apply vexerror's chain model to ANY error value: plain errors are
//     lifted implicitly, existing chains grow by exactly one outer record.
//   - Preserve interop with the Go standard library (errors.Is/As/Unwrap).
//   - Stay policy-free: no logging/HTTP/JSON opinions here.
//
// Semantics
//   - Wrap(nil, ...) is always a no-op returning nil, with no allocation.
//   - A literal or formatted message is stored verbatim/eagerly; the new
//     record carries no value of its own, only message + location.
//   - WrapWith inserts a context error between the new top and the old
//     chain, keeping one linear causal line.
//   - The prior chain is owned by the new record. Callers should treat the
//     inner handle as consumed; records are immutable, so reuse cannot
//     corrupt the chain, but it forfeits the single-owner discipline the
//     model is documented around.
package vexerror

import "fmt"

// Wrap prepends a message record onto err's chain. A plain error is lifted
// first (capturing the chain's origin trace at this boundary), so
// Wrap(plainErr, "msg") yields a two-record chain: message over root.
//
// An empty message still records the call site; the message is stored
// empty, not omitted.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return wrap(err, msg, 1)
}

// Wrapf is Wrap with fmt-style formatting. The message is rendered
// immediately, never lazily.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return wrap(err, fmt.Sprintf(format, args...), 1)
}

// wrap builds the outer message record. skip counts exported wrappers
// above this helper (Wrap/Wrapf → 1).
func wrap(err error, msg string, skip int) *Record {
	prior, ok := err.(*Record)
	if !ok {
		prior = lift(err, skip+1)
	}
	return &Record{
		msg:   msg,
		loc:   callerLocation(skip + 1),
		cause: prior,
	}
}

// WrapWith prepends a context error onto err's chain: the context becomes
// the new top's value and the prior chain becomes its cause, preserving
// both causal lines as one linear chain.
//
// When ctx is itself a chain, its records are spliced above the prior
// chain (the spliced root loses its trace so the combined chain keeps
// exactly one origin capture, the prior chain's). A nil ctx degrades to
// Lift(err).
func WrapWith(err error, ctx error) error {
	if err == nil {
		return nil
	}
	prior, ok := err.(*Record)
	if !ok {
		prior = lift(err, 1)
	}
	if ctx == nil {
		return prior
	}
	if cr, ok := ctx.(*Record); ok {
		top, root := cloneChain(cr)
		root.trace = nil
		root.cause = prior
		return top
	}
	return &Record{
		value: newValue(ctx),
		loc:   callerLocation(1),
		cause: prior,
	}
}

// cloneChain copies every record of a chain so splicing never mutates the
// caller's handle. Values and traces are shared (both are immutable).
func cloneChain(r *Record) (top, root *Record) {
	var prev *Record
	for cur := r; cur != nil; cur = cur.cause {
		cp := &Record{
			value: cur.value,
			msg:   cur.msg,
			loc:   cur.loc,
			trace: cur.trace,
		}
		if prev == nil {
			top = cp
		} else {
			prev.cause = cp
		}
		prev = cp
	}
	return top, prev
}
