// unwrap.go — chain traversal helpers.
//
// Scope (tiny core):
//   - Root: the original concrete failure at the bottom of a chain.
//   - Cause: the one-step "has a cause" walk (nil at the root), the
//     generic contract external tooling can rely on without knowing our
//     concrete record type.
//   - Records: an outer→inner snapshot of the chain for introspection.
//
// Traversal is trivially acyclic: records form a singly linked list built
// by consuming wraps, so a plain loop suffices — no seen-sets, no depth
// caps.
package vexerror

import "errors"

// Root returns the innermost concrete failure of err's chain: the value
// lifted when the chain was born, unchanged by any number of wraps.
// A non-chain error is its own root; Root(nil) is nil.
func Root(err error) error {
	rec, ok := err.(*Record)
	if !ok {
		return err
	}
	innermost := error(nil)
	for ; rec != nil; rec = rec.cause {
		if rec.value != nil {
			innermost = rec.value.err
		}
	}
	if innermost == nil {
		// Unreachable for chains built by this package: the root record is
		// always created by lifting a concrete value.
		return err
	}
	return innermost
}

// Cause performs one step of chain traversal: the prior record when one
// exists, nil at the root. For foreign errors it degrades to
// errors.Unwrap so generic chained-failure tooling interoperates.
func Cause(err error) error {
	switch r := err.(type) {
	case nil:
		return nil
	case *Record:
		if r.cause == nil {
			return nil
		}
		return r.cause
	default:
		return errors.Unwrap(err)
	}
}

// Records returns the chain's records outermost first. A non-chain error
// yields nil. The slice is a fresh snapshot; the records themselves are
// shared (and immutable).
func Records(err error) []*Record {
	rec, ok := err.(*Record)
	if !ok || rec == nil {
		return nil
	}
	out := make([]*Record, 0, 4)
	for ; rec != nil; rec = rec.cause {
		out = append(out, rec)
	}
	return out
}
