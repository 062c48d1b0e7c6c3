// doc.go — package documentation for vex-error
//
// Package vexerror provides a uniform carrier for runtime failures: any
// concrete error can be lifted into an immutable, append-only causal chain,
// annotated with context as it propagates, and later introspected — either
// as display text or as the original concrete type via exact downcasting.
// It is designed to be:
//   - Ergonomic at call sites (small surface, clear semantics)
//   - Interoperable with the stdlib (errors.Is/As/Unwrap, fmt.Formatter)
//   - Policy-free (no logging/HTTP/retry-backoff rules in core)
//
// # The Chain Model
//
// A chain is a singly linked list of records, outermost (most recent
// context) to innermost (the root, created when a concrete failure is first
// lifted). Each Wrap call produces a NEW outer record whose cause is the
// full prior chain; records are never mutated after construction, so chains
// are acyclic by construction and safe to share as long as the lifted
// concrete errors are.
//
//	err := doQuery()                       // concrete *pq.Error, say
//	err = vexerror.Wrap(err, "load user")  // lift + message record
//	err = vexerror.Wrap(err, "handle req") // one more record
//
// # When Is the Origin Trace Captured?
//
// Exactly once per chain, when the root record is created (Lift, New, or
// the implicit lift inside Wrap). Subsequent wraps only record their own
// call site; they never re-walk the stack. A platform that cannot resolve
// symbols yields an empty trace, which renders as "no trace available"
// rather than failing.
//
//	+-------------------------------+--------------------+
//	| Operation                     | Captures trace?    |
//	+-------------------------------+--------------------+
//	| Lift(err) / New / Newf        | YES (root record)  |
//	| Wrap / Wrapf on a chain       | NO (location only) |
//	| Wrap / Wrapf on a plain error | YES (implicit lift)|
//	| WrapWith                      | NO (location only) |
//	+-------------------------------+--------------------+
//
// # Type Identity & Downcasting
//
// Every lifted failure keeps a stable TypeID derived from its full package
// path and type name — never an address — so identity survives module
// boundaries. Downcast[T] succeeds only on exact identity:
//
//	if pe, ok := vexerror.Downcast[*os.PathError](err); ok {
//		// pe is the original *os.PathError, untouched
//	}
//
// Dispatch evaluates an ordered case list and fires the FIRST matching
// handler (first-match-wins, not most-specific-match):
//
//	vexerror.Dispatch(vexerror.Root(err),
//		vexerror.On(func(e *os.PathError) { ... }),
//		vexerror.On(func(e *net.OpError) { ... }),
//		vexerror.Otherwise(func(e error) { ... }),
//	)
//
// # Rendering
//
// Four fixed verbosity levels, stable and diffable for log pipelines:
//   - Compact   (%s)  — single line, outermost message.
//   - Flat      (%v)  — one line per record, outer to inner.
//   - Debug     (%+v) — Flat plus the origin trace under the root.
//   - DebugFull (%#v) — Debug plus each record's own call site.
//
// Output is colorized (messages red, symbols cyan) only when stdout is a
// terminal; setting VEXERROR_COLOR=0 forces color off regardless.
// VEXERROR_FULLSTACK=1 disables origin-trace frame filtering.
//
// # Interop
//
//   - Records implement Unwrap() error, so errors.Is/As traverse the chain
//     and reach the lifted concrete errors, including mid-chain context
//     values (via Is/As hooks).
//   - Cause provides the one-step "has a cause" walk external tooling
//     expects: nil at the root, the next record otherwise.
//
// # Concurrency
//
// Every operation is synchronous and lock-free. Chains are immutable after
// construction; cross-goroutine sharing is safe iff the concrete errors
// stored in them are. That is a construction-time constraint on what you
// lift, not a runtime check.
package vexerror
