// downcast.go — exact-identity downcasting and ordered pattern dispatch.
//
// Scope:
//   - Downcast recovers a typed reference from a chain position by exact
//     TypeID equality. It never traverses INTO a concrete error's own
//     unwrap graph (that is errors.As's job); identity here means "this is
//     the very type that was lifted".
//   - Dispatch evaluates caller-supplied (type, handler) cases in
//     declaration order and fires the FIRST match. First-match-wins, not
//     best-match: order the cases accordingly.
package vexerror

import "reflect"

// recordTypeID lets On[*Record]/Downcast[*Record] match the chain itself,
// mirroring a dispatch arm for "still our wrapper, not a foreign type".
var recordTypeID = typeIDFor(reflect.TypeOf((*Record)(nil)))

// Downcast attempts to recover a concrete T from err. Positions are tried
// outermost to innermost: err itself first, then each record's lifted
// value. The match requires exact type identity; interface targets never
// match. A failed match returns (zero, false), never an error.
func Downcast[T error](err error) (T, bool) {
	var zero T
	if err == nil {
		return zero, false
	}
	want := TypeIDOf[T]()
	if want == "" {
		return zero, false
	}
	rec, ok := err.(*Record)
	if !ok {
		if typeIDOfErr(err) == want {
			return err.(T), true
		}
		return zero, false
	}
	if want == recordTypeID {
		return any(rec).(T), true
	}
	for ; rec != nil; rec = rec.cause {
		if rec.value != nil && rec.value.id == want {
			return rec.value.err.(T), true
		}
	}
	return zero, false
}

// Case is one arm of a Dispatch. Build with On or Otherwise.
type Case struct {
	try func(error) bool
}

// On builds a dispatch arm that fires handler when err downcasts exactly
// to T.
func On[T error](handler func(T)) Case {
	return Case{try: func(err error) bool {
		v, ok := Downcast[T](err)
		if !ok {
			return false
		}
		if handler != nil {
			handler(v)
		}
		return true
	}}
}

// Otherwise builds the default arm: it always fires. Place it last; any
// arm after it is unreachable.
func Otherwise(handler func(error)) Case {
	return Case{try: func(err error) bool {
		if handler != nil {
			handler(err)
		}
		return true
	}}
}

// Dispatch evaluates cases in declaration order against err and invokes
// the handler of the FIRST case whose downcast succeeds. It reports
// whether any arm fired; with a trailing Otherwise that is always true
// for non-nil err. Dispatch(nil, ...) fires nothing.
func Dispatch(err error, cases ...Case) bool {
	if err == nil {
		return false
	}
	for _, c := range cases {
		if c.try != nil && c.try(err) {
			return true
		}
	}
	return false
}
