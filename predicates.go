// predicates.go — minimal classification predicates over chains.
//
// Scope:
//   - Zero-policy helpers that answer "what failed?" questions by type
//     identity, the open-ended replacement for a closed kind enumeration.
//
// Out of scope (by design):
//   - HTTP/status mapping, retry backoff policy, logging.
package vexerror

// ErrIs reports whether err denotes failure whose ROOT cause's concrete
// type is exactly T. Context records wrapped above the root never change
// the answer; identity is judged where the chain was born. This is the
// check RetryOn consults between attempts.
func ErrIs[T error](err error) bool {
	if err == nil {
		return false
	}
	_, ok := Downcast[T](Root(err))
	return ok
}

// HasType reports whether ANY position of err's chain (err itself or any
// record's lifted value) is exactly of type T. Broader than ErrIs, which
// looks only at the root.
func HasType[T error](err error) bool {
	_, ok := Downcast[T](err)
	return ok
}

// IsChain reports whether err is a chain built by this package.
func IsChain(err error) bool {
	_, ok := err.(*Record)
	return ok
}
