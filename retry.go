// retry.go — bounded re-invocation helpers that consult error identity.
//
// Scope:
//   - No backoff, no jitter, no budgets: total invocations are bounded by
//     1 + maxRetries and earlier failures are discarded, not chained.
//     Backoff policy belongs to higher layers.
package vexerror

// Retry invokes op once and, on failure, up to maxRetries additional
// times. It returns the first success or the LAST failure; earlier
// failures are discarded. op receives the 1-based attempt number.
// A maxRetries <= 0 means a single invocation.
func Retry(op func(attempt int) error, maxRetries int) error {
	if op == nil {
		return nil
	}
	err := op(1)
	for attempt := 2; err != nil && attempt <= maxRetries+1; attempt++ {
		err = op(attempt)
	}
	return err
}

// RetryOn is Retry restricted to failures whose root cause is exactly of
// type T: a failure of any other type is returned immediately, with no
// further attempts.
func RetryOn[T error](op func(attempt int) error, maxRetries int) error {
	if op == nil {
		return nil
	}
	err := op(1)
	for attempt := 2; err != nil && attempt <= maxRetries+1; attempt++ {
		if !ErrIs[T](err) {
			return err
		}
		err = op(attempt)
	}
	return err
}
