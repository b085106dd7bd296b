package adapter

import "fmt"

// FailureError wraps any field-level parse failure the adapter hits while
// building a typed Header. The wrapped Cause is a *codec.BadHexError,
// *codec.BadFieldWidthError, or *codec.IntOverflowError, or, in strict
// mode, a plain error reporting that a field the era requires is absent.
type FailureError struct {
	Field string
	Cause error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("adapter: field %q: %v", e.Field, e.Cause)
}

func (e *FailureError) Unwrap() error { return e.Cause }
