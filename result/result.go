// package result defines the uniform success/error envelope handed to
// callers and the pure classifiers that build its error half from a transport
// outcome. nothing here performs I/O; the package is safe to call from any
// goroutine at any time.
package result

import "fmt"

// Error is the structured, user-facing-safe error half of a service result.
// Code is a stable machine-readable category, Message is developer-facing
// diagnostics and is never shown verbatim to end users. an Error exclusively
// owns its InnerError; chains are finite and immutable once built.
type Error struct {
	Code       string `json:"code,omitempty"`
	Message    string `json:"message,omitempty"`
	Details    any    `json:"details,omitempty"`
	InnerError *Error `json:"innerError,omitempty"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Message == "" {
		return e.Code
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	if e == nil || e.InnerError == nil {
		return nil
	}
	return e.InnerError
}

// Base is a service result with no value half. classifiers produce it and
// callers merge it into a typed [Result].
type Base struct {
	Error *Error `json:"error,omitempty"`
}

// Result is the envelope returned to callers: when Error is set, Value is
// not meaningful even if present.
type Result[T any] struct {
	Value T      `json:"value,omitempty"`
	Error *Error `json:"error,omitempty"`
}
