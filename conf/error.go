package conf

import (
	"errors"
	"log/slog"
	"strings"
)

// Predefined errors (sentinel values). Each sentinel identifies one failure
// kind in the resolution taxonomy; raise sites enrich them with attributes
// via [Error.With] and causes via [Error.Wrap].
var (
	ErrInvalidDocument    = NewError("invalid document")
	ErrInvalidPath        = NewError("invalid path expression")
	ErrKeyNotFound        = NewError("key not found")
	ErrAmbiguousKey       = NewError("ambiguous key")
	ErrCircularDependency = NewError("circular dependency")
	ErrShellCommand       = NewError("shell command failed")
	ErrEnvVarMissing      = NewError("environment variable missing or empty")
	ErrParentResolution   = NewError("nested reference failed")
	ErrJoinNotArray       = NewError("join target is not an array of scalars")
	ErrMaxDepthExceeded   = NewError("maximum resolution depth exceeded")
)

// Error represents an error with optional structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

// NewError creates a new Error with a message.
func NewError(msg string) *Error {
	return &Error{msg: msg}
}

// WrapError wraps a standard error into an Error.
func WrapError(err error) *Error {
	ee := &Error{}
	if errors.As(err, &ee) {
		return ee
	}

	return &Error{err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	// Build error message using the first available format,
	// depending on which fields are set:
	//
	//   1. "<msg>: <err>" // base and wrapped error both set
	//   2. "<msg>"        // wrapped error is nil
	//   3. "<err>"        // base error message is empty
	//   4. ""             // no fields are set
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the same kind of error. Two Errors share a
// kind when they originate from the same sentinel message, so sentinels
// remain matchable after [Error.With] and [Error.Wrap] derive new instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+2)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// CycleError carries the diagnostic detail of a reference cycle: the chain of
// keys in discovery order and the back-reference that closed the loop. It is
// always wrapped by [ErrCircularDependency].
type CycleError struct {
	Chain []string // Keys in discovery order, outermost first
	Back  string   // The key whose re-entry closed the loop
}

// Error implements the error interface, rendering the full chain plus the
// closing back-reference.
func (e *CycleError) Error() string {
	var buf strings.Builder

	for _, key := range e.Chain {
		buf.WriteString(key)
		buf.WriteString(" -> ")
	}

	buf.WriteString(e.Back)

	return buf.String()
}

// LogValue implements slog.LogValuer.
func (e *CycleError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("chain", e.Chain),
		slog.String("back", e.Back),
	)
}
