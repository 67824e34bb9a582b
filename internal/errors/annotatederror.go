// Package errors provides annotated errors that carry slog attributes and the
// source location where the error was created. It re-exports the standard
// library helpers so callers only need a single errors import.
package errors

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime"
	"strings"
)

// annotatedError is an error with slog annotations and a source location.
type annotatedError struct {
	msg         string
	err         error
	annotations []slog.Attr
	source      string
}

// NewSentinel creates an error meant to be used as a sentinel value compared
// with [Is].
func NewSentinel(msg string) error {
	return &annotatedError{
		msg:         msg,
		err:         nil,
		annotations: nil,
		source:      callerSource(),
	}
}

// Wrap annotates err with a message and optional slog attributes. The
// attributes are surfaced by [SlogError] when the error is logged.
func Wrap(err error, msg string, attrs ...slog.Attr) error {
	return &annotatedError{
		msg:         msg,
		err:         err,
		annotations: attrs,
		source:      callerSource(),
	}
}

// DecoratePanic converts a recovered panic value into an error whose source
// points at the line that panicked, not at the recovery site. Returns nil if
// the recovered value is nil.
func DecoratePanic(recovered any) error {
	if recovered == nil {
		return nil
	}
	return &annotatedError{
		msg:         fmt.Sprintf("panic: %v", recovered),
		err:         nil,
		annotations: nil,
		source:      panicSource(),
	}
}

func (e *annotatedError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *annotatedError) Unwrap() error {
	return e.err
}

// callerSource resolves the file:line of the first caller outside this file.
func callerSource() string {
	var pcs [8]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and callerSource.
	frames := runtime.CallersFrames(pcs[:n])
	for {
		frame, more := frames.Next()
		if !strings.HasSuffix(frame.File, "annotatederror.go") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if !more {
			return "unknown"
		}
	}
}

// panicSource resolves the file:line where the panic being recovered was
// raised. While a deferred function runs during a panic, the stack reads
// deferred function, then the runtime panic machinery, then the panic site:
// the first non-runtime frame after runtime.gopanic is the origin. Runtime
// panics (nil dereference and friends) insert extra runtime frames between
// gopanic and the origin, hence the prefix check rather than a fixed offset.
func panicSource() string {
	var pcs [32]uintptr
	n := runtime.Callers(2, pcs[:]) //nolint:mnd // skip runtime.Callers and panicSource.
	frames := runtime.CallersFrames(pcs[:n])
	seenPanic := false
	for {
		frame, more := frames.Next()
		if seenPanic && !strings.HasPrefix(frame.Function, "runtime.") {
			return fmt.Sprintf("%s:%d", filepath.Base(frame.File), frame.Line)
		}
		if frame.Function == "runtime.gopanic" {
			seenPanic = true
		}
		if !more {
			return "unknown"
		}
	}
}

// SlogError converts an error into a [slog.Attr] including the error message,
// the source location where it was created, and any annotations collected
// along the wrapping chain.
func SlogError(err error) slog.Attr {
	if err == nil {
		return slog.Group("error", slog.String("message", "<nil>"))
	}

	attrs := []any{slog.String("message", err.Error())}

	var annotated *annotatedError
	if errors.As(err, &annotated) {
		attrs = append(attrs, slog.String("source", annotated.source))
	}

	var annotations []any
	for e := err; e != nil; e = errors.Unwrap(e) {
		var ae *annotatedError
		if errors.As(e, &ae) {
			for _, attr := range ae.annotations {
				annotations = append(annotations, attr)
			}
			e = ae
		}
	}
	if len(annotations) > 0 {
		attrs = append(attrs, slog.Group("annotations", annotations...))
	}

	return slog.Group("error", attrs...)
}

// New re-exports [errors.New].
func New(msg string) error {
	//nolint:err113 // this is a thin wrapper around the standard library.
	return errors.New(msg)
}

// Is re-exports [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As re-exports [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Unwrap re-exports [errors.Unwrap].
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// Join re-exports [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}
