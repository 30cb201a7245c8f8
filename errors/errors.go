package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in a lifecycle the error occurred
type Phase string

const (
	PhaseAcquire Phase = "acquire" // taking ownership of a value
	PhaseRelease Phase = "release" // relinquishing ownership
	PhaseIO      Phase = "io"      // scoped resource operations
	PhaseRuntime Phase = "runtime" // demo sequencing
)

// Kind categorizes the error
type Kind string

const (
	KindIOFailure Kind = "io_failure" // underlying resource unavailable
	KindNotOpen   Kind = "not_open"   // operation requires the Open state
	KindClosed    Kind = "closed"     // resource already closed
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// IOFailure creates a resource-acquisition or I/O failure error
func IOFailure(detail string, cause error) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindIOFailure,
		Detail: detail,
		Cause:  cause,
	}
}

// NotOpen creates an error for operations requiring the Open state
func NotOpen(detail string) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindNotOpen,
		Detail: detail,
	}
}

// Closed creates an error for operations on a closed resource
func Closed(detail string) *Error {
	return &Error{
		Phase:  PhaseIO,
		Kind:   KindClosed,
		Detail: detail,
	}
}

// Wrap wraps an existing error with lifecycle context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
