package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseDecode   Phase = "decode"   // DPI buffer to value
	PhaseEncode   Phase = "encode"   // value to DPI buffer
	PhaseOperate  Phase = "operate"  // bitwise operators and comparisons
	PhaseValidate Phase = "validate" // input validation
)

// Kind categorizes the error
type Kind string

const (
	KindWidthMismatch Kind = "width_mismatch"
	KindInvalidInput  Kind = "invalid_input"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Width  uint // logical bit-width involved, 0 when not applicable
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Width != 0 {
		b.WriteString(" at width ")
		b.WriteString(strconv.FormatUint(uint64(e.Width), 10))
	}

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

// Width sets the logical bit-width involved
func (b *Builder) Width(w uint) *Builder {
	b.err.Width = w
	return b
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

// WidthMismatch creates a width mismatch error
func WidthMismatch(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthMismatch,
		Detail: fmt.Sprintf(format, args...),
	}
}

// BufferLength creates a width mismatch error for a wrongly sized DPI buffer
func BufferLength(phase Phase, width uint, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthMismatch,
		Width:  width,
		Detail: fmt.Sprintf("buffer holds %d word pairs, need %d", got, want),
	}
}

// WidthOverflow creates a width mismatch error for a width beyond storage capacity
func WidthOverflow(phase Phase, width, capacity uint) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindWidthMismatch,
		Width:  width,
		Detail: fmt.Sprintf("width %d exceeds %d-bit storage", width, capacity),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, format string, args ...any) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: fmt.Sprintf(format, args...),
	}
}
