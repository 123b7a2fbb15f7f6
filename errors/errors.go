package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which pipeline stage raised the error
type Phase string

const (
	PhaseDeserialize Phase = "deserialize" // binary decoding
	PhaseVerify      Phase = "verify"      // structural and type verification
	PhaseLink        Phase = "link"        // cross-module resolution
	PhaseExecute     Phase = "execute"     // bytecode execution
)

// Kind categorizes the error
type Kind string

const (
	KindOutOfBounds   Kind = "out_of_bounds"
	KindArityMismatch Kind = "arity_mismatch"
	KindNotFound      Kind = "not_found"
	KindInvalidData   Kind = "invalid_data"
	KindMalformed     Kind = "malformed"
	KindOverflow      Kind = "overflow"
	KindDuplicate     Kind = "duplicate"
	KindUnsupported   Kind = "unsupported"
)

// Error is the structured error type used throughout the library
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Module string
	Pool   string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Pool != "" {
		b.WriteString(" in ")
		b.WriteString(e.Pool)
	}

	if e.Module != "" {
		b.WriteString(" (module ")
		b.WriteString(e.Module)
		b.WriteByte(')')
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

// Pool names the index pool the error refers to
func (b *Builder) Pool(pool string) *Builder {
	b.err.Pool = pool
	return b
}

// Module names the module the error refers to
func (b *Builder) Module(id string) *Builder {
	b.err.Module = id
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
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

// OutOfBounds creates an out of bounds error for an index pool
func OutOfBounds(phase Phase, pool string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Pool:   pool,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// ArityMismatch creates a type-argument arity mismatch error
func ArityMismatch(phase Phase, want, got int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArityMismatch,
		Detail: fmt.Sprintf("expected %d type arguments, got %d", want, got),
		Value:  got,
	}
}

// NotFound creates a not found error
func NotFound(phase Phase, pool, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Pool:   pool,
		Detail: fmt.Sprintf("%s not found", what),
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, pool, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Pool:   pool,
		Detail: detail,
	}
}

// Malformed creates a malformed module error
func Malformed(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindMalformed,
		Detail: detail,
	}
}

// Overflow creates an overflow error for a pool that exceeded its index width
func Overflow(phase Phase, pool string, size int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Pool:   pool,
		Detail: fmt.Sprintf("pool size %d exceeds index range", size),
		Value:  size,
	}
}

// Duplicate creates a duplicate entry error
func Duplicate(phase Phase, pool, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindDuplicate,
		Pool:   pool,
		Detail: fmt.Sprintf("duplicate entry %q", name),
	}
}

// Unsupported creates an unsupported operation error
func Unsupported(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindUnsupported,
		Detail: what,
	}
}
