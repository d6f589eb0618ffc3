package errors

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindFormat         Kind = "format"          // signature is not a GIF version string
	KindTruncated      Kind = "truncated_data"  // read would run past the buffer
	KindMalformedBlock Kind = "malformed_block" // introducer, label or size constant mismatch
)

// Sentinels for errors.Is. They match any error of the same Kind.
var (
	ErrFormat         = &Error{Kind: KindFormat}
	ErrTruncated      = &Error{Kind: KindTruncated}
	ErrMalformedBlock = &Error{Kind: KindMalformedBlock}
)

// Error is the structured error type returned by the GIF parser.
//
// Offset is the absolute buffer offset the failing read started at. For
// truncations Requested and Length describe the read that did not fit.
type Error struct {
	Value     any
	Cause     error
	Kind      Kind
	Block     string
	Detail    string
	Offset    int
	Requested int
	Length    int
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("gif: ")
	b.WriteString(string(e.Kind))

	if e.Block != "" {
		b.WriteString(" in ")
		b.WriteString(e.Block)
	}

	b.WriteString(" at offset ")
	b.WriteString(strconv.Itoa(e.Offset))

	if e.Kind == KindTruncated {
		fmt.Fprintf(&b, ": need %d bytes, buffer has %d (%d missing)", e.Requested, e.Length, e.Missing())
	}

	if e.Detail != "" {
		if e.Kind == KindTruncated {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
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

// Is reports whether target matches this error. Kinds must be equal; the
// block name is compared only when the target sets one.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if e.Kind != t.Kind {
		return false
	}
	return t.Block == "" || t.Block == e.Block
}

// Missing returns how many bytes past the end of the buffer a truncated read
// wanted. It is zero for other kinds.
func (e *Error) Missing() int {
	if e.Kind != KindTruncated {
		return 0
	}
	n := e.Offset + e.Requested - e.Length
	if n < 0 {
		return 0
	}
	return n
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(kind Kind) *Builder {
	return &Builder{
		err: Error{
			Kind: kind,
		},
	}
}

// Block sets the name of the block being decoded
func (b *Builder) Block(name string) *Builder {
	b.err.Block = name
	return b
}

// Offset sets the absolute buffer offset
func (b *Builder) Offset(off int) *Builder {
	b.err.Offset = off
	return b
}

// Span records a read of n bytes against a buffer of the given length
func (b *Builder) Span(n, length int) *Builder {
	b.err.Requested = n
	b.err.Length = length
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

// Format creates an unrecognized-signature error
func Format(signature []byte) *Error {
	return &Error{
		Kind:   KindFormat,
		Block:  "header",
		Detail: fmt.Sprintf("not a GIF (signature %q)", signature),
		Value:  string(signature),
	}
}

// Truncated creates an error for a read of n bytes at off that does not fit
// in a buffer of the given length
func Truncated(off, n, length int) *Error {
	return &Error{
		Kind:      KindTruncated,
		Offset:    off,
		Requested: n,
		Length:    length,
	}
}

// MalformedBlock creates an error for a constant that did not match
func MalformedBlock(block string, off int, want, got byte) *Error {
	return &Error{
		Kind:   KindMalformedBlock,
		Block:  block,
		Offset: off,
		Detail: fmt.Sprintf("expected 0x%02x, got 0x%02x", want, got),
		Value:  got,
	}
}

// InBlock attaches a block name to err when it is an *Error without one.
// Other errors are returned unchanged.
func InBlock(err error, block string) error {
	if e, ok := err.(*Error); ok && e.Block == "" {
		e.Block = block
	}
	return err
}

// Wrap wraps an existing error with additional context
func Wrap(kind Kind, cause error, detail string) *Error {
	return &Error{
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
