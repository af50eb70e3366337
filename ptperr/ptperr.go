// Package ptperr defines the error taxonomy shared by every layer of the
// driver: the binary codec, the Fujifilm value types, the PTP transaction
// engine and the camera facade all report failures through the same Kind
// values so a caller can use errors.As/errors.Is regardless of which layer
// raised the error.
package ptperr

import "fmt"

// Kind classifies why an operation failed.
type Kind int

const (
	// Transport indicates a USB read/write failure.
	Transport Kind = iota
	// Malformed indicates residual bytes after a top-level decode, an
	// unexpected EOF, or invalid UTF-16.
	Malformed
	// InvalidValue indicates an integer that doesn't map to a declared
	// variant, or an out-of-range/misaligned numeric newtype.
	InvalidValue
	// Response indicates a PTP response code other than Ok.
	Response
	// Unsupported indicates a capability not implemented for the
	// connected camera model.
	Unsupported
	// Parse indicates a user-supplied string didn't match any alias.
	Parse
)

func (k Kind) String() string {
	switch k {
	case Transport:
		return "transport"
	case Malformed:
		return "malformed"
	case InvalidValue:
		return "invalid value"
	case Response:
		return "response"
	case Unsupported:
		return "unsupported"
	case Parse:
		return "parse"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every package in this
// module. Code carries the PTP response/property code when Kind is
// Response, and is zero otherwise.
type Error struct {
	Kind  Kind
	Msg   string
	Code  uint16
	Cause error
}

func (e *Error) Error() string {
	s := e.Kind.String() + ": " + e.Msg
	if e.Cause != nil {
		s += ": " + e.Cause.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// New builds an *Error with no wrapped cause.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Newf builds an *Error from fmt.Sprintf-style arguments.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap builds an *Error that carries cause as its Unwrap() target.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{Kind: kind, Msg: msg, Cause: cause}
}

// WithCode returns a copy of e with Code set, used for Response errors that
// need to carry the PTP response code for diagnostics.
func (e *Error) WithCode(code uint16) *Error {
	c := *e
	c.Code = code
	return &c
}
