package transport

import (
	"errors"
	"fmt"
)

// Kind classifies a transport failure.
type Kind uint8

const (
	// KindUnknown is the default, unclassified failure.
	KindUnknown Kind = iota
	// KindNotOpen means no live connection: every candidate address failed
	// to connect, or a write was attempted without a handle.
	KindNotOpen
	// KindAlreadyOpen is reserved; no operation in this package raises it.
	KindAlreadyOpen
	// KindTimedOut means a configured socket timeout elapsed during a read
	// or write.
	KindTimedOut
	// KindEndOfFile means the peer closed the stream or an I/O call moved
	// zero bytes before the request was satisfied.
	KindEndOfFile
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindUnknown:
		return "UNKNOWN"
	case KindNotOpen:
		return "NOT_OPEN"
	case KindAlreadyOpen:
		return "ALREADY_OPEN"
	case KindTimedOut:
		return "TIMED_OUT"
	case KindEndOfFile:
		return "END_OF_FILE"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Error is the single error type raised by transports. It is immutable once
// constructed.
type Error struct {
	Kind    Kind
	Message string
	// Err is the underlying cause, if any.
	Err error
}

// NewError creates an Error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError creates an Error of the given kind caused by err.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = "transport error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s (%s): %v", msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s (%s)", msg, e.Kind)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the package sentinels can be
// used with errors.Is regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUnknown     = &Error{Kind: KindUnknown}
	ErrNotOpen     = &Error{Kind: KindNotOpen}
	ErrAlreadyOpen = &Error{Kind: KindAlreadyOpen}
	ErrTimedOut    = &Error{Kind: KindTimedOut}
	ErrEndOfFile   = &Error{Kind: KindEndOfFile}
)

// KindOf returns the kind of the first *Error in err's chain, or
// KindUnknown when there is none.
func KindOf(err error) Kind {
	var te *Error
	if errors.As(err, &te) {
		return te.Kind
	}
	return KindUnknown
}
