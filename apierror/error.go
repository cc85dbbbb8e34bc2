package apierror

import (
	"errors"
	"fmt"
	"io"
)

// maxChainDepth bounds cause-chain walks against cyclic or runaway graphs.
const maxChainDepth = 1 << 10

// Error is the envelope wrapping every failure surfaced by the client core.
//
// Error values are immutable once constructed and safe to share.
type Error struct {
	kind  Kind
	cause error
}

// New wraps cause under the given kind.
func New(kind Kind, cause error) *Error {
	return &Error{kind: kind, cause: cause}
}

// Serialization wraps cause as a KindSerialization error.
func Serialization(cause error) *Error { return New(KindSerialization, cause) }

// Authentication wraps cause as a KindAuthentication error.
func Authentication(cause error) *Error { return New(KindAuthentication, cause) }

// Transport wraps cause as a KindTransport error.
func Transport(cause error) *Error { return New(KindTransport, cause) }

// RemoteProtocol wraps cause as a KindRemoteProtocol error.
func RemoteProtocol(cause error) *Error { return New(KindRemoteProtocol, cause) }

// Other wraps cause as a KindOther error.
func Other(cause error) *Error { return New(KindOther, cause) }

// Kind returns the top-level classification. The classification of any
// nested *Error in the cause chain is not consulted.
func (e *Error) Kind() Kind { return e.kind }

// Error renders "<kind description>: <cause>".
func (e *Error) Error() string {
	if e.cause == nil {
		return e.kind.String()
	}
	return e.kind.String() + ": " + e.cause.Error()
}

// Unwrap returns the direct cause.
func (e *Error) Unwrap() error { return e.cause }

// Format implements fmt.Formatter. %+v renders each link of the cause chain
// on its own line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = fmt.Fprintf(s, "kind=%s", e.kind.Name())
			var next error = e.cause
			for depth := 0; next != nil && depth < maxChainDepth; depth++ {
				if inner, ok := next.(*Error); ok {
					_, _ = fmt.Fprintf(s, "\ncause: kind=%s", inner.kind.Name())
					next = inner.cause
					continue
				}
				_, _ = fmt.Fprintf(s, "\ncause: %+v", next)
				break
			}
			return
		}
		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	}
}

// AsInner walks the cause chain of e, starting at its direct cause, and
// returns the first link whose dynamic type is T.
//
// Only the Unwrap capability is used to descend, so links need no knowledge
// of each other's concrete types. Multi-errors (Unwrap() []error) are searched
// depth first in order.
func AsInner[T any](e *Error) (T, bool) {
	var zero T
	if e == nil || e.cause == nil {
		return zero, false
	}
	return find[T](e.cause, 0)
}

func find[T any](err error, depth int) (T, bool) {
	var zero T
	for err != nil && depth < maxChainDepth {
		if t, ok := err.(T); ok {
			return t, true
		}
		switch u := err.(type) {
		case interface{ Unwrap() error }:
			err = u.Unwrap()
		case interface{ Unwrap() []error }:
			for _, child := range u.Unwrap() {
				if t, ok := find[T](child, depth+1); ok {
					return t, true
				}
			}
			return zero, false
		default:
			return zero, false
		}
		depth++
	}
	return zero, false
}

// KindOf returns the Kind of the outermost *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.kind, true
	}
	return KindOther, false
}

// IsKind reports whether the outermost *Error in err's chain has kind k.
func IsKind(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// Classify returns an *Error for err. An *Error is returned unchanged. When
// err wraps an *Error deeper in its chain, the result keeps that inner kind
// and wraps err whole, so the outer context stays in the cause chain. Any
// other err is wrapped under kind. A nil err yields nil.
func Classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	var inner *Error
	if errors.As(err, &inner) {
		return New(inner.kind, err)
	}
	return New(kind, err)
}
