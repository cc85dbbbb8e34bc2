package wire

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSyntax is returned when the input is not valid JSON.
	ErrSyntax = errors.New("invalid JSON")
	// ErrShape is returned when a JSON value has the wrong type for its field.
	ErrShape = errors.New("unexpected JSON value")
	// ErrRange is returned when a number does not fit its declared width.
	ErrRange = errors.New("value out of range")
	// ErrBase64 is returned for malformed base64 payloads.
	ErrBase64 = errors.New("invalid base64")
	// ErrNoAlternative is returned when no union alternative accepts a value.
	ErrNoAlternative = errors.New("no union alternative matches")
	// ErrNilValue is returned when encoding a nil element or union alternative.
	ErrNilValue = errors.New("nil value")
)

// FieldError locates a codec failure within a record.
//
// Path is dotted for nested records and indexed for sequence elements and map
// entries, e.g. `replication.replicas[1].location` or `versionAliases["prod"]`.
type FieldError struct {
	Path string
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// withPath prefixes err's field path with segment.
func withPath(segment string, err error) error {
	if fe, ok := err.(*FieldError); ok {
		if strings.HasPrefix(fe.Path, "[") {
			return &FieldError{Path: segment + fe.Path, Err: fe.Err}
		}
		return &FieldError{Path: segment + "." + fe.Path, Err: fe.Err}
	}
	return &FieldError{Path: segment, Err: err}
}

func indexSegment(i int) string { return fmt.Sprintf("[%d]", i) }

func keySegment(k string) string { return fmt.Sprintf("[%q]", k) }
