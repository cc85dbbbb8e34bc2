package wire

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/hupe1980/secretmanager/wkt"
)

// Alternative is one shape of a union whose Go representation is the
// interface type U.
type Alternative[U any] struct {
	name string
	// filter is the JSON value type this alternative can decode.
	filter gjson.Type
	// match reports whether the alternative knows every key of an object
	// value, and how many of its keys it knows. Non-object alternatives
	// always match exactly.
	match func(gjson.Result) (exact bool, known int)
	// encode reports false when u holds a different alternative.
	encode func(u U) ([]byte, bool, error)
	decode func(gjson.Result) (U, error)
}

// Name returns the schema name of the alternative.
func (a Alternative[U]) Name() string { return a.name }

// MessageVariant declares a record-shaped alternative. *T must implement U;
// MessageVariant panics otherwise, since that is a schema definition error.
func MessageVariant[U any, T any, PT messagePtr[T]](name string) Alternative[U] {
	if _, ok := any(PT(new(T))).(U); !ok {
		panic(fmt.Sprintf("wire: %T is not an alternative of the union type of %q", PT(nil), name))
	}
	return Alternative[U]{
		name:   name,
		filter: gjson.JSON,
		match: func(r gjson.Result) (bool, int) {
			if !r.IsObject() {
				return false, -1
			}
			known, unknown := keyMatch(r, PT(new(T)))
			return unknown == 0, known
		},
		encode: func(u U) ([]byte, bool, error) {
			m, ok := any(u).(PT)
			if !ok {
				return nil, false, nil
			}
			if m == nil {
				return nil, true, fmt.Errorf("%w: alternative %s", ErrNilValue, name)
			}
			b, err := encodeMessage(nil, m)
			return b, true, err
		},
		decode: func(r gjson.Result) (U, error) {
			m := PT(new(T))
			if err := decodeMessage(r, m); err != nil {
				var zero U
				return zero, err
			}
			return any(m).(U), nil
		},
	}
}

// TimestampVariant declares a timestamp-shaped alternative. wrap builds the
// union value; unwrap reports whether a union value holds this alternative.
func TimestampVariant[U any](name string, wrap func(wkt.Timestamp) U, unwrap func(U) (wkt.Timestamp, bool)) Alternative[U] {
	return scalarVariant(name, gjson.String, timestampScalar, wrap, unwrap)
}

// DurationVariant declares a duration-shaped alternative.
func DurationVariant[U any](name string, wrap func(wkt.Duration) U, unwrap func(U) (wkt.Duration, bool)) Alternative[U] {
	return scalarVariant(name, gjson.String, durationScalar, wrap, unwrap)
}

// StringVariant declares a text-shaped alternative.
func StringVariant[U any](name string, wrap func(string) U, unwrap func(U) (string, bool)) Alternative[U] {
	return scalarVariant(name, gjson.String, stringScalar, wrap, unwrap)
}

func scalarVariant[U any, T any](name string, filter gjson.Type, c scalar[T], wrap func(T) U, unwrap func(U) (T, bool)) Alternative[U] {
	return Alternative[U]{
		name:   name,
		filter: filter,
		match:  func(gjson.Result) (bool, int) { return true, 0 },
		encode: func(u U) ([]byte, bool, error) {
			v, ok := unwrap(u)
			if !ok {
				return nil, false, nil
			}
			b, err := c.encode(v)
			return b, true, err
		},
		decode: func(r gjson.Result) (U, error) {
			v, err := c.decode(r)
			if err != nil {
				var zero U
				return zero, err
			}
			return wrap(v), nil
		},
	}
}

// Union binds a union field stored in the interface value *p. A nil interface
// is absent and omitted.
//
// The active alternative is written as its own JSON value with no tag. On
// decode the alternative is chosen by shape:
//
//  1. Alternatives whose JSON type matches and, for records, whose fields
//     cover every key of the object are tried in declaration order. The first
//     one that decodes without error wins. When two alternatives accept the
//     same value, the first declared always wins; this is inherent to an
//     untagged encoding and is not disambiguated further.
//  2. When no alternative covers every key (the value carries fields newer
//     than this schema), the alternative recognizing the most keys wins, ties
//     going to the first declared.
//
// If no alternative accepts the value the error wraps ErrNoAlternative. When
// an alternative claimed the value and failed on one of its own fields, the
// error is a *FieldError carrying that field's path.
func Union[U any](name string, p *U, alts ...Alternative[U]) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			if any(*p) == nil {
				return nil, false, nil
			}
			for _, alt := range alts {
				b, ok, err := alt.encode(*p)
				if !ok {
					continue
				}
				return b, err == nil, err
			}
			return nil, false, fmt.Errorf("%w: %T is not declared by the union", ErrNoAlternative, *p)
		},
		func(r gjson.Result) error {
			u, err := resolve(r, alts)
			if err != nil {
				return err
			}
			*p = u
			return nil
		},
		func() {
			var zero U
			*p = zero
		},
	)
}

func resolve[U any](r gjson.Result, alts []Alternative[U]) (U, error) {
	var zero U

	var firstErr error
	firstAlt := ""
	for _, alt := range alts {
		if alt.filter != r.Type {
			continue
		}
		if exact, _ := alt.match(r); !exact {
			continue
		}
		u, err := alt.decode(r)
		if err == nil {
			return u, nil
		}
		if firstErr == nil {
			firstErr, firstAlt = err, alt.name
		}
	}
	if firstErr != nil {
		// Keep the failing alternative's field path so callers see one
		// joined path, e.g. replication.replicas[0].location.
		if fe, ok := firstErr.(*FieldError); ok {
			return zero, &FieldError{
				Path: fe.Path,
				Err:  fmt.Errorf("%w (%s) as %s: %w", ErrNoAlternative, alternativeNames(alts), firstAlt, fe.Err),
			}
		}
		return zero, fmt.Errorf("%w (%s) as %s: %w", ErrNoAlternative, alternativeNames(alts), firstAlt, firstErr)
	}

	best := -1
	var bestValue U
	for _, alt := range alts {
		if alt.filter != r.Type {
			continue
		}
		_, known := alt.match(r)
		if known <= best {
			continue
		}
		u, err := alt.decode(r)
		if err != nil {
			continue
		}
		best, bestValue = known, u
	}
	if best >= 0 {
		return bestValue, nil
	}
	return zero, fmt.Errorf("%w (%s): got %s", ErrNoAlternative, alternativeNames(alts), describe(r))
}

func alternativeNames[U any](alts []Alternative[U]) string {
	names := make([]string, len(alts))
	for i, alt := range alts {
		names[i] = alt.name
	}
	return strings.Join(names, ", ")
}
