package wire

import (
	"slices"

	"github.com/tidwall/gjson"

	"github.com/hupe1980/secretmanager/wkt"
)

// Message is a resource record known to the record codec.
type Message interface {
	// WireFields returns the record's fields in schema order, bound to the
	// receiver's storage.
	WireFields() []Field
}

// messagePtr constrains PT to be *T implementing Message.
type messagePtr[T any] interface {
	*T
	Message
}

// Field binds one schema field to the storage of a record member.
type Field struct {
	name     string
	jsonName string

	// encode returns the JSON value and whether the field is present.
	encode func() ([]byte, bool, error)
	// decode stores a non-null JSON value.
	decode func(gjson.Result) error
	// reset stores the field's zero value.
	reset func()
}

func newField(name string, encode func() ([]byte, bool, error), decode func(gjson.Result) error, reset func()) Field {
	return Field{name: name, jsonName: JSONName(name), encode: encode, decode: decode, reset: reset}
}

// Name returns the schema (snake_case) name.
func (f Field) Name() string { return f.name }

// JSONName returns the wire (lowerCamelCase) name.
func (f Field) JSONName() string { return f.jsonName }

func scalarField[T any](name string, p *T, c scalar[T]) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			b, err := c.encode(*p)
			return b, true, err
		},
		func(r gjson.Result) error {
			v, err := c.decode(r)
			if err != nil {
				return err
			}
			*p = v
			return nil
		},
		func() {
			var zero T
			*p = zero
		},
	)
}

func optionalField[T any](name string, p **T, c scalar[T]) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			if *p == nil {
				return nil, false, nil
			}
			b, err := c.encode(**p)
			return b, true, err
		},
		func(r gjson.Result) error {
			v, err := c.decode(r)
			if err != nil {
				return err
			}
			*p = &v
			return nil
		},
		func() { *p = nil },
	)
}

func repeatedField[T any](name string, p *[]T, encode func(*T) ([]byte, error), decode func(gjson.Result) (T, error)) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			if *p == nil {
				return nil, false, nil
			}
			b := []byte{'['}
			for i := range *p {
				if i > 0 {
					b = append(b, ',')
				}
				elem, err := encode(&(*p)[i])
				if err != nil {
					return nil, false, withPath(indexSegment(i), err)
				}
				b = append(b, elem...)
			}
			return append(b, ']'), true, nil
		},
		func(r gjson.Result) error {
			if !r.IsArray() {
				return shapeError("array", r)
			}
			out := make([]T, 0)
			var err error
			i := 0
			r.ForEach(func(_, elem gjson.Result) bool {
				if elem.Type == gjson.Null {
					err = withPath(indexSegment(i), shapeError("element", elem))
					return false
				}
				v, e := decode(elem)
				if e != nil {
					err = withPath(indexSegment(i), e)
					return false
				}
				out = append(out, v)
				i++
				return true
			})
			if err != nil {
				return err
			}
			*p = out
			return nil
		},
		func() { *p = nil },
	)
}

func mapField[V any](name string, p *map[string]V, c scalar[V]) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			if len(*p) == 0 {
				return nil, false, nil
			}
			keys := make([]string, 0, len(*p))
			for k := range *p {
				keys = append(keys, k)
			}
			slices.Sort(keys)

			b := []byte{'{'}
			for i, k := range keys {
				if i > 0 {
					b = append(b, ',')
				}
				v, err := c.encode((*p)[k])
				if err != nil {
					return nil, false, withPath(keySegment(k), err)
				}
				b = appendString(b, k)
				b = append(b, ':')
				b = append(b, v...)
			}
			return append(b, '}'), true, nil
		},
		func(r gjson.Result) error {
			if !r.IsObject() {
				return shapeError("object", r)
			}
			out := make(map[string]V)
			var err error
			r.ForEach(func(key, val gjson.Result) bool {
				if val.Type == gjson.Null {
					err = withPath(keySegment(key.Str), shapeError("map value", val))
					return false
				}
				v, e := c.decode(val)
				if e != nil {
					err = withPath(keySegment(key.Str), e)
					return false
				}
				out[key.Str] = v
				return true
			})
			if err != nil {
				return err
			}
			if len(out) == 0 {
				out = nil
			}
			*p = out
			return nil
		},
		func() { *p = nil },
	)
}

// String binds a text field.
func String(name string, p *string) Field { return scalarField(name, p, stringScalar) }

// Bool binds a boolean field.
func Bool(name string, p *bool) Field { return scalarField(name, p, boolScalar) }

// Int32 binds a 32-bit integer field, written as a JSON number.
func Int32(name string, p *int32) Field { return scalarField(name, p, int32Scalar) }

// Int64 binds a 64-bit integer field, written as a decimal string.
func Int64(name string, p *int64) Field { return scalarField(name, p, int64Scalar) }

// Bytes binds a binary field, written as standard base64.
func Bytes(name string, p *[]byte) Field { return scalarField(name, p, bytesScalar) }

// Enum binds an open enumeration stored as its symbolic name.
func Enum[E ~string](name string, p *E) Field {
	return scalarField(name, p, scalar[E]{
		encode: func(v E) ([]byte, error) { return appendString(nil, string(v)), nil },
		decode: func(r gjson.Result) (E, error) {
			s, err := decodeString(r)
			return E(s), err
		},
	})
}

// OptionalString binds an optional text field. Nil is absent.
func OptionalString(name string, p **string) Field { return optionalField(name, p, stringScalar) }

// OptionalBool binds an optional boolean field. Nil is absent.
func OptionalBool(name string, p **bool) Field { return optionalField(name, p, boolScalar) }

// OptionalInt32 binds an optional 32-bit integer field. Nil is absent.
func OptionalInt32(name string, p **int32) Field { return optionalField(name, p, int32Scalar) }

// OptionalInt64 binds an optional 64-bit integer field. Nil is absent.
func OptionalInt64(name string, p **int64) Field { return optionalField(name, p, int64Scalar) }

// Timestamp binds an optional timestamp field. Nil is absent.
func Timestamp(name string, p **wkt.Timestamp) Field { return optionalField(name, p, timestampScalar) }

// Duration binds an optional duration field. Nil is absent.
func Duration(name string, p **wkt.Duration) Field { return optionalField(name, p, durationScalar) }

// FieldMask binds an optional field mask field. Nil is absent.
func FieldMask(name string, p **wkt.FieldMask) Field { return optionalField(name, p, fieldMaskScalar) }

// RepeatedString binds a sequence of text values.
func RepeatedString(name string, p *[]string) Field {
	return repeatedField(name, p,
		func(v *string) ([]byte, error) { return appendString(nil, *v), nil },
		decodeString,
	)
}

// StringMap binds a map of text values. Empty maps are omitted.
func StringMap(name string, p *map[string]string) Field { return mapField(name, p, stringScalar) }

// Int64Map binds a map of 64-bit integers written as decimal strings. Empty
// maps are omitted.
func Int64Map(name string, p *map[string]int64) Field { return mapField(name, p, int64Scalar) }

// Nested binds an optional nested record. Nil is absent.
func Nested[T any, PT messagePtr[T]](name string, p **T) Field {
	return newField(name,
		func() ([]byte, bool, error) {
			if *p == nil {
				return nil, false, nil
			}
			b, err := encodeMessage(nil, PT(*p))
			return b, true, err
		},
		func(r gjson.Result) error {
			m := new(T)
			if err := decodeMessage(r, PT(m)); err != nil {
				return err
			}
			*p = m
			return nil
		},
		func() { *p = nil },
	)
}

// Repeated binds a sequence of nested records.
func Repeated[T any, PT messagePtr[T]](name string, p *[]T) Field {
	return repeatedField(name, p,
		func(v *T) ([]byte, error) { return encodeMessage(nil, PT(v)) },
		func(r gjson.Result) (T, error) {
			var m T
			err := decodeMessage(r, PT(&m))
			return m, err
		},
	)
}
