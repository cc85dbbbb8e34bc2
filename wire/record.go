package wire

import (
	"github.com/tidwall/gjson"

	"github.com/hupe1980/secretmanager/apierror"
)

// Marshal encodes m as a JSON object following the wire rules.
//
// Failures are *apierror.Error values of kind KindSerialization.
func Marshal(m Message) ([]byte, error) {
	b, err := encodeMessage(nil, m)
	if err != nil {
		return nil, apierror.Serialization(err)
	}
	return b, nil
}

// Unmarshal decodes the JSON object in data into m, replacing every field of
// m. Keys unknown to m are ignored, absent fields are reset to their zero
// value and a top-level JSON null leaves m untouched.
//
// Failures are *apierror.Error values of kind KindSerialization.
func Unmarshal(data []byte, m Message) error {
	if !gjson.ValidBytes(data) {
		return apierror.Serialization(ErrSyntax)
	}
	r := gjson.ParseBytes(data)
	if r.Type == gjson.Null {
		return nil
	}
	if err := decodeMessage(r, m); err != nil {
		return apierror.Serialization(err)
	}
	return nil
}

func encodeMessage(dst []byte, m Message) ([]byte, error) {
	dst = append(dst, '{')
	first := true
	for _, f := range m.WireFields() {
		v, ok, err := f.encode()
		if err != nil {
			return nil, withPath(f.jsonName, err)
		}
		if !ok {
			continue
		}
		if !first {
			dst = append(dst, ',')
		}
		first = false
		dst = appendString(dst, f.jsonName)
		dst = append(dst, ':')
		dst = append(dst, v...)
	}
	return append(dst, '}'), nil
}

func decodeMessage(r gjson.Result, m Message) error {
	if !r.IsObject() {
		return shapeError("object", r)
	}
	fields := m.WireFields()
	for i := range fields {
		fields[i].reset()
	}

	var err error
	r.ForEach(func(key, val gjson.Result) bool {
		f := lookupField(fields, key.Str)
		if f == nil {
			return true
		}
		if val.Type == gjson.Null {
			f.reset()
			return true
		}
		if e := f.decode(val); e != nil {
			err = withPath(f.jsonName, e)
			return false
		}
		return true
	})
	return err
}

func lookupField(fields []Field, jsonName string) *Field {
	for i := range fields {
		if fields[i].jsonName == jsonName {
			return &fields[i]
		}
	}
	return nil
}

// keyMatch counts the keys of the JSON object r that m knows and does not
// know.
func keyMatch(r gjson.Result, m Message) (known, unknown int) {
	fields := m.WireFields()
	r.ForEach(func(key, _ gjson.Result) bool {
		if lookupField(fields, key.Str) != nil {
			known++
		} else {
			unknown++
		}
		return true
	})
	return known, unknown
}
