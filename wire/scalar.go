package wire

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
	"github.com/tidwall/gjson"

	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/wkt"
)

// scalar converts one Go value kind to and from a single JSON token.
type scalar[T any] struct {
	encode func(T) ([]byte, error)
	decode func(gjson.Result) (T, error)
}

var (
	stringScalar = scalar[string]{
		encode: func(v string) ([]byte, error) { return appendString(nil, v), nil },
		decode: decodeString,
	}
	boolScalar = scalar[bool]{
		encode: func(v bool) ([]byte, error) { return strconv.AppendBool(nil, v), nil },
		decode: decodeBool,
	}
	int32Scalar = scalar[int32]{
		encode: func(v int32) ([]byte, error) { return strconv.AppendInt(nil, int64(v), 10), nil },
		decode: decodeInt32,
	}
	int64Scalar = scalar[int64]{
		encode: func(v int64) ([]byte, error) { return EncodeInt64(v), nil },
		decode: decodeInt64,
	}
	bytesScalar = scalar[[]byte]{
		encode: func(v []byte) ([]byte, error) { return EncodeBytes(v), nil },
		decode: decodeBytes,
	}
	timestampScalar = scalar[wkt.Timestamp]{
		encode: func(v wkt.Timestamp) ([]byte, error) {
			s, err := v.Format()
			if err != nil {
				return nil, err
			}
			return appendString(nil, s), nil
		},
		decode: func(r gjson.Result) (wkt.Timestamp, error) {
			if r.Type != gjson.String {
				return wkt.Timestamp{}, shapeError("timestamp string", r)
			}
			return wkt.ParseTimestamp(r.Str)
		},
	}
	durationScalar = scalar[wkt.Duration]{
		encode: func(v wkt.Duration) ([]byte, error) {
			s, err := v.Format()
			if err != nil {
				return nil, err
			}
			return appendString(nil, s), nil
		},
		decode: func(r gjson.Result) (wkt.Duration, error) {
			if r.Type != gjson.String {
				return wkt.Duration{}, shapeError("duration string", r)
			}
			return wkt.ParseDuration(r.Str)
		},
	}
	fieldMaskScalar = scalar[wkt.FieldMask]{
		encode: func(v wkt.FieldMask) ([]byte, error) {
			s, err := v.Format()
			if err != nil {
				return nil, err
			}
			return appendString(nil, s), nil
		},
		decode: func(r gjson.Result) (wkt.FieldMask, error) {
			if r.Type != gjson.String {
				return wkt.FieldMask{}, shapeError("field mask string", r)
			}
			return wkt.ParseFieldMask(r.Str)
		},
	}
)

// EncodeInt64 returns the quoted decimal form of v, e.g. "-42" with quotes.
func EncodeInt64(v int64) []byte {
	b := make([]byte, 0, 22)
	b = append(b, '"')
	b = strconv.AppendInt(b, v, 10)
	return append(b, '"')
}

// DecodeInt64 decodes a JSON string token matching -?[0-9]+ as a 64-bit
// integer. Bare JSON numbers are rejected.
func DecodeInt64(token []byte) (int64, error) {
	return decodeToken(token, decodeInt64)
}

// EncodeInt32 returns v as a bare JSON number.
func EncodeInt32(v int32) []byte {
	return strconv.AppendInt(nil, int64(v), 10)
}

// DecodeInt32 decodes a JSON number token holding an integral value that fits
// in 32 bits. Exponent and fraction forms are accepted when integral.
func DecodeInt32(token []byte) (int32, error) {
	return decodeToken(token, decodeInt32)
}

// EncodeBytes returns v as a JSON string of standard, padded base64.
func EncodeBytes(v []byte) []byte {
	b := make([]byte, 0, base64.StdEncoding.EncodedLen(len(v))+2)
	b = append(b, '"')
	b = base64.StdEncoding.AppendEncode(b, v)
	return append(b, '"')
}

// DecodeBytes decodes a JSON string of standard, padded base64. The empty
// string decodes to a zero-length (nil) payload.
func DecodeBytes(token []byte) ([]byte, error) {
	return decodeToken(token, decodeBytes)
}

// EncodeString returns v as a JSON string.
func EncodeString(v string) []byte { return appendString(nil, v) }

// DecodeString decodes a JSON string token.
func DecodeString(token []byte) (string, error) {
	return decodeToken(token, decodeString)
}

// EncodeBool returns v as a JSON boolean.
func EncodeBool(v bool) []byte { return strconv.AppendBool(nil, v) }

// DecodeBool decodes a JSON boolean token.
func DecodeBool(token []byte) (bool, error) {
	return decodeToken(token, decodeBool)
}

// EncodeTimestamp returns the canonical JSON string for v.
func EncodeTimestamp(v wkt.Timestamp) ([]byte, error) {
	b, err := timestampScalar.encode(v)
	if err != nil {
		return nil, apierror.Serialization(err)
	}
	return b, nil
}

// DecodeTimestamp decodes a canonical timestamp JSON string.
func DecodeTimestamp(token []byte) (wkt.Timestamp, error) {
	return decodeToken(token, timestampScalar.decode)
}

// EncodeDuration returns the canonical JSON string for v.
func EncodeDuration(v wkt.Duration) ([]byte, error) {
	b, err := durationScalar.encode(v)
	if err != nil {
		return nil, apierror.Serialization(err)
	}
	return b, nil
}

// DecodeDuration decodes a canonical duration JSON string.
func DecodeDuration(token []byte) (wkt.Duration, error) {
	return decodeToken(token, durationScalar.decode)
}

// EncodeFieldMask returns the canonical JSON string for v.
func EncodeFieldMask(v wkt.FieldMask) ([]byte, error) {
	b, err := fieldMaskScalar.encode(v)
	if err != nil {
		return nil, apierror.Serialization(err)
	}
	return b, nil
}

// DecodeFieldMask decodes a canonical field mask JSON string.
func DecodeFieldMask(token []byte) (wkt.FieldMask, error) {
	return decodeToken(token, fieldMaskScalar.decode)
}

func decodeToken[T any](token []byte, decode func(gjson.Result) (T, error)) (T, error) {
	var zero T
	if !gjson.ValidBytes(token) {
		return zero, apierror.Serialization(ErrSyntax)
	}
	v, err := decode(gjson.ParseBytes(token))
	if err != nil {
		return zero, apierror.Serialization(err)
	}
	return v, nil
}

func decodeString(r gjson.Result) (string, error) {
	if r.Type != gjson.String {
		return "", shapeError("string", r)
	}
	return r.Str, nil
}

func decodeBool(r gjson.Result) (bool, error) {
	switch r.Type {
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	default:
		return false, shapeError("boolean", r)
	}
}

func decodeInt32(r gjson.Result) (int32, error) {
	if r.Type != gjson.Number {
		return 0, shapeError("number", r)
	}
	if n, err := strconv.ParseInt(r.Raw, 10, 32); err == nil {
		return int32(n), nil
	}
	f, err := strconv.ParseFloat(r.Raw, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("%w: %s is not an integer", ErrShape, r.Raw)
	}
	if f < math.MinInt32 || f > math.MaxInt32 {
		return 0, fmt.Errorf("%w: %s does not fit in 32 bits", ErrRange, r.Raw)
	}
	return int32(f), nil
}

func decodeInt64(r gjson.Result) (int64, error) {
	if r.Type != gjson.String {
		return 0, shapeError("decimal string", r)
	}
	if !isDecimal(r.Str) {
		return 0, fmt.Errorf("%w: %q is not a decimal integer", ErrShape, r.Str)
	}
	n, err := strconv.ParseInt(r.Str, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit in 64 bits", ErrRange, r.Str)
	}
	return n, nil
}

func decodeBytes(r gjson.Result) ([]byte, error) {
	if r.Type != gjson.String {
		return nil, shapeError("base64 string", r)
	}
	if r.Str == "" {
		return nil, nil
	}
	// The standard decoder skips CR and LF; the wire form never contains them.
	if strings.ContainsAny(r.Str, "\r\n") {
		return nil, fmt.Errorf("%w: line breaks are not allowed", ErrBase64)
	}
	b, err := base64.StdEncoding.Strict().DecodeString(r.Str)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBase64, err)
	}
	return b, nil
}

// isDecimal reports whether s matches -?[0-9]+.
func isDecimal(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func appendString(dst []byte, s string) []byte {
	b, err := gojson.Marshal(s)
	if err != nil {
		// Marshaling a Go string cannot fail.
		panic("wire: string encoding failed: " + err.Error())
	}
	return append(dst, b...)
}

func shapeError(want string, r gjson.Result) error {
	return fmt.Errorf("%w: expected %s, got %s", ErrShape, want, describe(r))
}

func describe(r gjson.Result) string {
	switch r.Type {
	case gjson.Null:
		return "null"
	case gjson.True, gjson.False:
		return "boolean"
	case gjson.Number:
		return "number " + r.Raw
	case gjson.String:
		return "string"
	default:
		if r.IsArray() {
			return "array"
		}
		return "object"
	}
}
