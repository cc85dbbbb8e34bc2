package wkt

import (
	"fmt"
	"strings"
)

// FieldMask is a set of symbolic field paths, e.g. "labels" or
// "rotation.rotation_period". Paths use the schema's snake_case names; the
// wire form converts each path segment to lowerCamelCase.
type FieldMask struct {
	Paths []string
}

// NewFieldMask returns a FieldMask over paths. A mask without paths has nil
// Paths, matching what ParseFieldMask returns for the empty string.
func NewFieldMask(paths ...string) FieldMask {
	if len(paths) == 0 {
		return FieldMask{}
	}
	return FieldMask{Paths: paths}
}

// Format returns the canonical comma-joined lowerCamelCase form.
//
// Paths may only hold lower case letters, digits, dots and underscores that
// are followed by a lower case letter; anything else would not survive a
// round trip and fails. A nil and an empty Paths both format as "".
func (fm FieldMask) Format() (string, error) {
	out := make([]string, len(fm.Paths))
	for i, p := range fm.Paths {
		camel, err := snakeToCamel(p)
		if err != nil {
			return "", err
		}
		out[i] = camel
	}
	return strings.Join(out, ","), nil
}

// String returns the canonical form, or a diagnostic for invalid values.
func (fm FieldMask) String() string {
	s, err := fm.Format()
	if err != nil {
		return fmt.Sprintf("FieldMask(%q)", fm.Paths)
	}
	return s
}

// ParseFieldMask parses the canonical comma-joined form. The empty string is
// a mask with no paths.
func ParseFieldMask(s string) (FieldMask, error) {
	if s == "" {
		return FieldMask{}, nil
	}
	parts := strings.Split(s, ",")
	paths := make([]string, len(parts))
	for i, p := range parts {
		snake, err := camelToSnake(p)
		if err != nil {
			return FieldMask{}, err
		}
		paths[i] = snake
	}
	return FieldMask{Paths: paths}, nil
}

// MarshalText implements encoding.TextMarshaler.
func (fm FieldMask) MarshalText() ([]byte, error) {
	s, err := fm.Format()
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (fm *FieldMask) UnmarshalText(text []byte) error {
	parsed, err := ParseFieldMask(string(text))
	if err != nil {
		return err
	}
	*fm = parsed
	return nil
}

func snakeToCamel(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidFieldMask)
	}
	var b strings.Builder
	b.Grow(len(path))
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c >= 'A' && c <= 'Z':
			return "", fmt.Errorf("%w: path %q is not snake_case", ErrInvalidFieldMask, path)
		case c == '_':
			if i+1 >= len(path) || path[i+1] < 'a' || path[i+1] > 'z' {
				return "", fmt.Errorf("%w: path %q has a dangling underscore", ErrInvalidFieldMask, path)
			}
			i++
			b.WriteByte(path[i] - 'a' + 'A')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.':
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("%w: path %q has invalid character %q", ErrInvalidFieldMask, path, c)
		}
	}
	return b.String(), nil
}

func camelToSnake(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidFieldMask)
	}
	var b strings.Builder
	b.Grow(len(path) + 4)
	for i := 0; i < len(path); i++ {
		c := path[i]
		switch {
		case c >= 'A' && c <= 'Z':
			b.WriteByte('_')
			b.WriteByte(c - 'A' + 'a')
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9', c == '.':
			b.WriteByte(c)
		default:
			return "", fmt.Errorf("%w: path %q has invalid character %q", ErrInvalidFieldMask, path, c)
		}
	}
	return b.String(), nil
}
