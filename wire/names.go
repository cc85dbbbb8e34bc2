package wire

import "strings"

// JSONName converts a snake_case schema name to its lowerCamelCase wire name.
// An underscore is dropped and the following lower case letter is upper-cased;
// every other byte is kept as is.
func JSONName(name string) string {
	if !strings.Contains(name, "_") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c == '_' {
			upper = true
			continue
		}
		if upper && c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		upper = false
		b.WriteByte(c)
	}
	return b.String()
}
