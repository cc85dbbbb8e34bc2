// Package codec centralizes request and response body encoding.
//
// Model records implement json.Marshaler and json.Unmarshaler on top of the
// wire package, so every JSON engine here produces the same wire contract and
// only differs in speed. Failures classify as apierror.KindSerialization.
package codec

import (
	"fmt"

	"github.com/hupe1980/secretmanager/apierror"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
	// ContentType is the media type of encoded bodies.
	ContentType() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}

// MustMarshal is a helper for internal tests/benchmarks.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}

const contentTypeJSON = "application/json"

func classify(err error) error {
	return apierror.Classify(apierror.KindSerialization, err)
}
