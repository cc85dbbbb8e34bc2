package codec

import (
	"encoding/json"
)

// JSON is the standard-library JSON codec.
//
// It escapes HTML characters in strings, which the service accepts, and is
// the lowest-dependency option.
type JSON struct{}

// Marshal encodes the value to JSON.
func (JSON) Marshal(v any) ([]byte, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// Unmarshal decodes the JSON data into v.
func (JSON) Unmarshal(data []byte, v any) error { return classify(json.Unmarshal(data, v)) }

// Name returns the unique name of the codec ("json").
func (JSON) Name() string { return "json" }

// ContentType returns "application/json".
func (JSON) ContentType() string { return contentTypeJSON }

// Default is the codec used by the client unless configured otherwise.
var Default Codec = GoJSON{}
