package codec

import gojson "github.com/goccy/go-json"

// GoJSON is a JSON codec backed by github.com/goccy/go-json.
type GoJSON struct{}

// Marshal encodes the value to JSON.
func (GoJSON) Marshal(v any) ([]byte, error) {
	b, err := gojson.Marshal(v)
	if err != nil {
		return nil, classify(err)
	}
	return b, nil
}

// Unmarshal decodes the JSON data into v.
func (GoJSON) Unmarshal(data []byte, v any) error { return classify(gojson.Unmarshal(data, v)) }

// Name returns the unique name of the codec ("go-json").
func (GoJSON) Name() string { return "go-json" }

// ContentType returns "application/json".
func (GoJSON) ContentType() string { return contentTypeJSON }
