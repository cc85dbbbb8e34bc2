package apierror

import (
	"fmt"
	"net/http"

	gojson "github.com/goccy/go-json"
)

// HTTPError is the remote-protocol failure reported by the transport: a
// well-formed response whose status code indicates an error.
type HTTPError struct {
	// StatusCode is the HTTP status code of the response.
	StatusCode int
	// Header holds the response headers.
	Header http.Header
	// Payload is the raw response body. Nil means the response had no body.
	Payload []byte
}

// NewHTTPError creates an HTTPError. Header may be nil.
func NewHTTPError(statusCode int, header http.Header, payload []byte) *HTTPError {
	if header == nil {
		header = http.Header{}
	}
	return &HTTPError{StatusCode: statusCode, Header: header, Payload: payload}
}

func (e *HTTPError) Error() string {
	if st, ok := e.Status(); ok && st.Message != "" {
		return fmt.Sprintf("the HTTP transport reports a [%d] error: %s", e.StatusCode, st.Message)
	}
	if len(e.Payload) > 0 {
		return fmt.Sprintf("the HTTP transport reports a [%d] error: %s", e.StatusCode, e.Payload)
	}
	return fmt.Sprintf("the HTTP transport reports a [%d] error", e.StatusCode)
}

// Status is the structured error body returned by Google APIs:
//
//	{"error": {"code": 404, "message": "...", "status": "NOT_FOUND"}}
type Status struct {
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Status  string              `json:"status"`
	Details []gojson.RawMessage `json:"details,omitempty"`
}

// Status decodes the payload as a Google error body. It reports false when
// there is no payload or the payload has a different shape.
func (e *HTTPError) Status() (*Status, bool) {
	if len(e.Payload) == 0 {
		return nil, false
	}
	var body struct {
		Error *Status `json:"error"`
	}
	if err := gojson.Unmarshal(e.Payload, &body); err != nil || body.Error == nil {
		return nil, false
	}
	return body.Error, true
}

// FromHTTP converts an HTTPError into the envelope under KindRemoteProtocol.
func FromHTTP(e *HTTPError) *Error {
	return RemoteProtocol(e)
}
