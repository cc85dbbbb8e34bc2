package secretmanager

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
)

// Request is one REST call handed to a Transport.
type Request struct {
	// ID identifies the call in logs and in the X-Request-Id header.
	ID     string
	Method string
	URL    *url.URL
	Header http.Header
	// Body is nil for methods without a request body.
	Body []byte
}

// Response is the raw reply of a Transport.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Transport moves serialized requests to the service. It does not interpret
// status codes; non-2xx responses are returned without error.
//
// Retry and backoff, if any, belong to the Transport.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportFunc adapts a function to the Transport interface.
type TransportFunc func(ctx context.Context, req *Request) (*Response, error)

// Do implements Transport.
func (f TransportFunc) Do(ctx context.Context, req *Request) (*Response, error) {
	return f(ctx, req)
}

// HTTPTransport is a Transport over net/http.
type HTTPTransport struct {
	client *http.Client
}

// NewHTTPTransport creates a Transport sending requests with client. If
// client is nil, http.DefaultClient is used.
func NewHTTPTransport(client *http.Client) *HTTPTransport {
	if client == nil {
		client = http.DefaultClient
	}
	return &HTTPTransport{client: client}
}

// Do implements Transport.
func (t *HTTPTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL.String(), body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Header {
		httpReq.Header[k] = v
	}

	httpResp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	payload, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, err
	}
	return &Response{
		StatusCode: httpResp.StatusCode,
		Header:     httpResp.Header,
		Body:       payload,
	}, nil
}
