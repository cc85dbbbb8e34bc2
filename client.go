package secretmanager

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/model"
	"github.com/hupe1980/secretmanager/wire"
)

// Client calls the Secret Manager v1 REST API through a Transport.
//
// Each method issues exactly one request. List methods return one page; the
// caller passes NextPageToken back to fetch the next one. Every error
// returned is an *apierror.Error.
//
// A Client is safe for concurrent use.
type Client struct {
	transport Transport
	base      *url.URL
	opts      options
}

// New creates a Client sending requests through transport.
func New(transport Transport, optFns ...Option) (*Client, error) {
	if transport == nil {
		return nil, apierror.Other(ErrNilTransport)
	}
	o := applyOptions(optFns)
	if o.err != nil {
		return nil, apierror.Other(o.err)
	}

	base, err := url.Parse(o.endpoint)
	if err != nil {
		return nil, apierror.Other(err)
	}

	return &Client{
		transport: transport,
		base:      base,
		opts:      o,
	}, nil
}

// rpc describes one REST call.
type rpc struct {
	// name is the RPC method name, e.g. "GetSecret".
	name     string
	verb     string
	resource string
	// suffix follows the resource in the path, e.g. "/secrets" or ":access".
	suffix string
	query  url.Values
	body   any
}

func (c *Client) url(r rpc) *url.URL {
	u := *c.base
	u.Path = strings.TrimSuffix(c.base.Path, "/") + "/v1/" + r.resource + r.suffix
	u.RawPath = ""
	u.RawQuery = r.query.Encode()
	return &u
}

// do runs r and decodes a successful response body into out. out may be nil
// for methods returning an empty message.
func (c *Client) do(ctx context.Context, r rpc, out any) (err error) {
	start := time.Now()
	id := uuid.NewString()
	log := c.opts.logger.WithMethod(r.name).WithResource(r.resource).WithRequestID(id)

	status := 0
	defer func() {
		elapsed := time.Since(start)
		c.opts.metricsCollector.RecordCall(r.name, elapsed, err)
		log.LogCall(ctx, status, elapsed, err)
	}()

	if c.opts.limiter != nil {
		if err := c.opts.limiter.Wait(ctx); err != nil {
			return apierror.Transport(err)
		}
	}

	req := &Request{
		ID:     id,
		Method: r.verb,
		URL:    c.url(r),
		Header: make(http.Header),
	}
	req.Header.Set("Accept", c.opts.codec.ContentType())
	req.Header.Set("X-Request-Id", id)
	if c.opts.userAgent != "" {
		req.Header.Set("User-Agent", c.opts.userAgent)
	}

	if c.opts.tokenProvider != nil {
		token, err := c.opts.tokenProvider.Token(ctx)
		if err != nil {
			return translateTokenError(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	if r.body != nil {
		b, err := c.opts.codec.Marshal(r.body)
		if err != nil {
			return err
		}
		req.Body = b
		req.Header.Set("Content-Type", c.opts.codec.ContentType())
	}

	resp, err := c.transport.Do(ctx, req)
	if err != nil {
		return translateError(err)
	}
	status = resp.StatusCode

	if status < 200 || status > 299 {
		return apierror.FromHTTP(apierror.NewHTTPError(status, resp.Header, resp.Body))
	}
	if out == nil || len(resp.Body) == 0 {
		return nil
	}
	return c.opts.codec.Unmarshal(resp.Body, out)
}

// payloadBody is the body of AddSecretVersion; the parent travels in the
// path.
type payloadBody struct {
	Payload *model.SecretPayload
}

func (m *payloadBody) WireFields() []wire.Field {
	return []wire.Field{wire.Nested("payload", &m.Payload)}
}

func (m payloadBody) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// etagBody is the body of the version state transitions.
type etagBody struct {
	Etag string
}

func (m *etagBody) WireFields() []wire.Field {
	return []wire.Field{wire.String("etag", &m.Etag)}
}

func (m etagBody) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

func listQuery(pageSize int32, pageToken, filter string) url.Values {
	q := url.Values{}
	if pageSize > 0 {
		q.Set("pageSize", string(wire.EncodeInt32(pageSize)))
	}
	if pageToken != "" {
		q.Set("pageToken", pageToken)
	}
	if filter != "" {
		q.Set("filter", filter)
	}
	return q
}
