package secretmanager

import (
	"context"
	"net/http"

	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/model"
)

// AddSecretVersion creates a version holding req.Payload.
//
// POST /v1/{parent}:addVersion
func (c *Client) AddSecretVersion(ctx context.Context, req *model.AddSecretVersionRequest) (*model.SecretVersion, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("parent", req.Parent); err != nil {
		return nil, err
	}

	resp := &model.SecretVersion{}
	err := c.do(ctx, rpc{
		name:     "AddSecretVersion",
		verb:     http.MethodPost,
		resource: req.Parent,
		suffix:   ":addVersion",
		body:     &payloadBody{Payload: req.Payload},
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// ListSecretVersions returns one page of the versions of req.Parent.
//
// GET /v1/{parent}/versions
func (c *Client) ListSecretVersions(ctx context.Context, req *model.ListSecretVersionsRequest) (*model.ListSecretVersionsResponse, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("parent", req.Parent); err != nil {
		return nil, err
	}

	resp := &model.ListSecretVersionsResponse{}
	err := c.do(ctx, rpc{
		name:     "ListSecretVersions",
		verb:     http.MethodGet,
		resource: req.Parent,
		suffix:   "/versions",
		query:    listQuery(req.PageSize, req.PageToken, req.Filter),
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetSecretVersion returns the metadata of a version.
//
// GET /v1/{name}
func (c *Client) GetSecretVersion(ctx context.Context, req *model.GetSecretVersionRequest) (*model.SecretVersion, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}

	resp := &model.SecretVersion{}
	err := c.do(ctx, rpc{
		name:     "GetSecretVersion",
		verb:     http.MethodGet,
		resource: req.Name,
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// AccessSecretVersion returns the payload of a version.
//
// The payload checksum is not verified here; use
// SecretPayload.VerifyCRC32C.
//
// GET /v1/{name}:access
func (c *Client) AccessSecretVersion(ctx context.Context, req *model.AccessSecretVersionRequest) (*model.AccessSecretVersionResponse, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}

	resp := &model.AccessSecretVersionResponse{}
	err := c.do(ctx, rpc{
		name:     "AccessSecretVersion",
		verb:     http.MethodGet,
		resource: req.Name,
		suffix:   ":access",
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DisableSecretVersion moves a version to model.StateDisabled.
//
// POST /v1/{name}:disable
func (c *Client) DisableSecretVersion(ctx context.Context, req *model.DisableSecretVersionRequest) (*model.SecretVersion, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	return c.transition(ctx, "DisableSecretVersion", ":disable", req.Name, req.Etag)
}

// EnableSecretVersion moves a version to model.StateEnabled.
//
// POST /v1/{name}:enable
func (c *Client) EnableSecretVersion(ctx context.Context, req *model.EnableSecretVersionRequest) (*model.SecretVersion, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	return c.transition(ctx, "EnableSecretVersion", ":enable", req.Name, req.Etag)
}

// DestroySecretVersion moves a version to model.StateDestroyed and removes
// its payload. Secrets with a version destroy TTL disable the version first.
//
// POST /v1/{name}:destroy
func (c *Client) DestroySecretVersion(ctx context.Context, req *model.DestroySecretVersionRequest) (*model.SecretVersion, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	return c.transition(ctx, "DestroySecretVersion", ":destroy", req.Name, req.Etag)
}

func (c *Client) transition(ctx context.Context, method, verb, name, etag string) (*model.SecretVersion, error) {
	if err := requireField("name", name); err != nil {
		return nil, err
	}

	resp := &model.SecretVersion{}
	err := c.do(ctx, rpc{
		name:     method,
		verb:     http.MethodPost,
		resource: name,
		suffix:   verb,
		body:     &etagBody{Etag: etag},
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}
