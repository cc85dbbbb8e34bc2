package secretmanager

import (
	"context"
	"net/http"
	"net/url"

	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/model"
)

// ListSecrets returns one page of the secrets of req.Parent.
//
// GET /v1/{parent}/secrets
func (c *Client) ListSecrets(ctx context.Context, req *model.ListSecretsRequest) (*model.ListSecretsResponse, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("parent", req.Parent); err != nil {
		return nil, err
	}

	resp := &model.ListSecretsResponse{}
	err := c.do(ctx, rpc{
		name:     "ListSecrets",
		verb:     http.MethodGet,
		resource: req.Parent,
		suffix:   "/secrets",
		query:    listQuery(req.PageSize, req.PageToken, req.Filter),
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateSecret creates a secret without versions.
//
// POST /v1/{parent}/secrets?secretId={secret_id}
func (c *Client) CreateSecret(ctx context.Context, req *model.CreateSecretRequest) (*model.Secret, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("parent", req.Parent); err != nil {
		return nil, err
	}

	secret := req.Secret
	if secret == nil {
		secret = &model.Secret{}
	}

	resp := &model.Secret{}
	err := c.do(ctx, rpc{
		name:     "CreateSecret",
		verb:     http.MethodPost,
		resource: req.Parent,
		suffix:   "/secrets",
		query:    url.Values{"secretId": {req.SecretID}},
		body:     secret,
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// GetSecret returns the metadata of a secret.
//
// GET /v1/{name}
func (c *Client) GetSecret(ctx context.Context, req *model.GetSecretRequest) (*model.Secret, error) {
	if req == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("name", req.Name); err != nil {
		return nil, err
	}

	resp := &model.Secret{}
	err := c.do(ctx, rpc{
		name:     "GetSecret",
		verb:     http.MethodGet,
		resource: req.Name,
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// UpdateSecret updates the fields of req.Secret named by req.UpdateMask.
//
// PATCH /v1/{secret.name}?updateMask={update_mask}
func (c *Client) UpdateSecret(ctx context.Context, req *model.UpdateSecretRequest) (*model.Secret, error) {
	if req == nil || req.Secret == nil {
		return nil, apierror.Other(ErrNilRequest)
	}
	if err := requireField("secret.name", req.Secret.Name); err != nil {
		return nil, err
	}

	query := url.Values{}
	if req.UpdateMask != nil {
		mask, err := req.UpdateMask.Format()
		if err != nil {
			return nil, apierror.Serialization(err)
		}
		query.Set("updateMask", mask)
	}

	resp := &model.Secret{}
	err := c.do(ctx, rpc{
		name:     "UpdateSecret",
		verb:     http.MethodPatch,
		resource: req.Secret.Name,
		query:    query,
		body:     req.Secret,
	}, resp)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteSecret deletes a secret and all of its versions. A non-empty
// req.Etag must match the current etag.
//
// DELETE /v1/{name}?etag={etag}
func (c *Client) DeleteSecret(ctx context.Context, req *model.DeleteSecretRequest) error {
	if req == nil {
		return apierror.Other(ErrNilRequest)
	}
	if err := requireField("name", req.Name); err != nil {
		return err
	}

	query := url.Values{}
	if req.Etag != "" {
		query.Set("etag", req.Etag)
	}

	return c.do(ctx, rpc{
		name:     "DeleteSecret",
		verb:     http.MethodDelete,
		resource: req.Name,
		query:    query,
	}, nil)
}
