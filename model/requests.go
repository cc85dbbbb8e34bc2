package model

import (
	"github.com/hupe1980/secretmanager/wire"
	"github.com/hupe1980/secretmanager/wkt"
)

// ListSecretsRequest lists the secrets of a project.
type ListSecretsRequest struct {
	// Parent is the project, in the format projects/*.
	Parent string
	// PageSize is the maximum number of results; the service caps it at 25000.
	PageSize  int32
	PageToken string
	// Filter is passed through to the service unmodified.
	Filter string
}

// WireFields implements wire.Message.
func (m *ListSecretsRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("parent", &m.Parent),
		wire.Int32("page_size", &m.PageSize),
		wire.String("page_token", &m.PageToken),
		wire.String("filter", &m.Filter),
	}
}

// ListSecretsResponse is one page of secrets.
type ListSecretsResponse struct {
	// Secrets are sorted in reverse by create time.
	Secrets []Secret
	// NextPageToken is empty on the last page.
	NextPageToken string
	// TotalSize is the total number of secrets, across all pages.
	TotalSize int32
}

// WireFields implements wire.Message.
func (m *ListSecretsResponse) WireFields() []wire.Field {
	return []wire.Field{
		wire.Repeated("secrets", &m.Secrets),
		wire.String("next_page_token", &m.NextPageToken),
		wire.Int32("total_size", &m.TotalSize),
	}
}

// CreateSecretRequest creates a secret without versions.
type CreateSecretRequest struct {
	Parent string
	// SecretID is 1 to 255 characters of letters, digits, underscores and
	// hyphens.
	SecretID string
	Secret   *Secret
}

// WireFields implements wire.Message.
func (m *CreateSecretRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("parent", &m.Parent),
		wire.String("secret_id", &m.SecretID),
		wire.Nested("secret", &m.Secret),
	}
}

// AddSecretVersionRequest adds a version holding Payload to the secret
// Parent.
type AddSecretVersionRequest struct {
	// Parent is the secret, in the format projects/*/secrets/*.
	Parent  string
	Payload *SecretPayload
}

// WireFields implements wire.Message.
func (m *AddSecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("parent", &m.Parent),
		wire.Nested("payload", &m.Payload),
	}
}

// GetSecretRequest fetches secret metadata.
type GetSecretRequest struct {
	Name string
}

// WireFields implements wire.Message.
func (m *GetSecretRequest) WireFields() []wire.Field {
	return []wire.Field{wire.String("name", &m.Name)}
}

// ListSecretVersionsRequest lists the versions of a secret. Payloads are not
// returned.
type ListSecretVersionsRequest struct {
	Parent    string
	PageSize  int32
	PageToken string
	Filter    string
}

// WireFields implements wire.Message.
func (m *ListSecretVersionsRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("parent", &m.Parent),
		wire.Int32("page_size", &m.PageSize),
		wire.String("page_token", &m.PageToken),
		wire.String("filter", &m.Filter),
	}
}

// ListSecretVersionsResponse is one page of secret versions.
type ListSecretVersionsResponse struct {
	Versions      []SecretVersion
	NextPageToken string
	TotalSize     int32
}

// WireFields implements wire.Message.
func (m *ListSecretVersionsResponse) WireFields() []wire.Field {
	return []wire.Field{
		wire.Repeated("versions", &m.Versions),
		wire.String("next_page_token", &m.NextPageToken),
		wire.Int32("total_size", &m.TotalSize),
	}
}

// GetSecretVersionRequest fetches version metadata. The version "latest"
// resolves to the most recently created version.
type GetSecretVersionRequest struct {
	Name string
}

// WireFields implements wire.Message.
func (m *GetSecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{wire.String("name", &m.Name)}
}

// UpdateSecretRequest updates the fields of Secret named by UpdateMask.
type UpdateSecretRequest struct {
	Secret     *Secret
	UpdateMask *wkt.FieldMask
}

// WireFields implements wire.Message.
func (m *UpdateSecretRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.Nested("secret", &m.Secret),
		wire.FieldMask("update_mask", &m.UpdateMask),
	}
}

// AccessSecretVersionRequest fetches a version payload.
type AccessSecretVersionRequest struct {
	Name string
}

// WireFields implements wire.Message.
func (m *AccessSecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{wire.String("name", &m.Name)}
}

// AccessSecretVersionResponse carries a version payload.
type AccessSecretVersionResponse struct {
	// Name is the resolved version name, never an alias.
	Name    string
	Payload *SecretPayload
}

// WireFields implements wire.Message.
func (m *AccessSecretVersionResponse) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.Nested("payload", &m.Payload),
	}
}

// DeleteSecretRequest deletes a secret and all of its versions.
type DeleteSecretRequest struct {
	Name string
	// Etag, when set, must match the current etag of the secret.
	Etag string
}

// WireFields implements wire.Message.
func (m *DeleteSecretRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.String("etag", &m.Etag),
	}
}

// DisableSecretVersionRequest moves a version to StateDisabled.
type DisableSecretVersionRequest struct {
	Name string
	Etag string
}

// WireFields implements wire.Message.
func (m *DisableSecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.String("etag", &m.Etag),
	}
}

// EnableSecretVersionRequest moves a version to StateEnabled.
type EnableSecretVersionRequest struct {
	Name string
	Etag string
}

// WireFields implements wire.Message.
func (m *EnableSecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.String("etag", &m.Etag),
	}
}

// DestroySecretVersionRequest moves a version to StateDestroyed and removes
// its payload.
type DestroySecretVersionRequest struct {
	Name string
	Etag string
}

// WireFields implements wire.Message.
func (m *DestroySecretVersionRequest) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.String("etag", &m.Etag),
	}
}
