package model

import "github.com/hupe1980/secretmanager/wire"

// json.Marshaler and json.Unmarshaler for the request and response records.

func (m ListSecretsRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *ListSecretsRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m ListSecretsResponse) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *ListSecretsResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m CreateSecretRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *CreateSecretRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m AddSecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *AddSecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m GetSecretRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *GetSecretRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m ListSecretVersionsRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *ListSecretVersionsRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m ListSecretVersionsResponse) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *ListSecretVersionsResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m GetSecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *GetSecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m UpdateSecretRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *UpdateSecretRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m AccessSecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *AccessSecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m AccessSecretVersionResponse) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *AccessSecretVersionResponse) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m DeleteSecretRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *DeleteSecretRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m DisableSecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *DisableSecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m EnableSecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *EnableSecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

func (m DestroySecretVersionRequest) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }
func (m *DestroySecretVersionRequest) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }
