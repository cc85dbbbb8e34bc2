package model

import (
	"github.com/hupe1980/secretmanager/wire"
	"github.com/hupe1980/secretmanager/wkt"
)

// State is the lifecycle state of a SecretVersion.
//
// The set of states is open: values unknown to this package are kept as-is.
type State string

const (
	StateUnspecified State = "STATE_UNSPECIFIED"
	// StateEnabled versions may be accessed.
	StateEnabled State = "ENABLED"
	// StateDisabled versions may not be accessed but can be re-enabled.
	StateDisabled State = "DISABLED"
	// StateDestroyed versions have their payload irrevocably removed.
	StateDestroyed State = "DESTROYED"
)

// Known reports whether s is one of the states defined by this package.
func (s State) Known() bool {
	switch s {
	case StateUnspecified, StateEnabled, StateDisabled, StateDestroyed:
		return true
	default:
		return false
	}
}

// SecretVersion is a revision of a Secret holding its payload.
type SecretVersion struct {
	// Name is the resource name in the format projects/*/secrets/*/versions/*.
	// Version numbers start at 1 and increase for each new version.
	Name        string
	CreateTime  *wkt.Timestamp
	DestroyTime *wkt.Timestamp
	State       State
	// ReplicationStatus is only populated on replicated versions.
	ReplicationStatus *ReplicationStatus
	Etag              string
	// ClientSpecifiedPayloadChecksum is true when the version was created with a
	// SecretPayload.DataCRC32C.
	ClientSpecifiedPayloadChecksum bool
	ScheduledDestroyTime           *wkt.Timestamp
	CustomerManagedEncryption      *CustomerManagedEncryptionStatus
}

// WireFields implements wire.Message.
func (m *SecretVersion) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.Timestamp("create_time", &m.CreateTime),
		wire.Timestamp("destroy_time", &m.DestroyTime),
		wire.Enum("state", &m.State),
		wire.Nested("replication_status", &m.ReplicationStatus),
		wire.String("etag", &m.Etag),
		wire.Bool("client_specified_payload_checksum", &m.ClientSpecifiedPayloadChecksum),
		wire.Timestamp("scheduled_destroy_time", &m.ScheduledDestroyTime),
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
	}
}

// MarshalJSON implements json.Marshaler.
func (m SecretVersion) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *SecretVersion) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }
