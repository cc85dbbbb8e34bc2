package model

import (
	"github.com/hupe1980/secretmanager/wire"
)

// Replication is the replication policy of a Secret.
type Replication struct {
	// Replication is an *AutomaticReplication or a *UserManagedReplication.
	Replication ReplicationPolicy
}

// ReplicationPolicy is the union of replication alternatives.
type ReplicationPolicy interface {
	isReplicationPolicy()
}

// AutomaticReplication replicates the payload without restriction.
type AutomaticReplication struct {
	CustomerManagedEncryption *CustomerManagedEncryption
}

func (*AutomaticReplication) isReplicationPolicy() {}

// UserManagedReplication replicates the payload into the listed locations.
//
// A UserManagedReplication without replicas has the same wire form as an
// empty AutomaticReplication and decodes as one.
type UserManagedReplication struct {
	// Replicas must not be empty when creating a Secret.
	Replicas []Replica
}

func (*UserManagedReplication) isReplicationPolicy() {}

// Replica is one location of a UserManagedReplication.
type Replica struct {
	// Location is the canonical location ID, for example "us-east1".
	Location                  string
	CustomerManagedEncryption *CustomerManagedEncryption
}

// CustomerManagedEncryption configures Cloud KMS encryption of a payload.
type CustomerManagedEncryption struct {
	// KMSKeyName is the resource name of the symmetric Cloud KMS key, in the
	// format projects/*/locations/*/keyRings/*/cryptoKeys/*.
	KMSKeyName string
}

var replicationVariants = []wire.Alternative[ReplicationPolicy]{
	wire.MessageVariant[ReplicationPolicy, AutomaticReplication]("automatic"),
	wire.MessageVariant[ReplicationPolicy, UserManagedReplication]("user_managed"),
}

// WireFields implements wire.Message.
func (m *Replication) WireFields() []wire.Field {
	return []wire.Field{
		wire.Union("replication", &m.Replication, replicationVariants...),
	}
}

// MarshalJSON implements json.Marshaler.
func (m Replication) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Replication) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// WireFields implements wire.Message.
func (m *AutomaticReplication) WireFields() []wire.Field {
	return []wire.Field{
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
	}
}

// WireFields implements wire.Message.
func (m *UserManagedReplication) WireFields() []wire.Field {
	return []wire.Field{wire.Repeated("replicas", &m.Replicas)}
}

// WireFields implements wire.Message.
func (m *Replica) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("location", &m.Location),
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
	}
}

// WireFields implements wire.Message.
func (m *CustomerManagedEncryption) WireFields() []wire.Field {
	return []wire.Field{wire.String("kms_key_name", &m.KMSKeyName)}
}

// ReplicationStatus is the replication status of a SecretVersion.
type ReplicationStatus struct {
	// ReplicationStatus is an *AutomaticStatus or a *UserManagedStatus.
	ReplicationStatus ReplicationState
}

// ReplicationState is the union of replication status alternatives.
type ReplicationState interface {
	isReplicationState()
}

// AutomaticStatus is the status of an automatically replicated version.
type AutomaticStatus struct {
	CustomerManagedEncryption *CustomerManagedEncryptionStatus
}

func (*AutomaticStatus) isReplicationState() {}

// UserManagedStatus is the status of a version replicated into user managed
// locations.
type UserManagedStatus struct {
	Replicas []ReplicaStatus
}

func (*UserManagedStatus) isReplicationState() {}

// ReplicaStatus is the status of one replica location.
type ReplicaStatus struct {
	Location                  string
	CustomerManagedEncryption *CustomerManagedEncryptionStatus
}

// CustomerManagedEncryptionStatus describes the key that encrypted a
// payload.
type CustomerManagedEncryptionStatus struct {
	// KMSKeyVersionName is in the format
	// projects/*/locations/*/keyRings/*/cryptoKeys/*/versions/*.
	KMSKeyVersionName string
}

var replicationStatusVariants = []wire.Alternative[ReplicationState]{
	wire.MessageVariant[ReplicationState, AutomaticStatus]("automatic"),
	wire.MessageVariant[ReplicationState, UserManagedStatus]("user_managed"),
}

// WireFields implements wire.Message.
func (m *ReplicationStatus) WireFields() []wire.Field {
	return []wire.Field{
		wire.Union("replication_status", &m.ReplicationStatus, replicationStatusVariants...),
	}
}

// MarshalJSON implements json.Marshaler.
func (m ReplicationStatus) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *ReplicationStatus) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// WireFields implements wire.Message.
func (m *AutomaticStatus) WireFields() []wire.Field {
	return []wire.Field{
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
	}
}

// WireFields implements wire.Message.
func (m *UserManagedStatus) WireFields() []wire.Field {
	return []wire.Field{wire.Repeated("replicas", &m.Replicas)}
}

// WireFields implements wire.Message.
func (m *ReplicaStatus) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("location", &m.Location),
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
	}
}

// WireFields implements wire.Message.
func (m *CustomerManagedEncryptionStatus) WireFields() []wire.Field {
	return []wire.Field{wire.String("kms_key_version_name", &m.KMSKeyVersionName)}
}
