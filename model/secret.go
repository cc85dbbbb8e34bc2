package model

import (
	"github.com/hupe1980/secretmanager/wire"
	"github.com/hupe1980/secretmanager/wkt"
)

// Secret is a logical secret whose value and versions can be accessed.
//
// A Secret is made up of zero or more SecretVersions that hold the actual
// secret data.
type Secret struct {
	// Name is the resource name in the format projects/*/secrets/*.
	Name string
	// Replication is immutable after creation.
	Replication *Replication
	CreateTime  *wkt.Timestamp
	Labels      map[string]string
	// Topics receive control plane events for the secret.
	Topics []Topic
	Etag   string
	// Rotation schedules notifications on Topics. It does not rotate anything.
	Rotation *Rotation
	// VersionAliases maps alias names to version numbers.
	VersionAliases map[string]int64
	Annotations    map[string]string
	// VersionDestroyTTL delays version destruction; destroyed versions are
	// disabled until it elapses.
	VersionDestroyTTL         *wkt.Duration
	CustomerManagedEncryption *CustomerManagedEncryption
	// Expiration is an ExpireTime or a TTL. Nil means the secret never
	// expires.
	Expiration Expiration
}

// Expiration is the expiration policy of a Secret: ExpireTime or TTL.
type Expiration interface {
	isExpiration()
}

// ExpireTime expires the secret at a fixed point in time.
type ExpireTime wkt.Timestamp

func (ExpireTime) isExpiration() {}

// TTL expires the secret after a period from creation. It is input only;
// the service reports the computed ExpireTime.
type TTL wkt.Duration

func (TTL) isExpiration() {}

var expirationVariants = []wire.Alternative[Expiration]{
	wire.TimestampVariant("expire_time",
		func(t wkt.Timestamp) Expiration { return ExpireTime(t) },
		func(e Expiration) (wkt.Timestamp, bool) {
			t, ok := e.(ExpireTime)
			return wkt.Timestamp(t), ok
		},
	),
	wire.DurationVariant("ttl",
		func(d wkt.Duration) Expiration { return TTL(d) },
		func(e Expiration) (wkt.Duration, bool) {
			d, ok := e.(TTL)
			return wkt.Duration(d), ok
		},
	),
}

// WireFields implements wire.Message.
func (m *Secret) WireFields() []wire.Field {
	return []wire.Field{
		wire.String("name", &m.Name),
		wire.Nested("replication", &m.Replication),
		wire.Timestamp("create_time", &m.CreateTime),
		wire.StringMap("labels", &m.Labels),
		wire.Repeated("topics", &m.Topics),
		wire.String("etag", &m.Etag),
		wire.Nested("rotation", &m.Rotation),
		wire.Int64Map("version_aliases", &m.VersionAliases),
		wire.StringMap("annotations", &m.Annotations),
		wire.Duration("version_destroy_ttl", &m.VersionDestroyTTL),
		wire.Nested("customer_managed_encryption", &m.CustomerManagedEncryption),
		wire.Union("expiration", &m.Expiration, expirationVariants...),
	}
}

// MarshalJSON implements json.Marshaler.
func (m Secret) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Secret) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// Topic is a Pub/Sub topic that receives secret events.
type Topic struct {
	// Name is the resource name in the format projects/*/topics/*.
	Name string
}

// WireFields implements wire.Message.
func (m *Topic) WireFields() []wire.Field {
	return []wire.Field{wire.String("name", &m.Name)}
}

// MarshalJSON implements json.Marshaler.
func (m Topic) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Topic) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// Rotation controls the rotation schedule of a Secret.
type Rotation struct {
	NextRotationTime *wkt.Timestamp
	// RotationPeriod must be at least an hour and at most 100 years when set.
	RotationPeriod *wkt.Duration
}

// WireFields implements wire.Message.
func (m *Rotation) WireFields() []wire.Field {
	return []wire.Field{
		wire.Timestamp("next_rotation_time", &m.NextRotationTime),
		wire.Duration("rotation_period", &m.RotationPeriod),
	}
}

// MarshalJSON implements json.Marshaler.
func (m Rotation) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *Rotation) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }
