package testutil

import (
	"fmt"
	"math/rand"
	"sync"

	"github.com/hupe1980/secretmanager/model"
	"github.com/hupe1980/secretmanager/wkt"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Int64 returns a pseudo-random int64 over the full range.
func (r *RNG) Int64() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.int64Locked()
}

// Bytes returns a payload of 1 to n random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bytesLocked(n)
}

// Timestamp returns a random valid timestamp.
func (r *RNG) Timestamp() wkt.Timestamp {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.timestampLocked()
}

// Duration returns a random valid duration, negative durations included.
func (r *RNG) Duration() wkt.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.durationLocked()
}

// Secret returns a random Secret.
func (r *RNG) Secret() *model.Secret {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.secretLocked()
}

// Secrets returns n random Secrets.
func (r *RNG) Secrets(n int) []model.Secret {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Secret, n)
	for i := range out {
		out[i] = *r.secretLocked()
	}
	return out
}

// SecretVersion returns a random SecretVersion.
func (r *RNG) SecretVersion() *model.SecretVersion {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.versionLocked()
}

// SecretPayload returns a random payload with a matching checksum half of
// the time.
func (r *RNG) SecretPayload() *model.SecretPayload {
	r.mu.Lock()
	defer r.mu.Unlock()

	p := &model.SecretPayload{Data: r.bytesLocked(64)}
	if r.rand.Intn(2) == 0 {
		p.ComputeCRC32C()
	}
	return p
}

// The helpers below expect the caller to hold r.mu.

func (r *RNG) int64Locked() int64 {
	return int64(r.rand.Uint64())
}

func (r *RNG) coin() bool { return r.rand.Intn(2) == 0 }

func (r *RNG) bytesLocked(n int) []byte {
	b := make([]byte, 1+r.rand.Intn(n))
	_, _ = r.rand.Read(b)
	return b
}

// text alphabet includes characters that need escaping in JSON.
var alphabet = []rune("abcdefghijklmnopqrstuvwxyz0123456789-_/\"\\<>& äöü€\n\t")

func (r *RNG) textLocked(maxLen int) string {
	n := r.rand.Intn(maxLen + 1)
	out := make([]rune, n)
	for i := range out {
		out[i] = alphabet[r.rand.Intn(len(alphabet))]
	}
	return string(out)
}

func (r *RNG) timestampLocked() wkt.Timestamp {
	const lo, hi = -62135596800, 253402300799
	return wkt.Timestamp{
		Seconds: lo + r.rand.Int63n(hi-lo+1),
		Nanos:   r.nanosLocked(),
	}
}

// nanosLocked returns whole seconds, millis, micros or nanos with equal
// probability.
func (r *RNG) nanosLocked() int32 {
	switch r.rand.Intn(4) {
	case 0:
		return 0
	case 1:
		return int32(r.rand.Intn(1000)) * 1_000_000
	case 2:
		return int32(r.rand.Intn(1_000_000)) * 1000
	default:
		return int32(r.rand.Intn(1_000_000_000))
	}
}

func (r *RNG) durationLocked() wkt.Duration {
	const maxSeconds = 315576000000
	d := wkt.Duration{Seconds: r.rand.Int63n(maxSeconds + 1), Nanos: r.nanosLocked()}
	if r.coin() {
		d.Seconds, d.Nanos = -d.Seconds, -d.Nanos
	}
	return d
}

func (r *RNG) optionalTimestampLocked() *wkt.Timestamp {
	if r.coin() {
		return nil
	}
	ts := r.timestampLocked()
	return &ts
}

func (r *RNG) optionalDurationLocked() *wkt.Duration {
	if r.coin() {
		return nil
	}
	d := r.durationLocked()
	return &d
}

func (r *RNG) labelsLocked() map[string]string {
	if r.coin() {
		return nil
	}
	m := make(map[string]string)
	for i := range 1 + r.rand.Intn(4) {
		m[fmt.Sprintf("k%d-%s", i, r.textLocked(6))] = r.textLocked(12)
	}
	return m
}

func (r *RNG) aliasesLocked() map[string]int64 {
	if r.coin() {
		return nil
	}
	m := make(map[string]int64)
	for i := range 1 + r.rand.Intn(4) {
		m[fmt.Sprintf("alias%d", i)] = r.int64Locked()
	}
	return m
}

func (r *RNG) encryptionLocked() *model.CustomerManagedEncryption {
	if r.coin() {
		return nil
	}
	return &model.CustomerManagedEncryption{KMSKeyName: "projects/p/locations/global/keyRings/r/cryptoKeys/" + r.textLocked(8)}
}

func (r *RNG) encryptionStatusLocked() *model.CustomerManagedEncryptionStatus {
	if r.coin() {
		return nil
	}
	return &model.CustomerManagedEncryptionStatus{KMSKeyVersionName: "projects/p/locations/global/keyRings/r/cryptoKeys/k/versions/" + r.textLocked(4)}
}

func (r *RNG) replicationLocked() *model.Replication {
	switch r.rand.Intn(3) {
	case 0:
		return nil
	case 1:
		return &model.Replication{Replication: &model.AutomaticReplication{CustomerManagedEncryption: r.encryptionLocked()}}
	default:
		replicas := make([]model.Replica, r.rand.Intn(3))
		for i := range replicas {
			replicas[i] = model.Replica{Location: r.textLocked(10), CustomerManagedEncryption: r.encryptionLocked()}
		}
		return &model.Replication{Replication: &model.UserManagedReplication{Replicas: replicas}}
	}
}

func (r *RNG) replicationStatusLocked() *model.ReplicationStatus {
	switch r.rand.Intn(3) {
	case 0:
		return nil
	case 1:
		return &model.ReplicationStatus{ReplicationStatus: &model.AutomaticStatus{CustomerManagedEncryption: r.encryptionStatusLocked()}}
	default:
		replicas := make([]model.ReplicaStatus, r.rand.Intn(3))
		for i := range replicas {
			replicas[i] = model.ReplicaStatus{Location: r.textLocked(10), CustomerManagedEncryption: r.encryptionStatusLocked()}
		}
		return &model.ReplicationStatus{ReplicationStatus: &model.UserManagedStatus{Replicas: replicas}}
	}
}

func (r *RNG) expirationLocked() model.Expiration {
	switch r.rand.Intn(3) {
	case 0:
		return nil
	case 1:
		return model.ExpireTime(r.timestampLocked())
	default:
		return model.TTL(r.durationLocked())
	}
}

func (r *RNG) topicsLocked() []model.Topic {
	n := r.rand.Intn(4) - 1
	if n < 0 {
		return nil
	}
	topics := make([]model.Topic, n)
	for i := range topics {
		topics[i] = model.Topic{Name: "projects/p/topics/" + r.textLocked(8)}
	}
	return topics
}

func (r *RNG) rotationLocked() *model.Rotation {
	if r.coin() {
		return nil
	}
	return &model.Rotation{
		NextRotationTime: r.optionalTimestampLocked(),
		RotationPeriod:   r.optionalDurationLocked(),
	}
}

func (r *RNG) secretLocked() *model.Secret {
	return &model.Secret{
		Name:                      "projects/p/secrets/" + r.textLocked(16),
		Replication:               r.replicationLocked(),
		CreateTime:                r.optionalTimestampLocked(),
		Labels:                    r.labelsLocked(),
		Topics:                    r.topicsLocked(),
		Etag:                      r.textLocked(8),
		Rotation:                  r.rotationLocked(),
		VersionAliases:            r.aliasesLocked(),
		Annotations:               r.labelsLocked(),
		VersionDestroyTTL:         r.optionalDurationLocked(),
		CustomerManagedEncryption: r.encryptionLocked(),
		Expiration:                r.expirationLocked(),
	}
}

var states = []model.State{
	model.StateUnspecified,
	model.StateEnabled,
	model.StateDisabled,
	model.StateDestroyed,
	"SCHEDULED_FOR_DELETION",
}

func (r *RNG) versionLocked() *model.SecretVersion {
	return &model.SecretVersion{
		Name:                           fmt.Sprintf("projects/p/secrets/s/versions/%d", 1+r.rand.Intn(1000)),
		CreateTime:                     r.optionalTimestampLocked(),
		DestroyTime:                    r.optionalTimestampLocked(),
		State:                          states[r.rand.Intn(len(states))],
		ReplicationStatus:              r.replicationStatusLocked(),
		Etag:                           r.textLocked(8),
		ClientSpecifiedPayloadChecksum: r.coin(),
		ScheduledDestroyTime:           r.optionalTimestampLocked(),
		CustomerManagedEncryption:      r.encryptionStatusLocked(),
	}
}
