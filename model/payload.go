package model

import (
	"errors"
	"fmt"
	"hash/crc32"

	"github.com/hupe1980/secretmanager/wire"
)

// ErrChecksumMismatch is returned by VerifyCRC32C when the payload does not
// match its checksum.
var ErrChecksumMismatch = errors.New("model: payload checksum mismatch")

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// SecretPayload is the secret data of a SecretVersion.
type SecretPayload struct {
	// Data is written as standard base64.
	Data []byte
	// DataCRC32C is the CRC32C (Castagnoli) checksum of Data. When set on
	// AddSecretVersion the service verifies it.
	DataCRC32C *int64
}

// WireFields implements wire.Message.
func (m *SecretPayload) WireFields() []wire.Field {
	return []wire.Field{
		wire.Bytes("data", &m.Data),
		wire.OptionalInt64("data_crc32c", &m.DataCRC32C),
	}
}

// MarshalJSON implements json.Marshaler.
func (m SecretPayload) MarshalJSON() ([]byte, error) { return wire.Marshal(&m) }

// UnmarshalJSON implements json.Unmarshaler.
func (m *SecretPayload) UnmarshalJSON(data []byte) error { return wire.Unmarshal(data, m) }

// ComputeCRC32C sets DataCRC32C to the checksum of Data and returns it.
func (m *SecretPayload) ComputeCRC32C() int64 {
	sum := int64(crc32.Checksum(m.Data, castagnoli))
	m.DataCRC32C = &sum
	return sum
}

// VerifyCRC32C checks Data against DataCRC32C. A payload without checksum
// verifies.
func (m *SecretPayload) VerifyCRC32C() error {
	if m.DataCRC32C == nil {
		return nil
	}
	if got := int64(crc32.Checksum(m.Data, castagnoli)); got != *m.DataCRC32C {
		return fmt.Errorf("%w: got %d, want %d", ErrChecksumMismatch, got, *m.DataCRC32C)
	}
	return nil
}
