package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/secretmanager/apierror"
	"github.com/hupe1980/secretmanager/wkt"
)

func TestInt64(t *testing.T) {
	t.Run("EncodeAsString", func(t *testing.T) {
		assert.Equal(t, `"9223372036854775807"`, string(EncodeInt64(9223372036854775807)))
		assert.Equal(t, `"-42"`, string(EncodeInt64(-42)))
		assert.Equal(t, `"0"`, string(EncodeInt64(0)))
	})

	t.Run("Decode", func(t *testing.T) {
		v, err := DecodeInt64([]byte(`"9223372036854775807"`))
		require.NoError(t, err)
		assert.Equal(t, int64(9223372036854775807), v)

		v, err = DecodeInt64([]byte(`"-9223372036854775808"`))
		require.NoError(t, err)
		assert.Equal(t, int64(-9223372036854775808), v)
	})

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"BareNumber", `9223372036854775807`, ErrShape},
		{"BareSmallNumber", `42`, ErrShape},
		{"Plus", `"+1"`, ErrShape},
		{"Empty", `""`, ErrShape},
		{"Fraction", `"1.0"`, ErrShape},
		{"Space", `" 1"`, ErrShape},
		{"Overflow", `"9223372036854775808"`, ErrRange},
		{"Bool", `true`, ErrShape},
		{"Invalid", `"1`, ErrSyntax},
	}
	for _, tt := range tests {
		t.Run("Reject/"+tt.name, func(t *testing.T) {
			_, err := DecodeInt64([]byte(tt.token))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)
			assert.True(t, apierror.IsKind(err, apierror.KindSerialization))
		})
	}
}

func TestInt32(t *testing.T) {
	assert.Equal(t, "-7", string(EncodeInt32(-7)))

	valid := []struct {
		token string
		want  int32
	}{
		{`5`, 5},
		{`-7`, -7},
		{`1e3`, 1000},
		{`2.0`, 2},
		{`2147483647`, 2147483647},
		{`-2147483648`, -2147483648},
	}
	for _, tt := range valid {
		got, err := DecodeInt32([]byte(tt.token))
		require.NoError(t, err, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}

	invalid := []struct {
		token string
		want  error
	}{
		{`1.5`, ErrShape},
		{`2147483648`, ErrRange},
		{`-2147483649`, ErrRange},
		{`"5"`, ErrShape},
		{`null`, ErrShape},
	}
	for _, tt := range invalid {
		_, err := DecodeInt32([]byte(tt.token))
		assert.ErrorIs(t, err, tt.want, tt.token)
	}
}

func TestBytes(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, `""`, string(EncodeBytes(nil)))
		assert.Equal(t, `""`, string(EncodeBytes([]byte{})))

		got, err := DecodeBytes([]byte(`""`))
		require.NoError(t, err)
		assert.Len(t, got, 0)
	})

	t.Run("StandardAlphabet", func(t *testing.T) {
		data := []byte{0xfb, 0xff, 0xfe}
		assert.Equal(t, `"+//+"`, string(EncodeBytes(data)))

		got, err := DecodeBytes([]byte(`"+//+"`))
		require.NoError(t, err)
		assert.Equal(t, data, got)
	})

	t.Run("Padded", func(t *testing.T) {
		assert.Equal(t, `"aGVsbG8="`, string(EncodeBytes([]byte("hello"))))

		got, err := DecodeBytes([]byte(`"aGVsbG8="`))
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), got)
	})

	for _, token := range []string{
		`"aGVsbG8"`,
		`"aGVsbG8=="`,
		`"aGVsbG9="`,
		`"-_8="`,
		`"aGVs bG8="`,
		`"aGVs\nbG8="`,
		`"a"`,
	} {
		t.Run("Reject/"+token, func(t *testing.T) {
			_, err := DecodeBytes([]byte(token))
			assert.ErrorIs(t, err, ErrBase64)
			assert.True(t, apierror.IsKind(err, apierror.KindSerialization))
		})
	}

	_, err := DecodeBytes([]byte(`5`))
	assert.ErrorIs(t, err, ErrShape)
}

func TestBoolAndString(t *testing.T) {
	assert.Equal(t, "true", string(EncodeBool(true)))
	assert.Equal(t, `"a\"b"`, string(EncodeString(`a"b`)))

	b, err := DecodeBool([]byte(`false`))
	require.NoError(t, err)
	assert.False(t, b)

	_, err = DecodeBool([]byte(`"true"`))
	assert.ErrorIs(t, err, ErrShape)

	s, err := DecodeString([]byte(`"café"`))
	require.NoError(t, err)
	assert.Equal(t, "café", s)

	_, err = DecodeString([]byte(`1`))
	assert.ErrorIs(t, err, ErrShape)
}

func TestWellKnownTokens(t *testing.T) {
	t.Run("Timestamp", func(t *testing.T) {
		b, err := EncodeTimestamp(wkt.Timestamp{Seconds: 1714566600, Nanos: 250_000_000})
		require.NoError(t, err)
		assert.Equal(t, `"2024-05-01T12:30:00.250Z"`, string(b))

		ts, err := DecodeTimestamp(b)
		require.NoError(t, err)
		assert.Equal(t, wkt.Timestamp{Seconds: 1714566600, Nanos: 250_000_000}, ts)

		_, err = DecodeTimestamp([]byte(`1714566600`))
		assert.ErrorIs(t, err, ErrShape)

		_, err = DecodeTimestamp([]byte(`"2024-05-01"`))
		assert.ErrorIs(t, err, wkt.ErrInvalidTimestamp)
		assert.True(t, apierror.IsKind(err, apierror.KindSerialization))

		_, err = EncodeTimestamp(wkt.Timestamp{Nanos: -1})
		assert.ErrorIs(t, err, wkt.ErrInvalidTimestamp)
	})

	t.Run("Duration", func(t *testing.T) {
		b, err := EncodeDuration(wkt.Duration{Seconds: -1, Nanos: -500_000_000})
		require.NoError(t, err)
		assert.Equal(t, `"-1.500s"`, string(b))

		d, err := DecodeDuration(b)
		require.NoError(t, err)
		assert.Equal(t, wkt.Duration{Seconds: -1, Nanos: -500_000_000}, d)

		_, err = DecodeDuration([]byte(`"1h"`))
		assert.ErrorIs(t, err, wkt.ErrInvalidDuration)
	})

	t.Run("FieldMask", func(t *testing.T) {
		b, err := EncodeFieldMask(wkt.NewFieldMask("labels", "version_destroy_ttl"))
		require.NoError(t, err)
		assert.Equal(t, `"labels,versionDestroyTtl"`, string(b))

		fm, err := DecodeFieldMask(b)
		require.NoError(t, err)
		assert.Equal(t, []string{"labels", "version_destroy_ttl"}, fm.Paths)

		_, err = DecodeFieldMask([]byte(`["labels"]`))
		assert.ErrorIs(t, err, ErrShape)
	})
}

func TestJSONName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"name", "name"},
		{"create_time", "createTime"},
		{"data_crc32c", "dataCrc32c"},
		{"client_specified_payload_checksum", "clientSpecifiedPayloadChecksum"},
		{"kms_key_version_name", "kmsKeyVersionName"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, JSONName(tt.in), tt.in)
	}
}
