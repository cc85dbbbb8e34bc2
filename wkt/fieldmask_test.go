package wkt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldMask(t *testing.T) {
	tests := []struct {
		name string
		mask FieldMask
		want string
	}{
		{"Empty", FieldMask{}, ""},
		{"Single", NewFieldMask("labels"), "labels"},
		{"Multiple", NewFieldMask("labels", "version_aliases", "rotation.rotation_period"), "labels,versionAliases,rotation.rotationPeriod"},
		{"Digits", NewFieldMask("data_crc32c"), "dataCrc32c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.mask.Format()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			parsed, err := ParseFieldMask(got)
			require.NoError(t, err)
			assert.Equal(t, tt.mask, parsed)
		})
	}
}

func TestFieldMaskInvalid(t *testing.T) {
	for _, mask := range []FieldMask{
		NewFieldMask(""),
		NewFieldMask("Labels"),
		NewFieldMask("labels_"),
		NewFieldMask("data_1"),
		NewFieldMask("a-b"),
		NewFieldMask("a,b"),
		NewFieldMask(" x"),
		NewFieldMask("labels", "etag "),
	} {
		_, err := mask.Format()
		assert.ErrorIs(t, err, ErrInvalidFieldMask, "paths %q", mask.Paths)
	}

	for _, in := range []string{",", "labels,", "labels,,etag", "version_aliases", "labels etag"} {
		t.Run("Reject/"+in, func(t *testing.T) {
			_, err := ParseFieldMask(in)
			assert.ErrorIs(t, err, ErrInvalidFieldMask)
		})
	}
}

func TestFieldMaskEmpty(t *testing.T) {
	mask := NewFieldMask([]string{}...)
	assert.Nil(t, mask.Paths)

	got, err := mask.Format()
	require.NoError(t, err)
	assert.Equal(t, "", got)

	parsed, err := ParseFieldMask(got)
	require.NoError(t, err)
	assert.Equal(t, mask, parsed)

	got, err = FieldMask{Paths: []string{}}.Format()
	require.NoError(t, err)
	assert.Equal(t, "", got)
}
