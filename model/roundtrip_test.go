package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/secretmanager/model"
	"github.com/hupe1980/secretmanager/testutil"
	"github.com/hupe1980/secretmanager/wire"
)

func TestRandomSecretsRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := range 500 {
		want := rng.Secret()

		b, err := wire.Marshal(want)
		require.NoError(t, err, "secret %d", i)

		got := &model.Secret{}
		require.NoError(t, wire.Unmarshal(b, got), "secret %d: %s", i, b)
		require.Equal(t, want, got, "secret %d: %s", i, b)
	}
}

func TestRandomVersionsRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(42)

	for i := range 500 {
		want := rng.SecretVersion()

		b, err := wire.Marshal(want)
		require.NoError(t, err, "version %d", i)

		got := &model.SecretVersion{}
		require.NoError(t, wire.Unmarshal(b, got), "version %d: %s", i, b)
		require.Equal(t, want, got, "version %d: %s", i, b)
	}
}

func TestRandomPayloadsRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(7)

	for range 200 {
		want := rng.SecretPayload()

		b, err := wire.Marshal(want)
		require.NoError(t, err)

		got := &model.SecretPayload{}
		require.NoError(t, wire.Unmarshal(b, got))
		require.Equal(t, want, got)
		require.NoError(t, got.VerifyCRC32C())
	}
}

func TestConcurrentRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(99)
	secrets := rng.Secrets(64)

	var g errgroup.Group
	for i := range secrets {
		g.Go(func() error {
			b, err := wire.Marshal(&secrets[i])
			if err != nil {
				return err
			}
			got := &model.Secret{}
			if err := wire.Unmarshal(b, got); err != nil {
				return err
			}
			if !assert.ObjectsAreEqual(&secrets[i], got) {
				return assert.AnError
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
