package credstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyalawy/ballers-app/pkg/credstore"
)

func TestNewEncrypted(t *testing.T) {
	t.Parallel()

	t.Run("rejects short key", func(t *testing.T) {
		t.Parallel()

		_, err := credstore.NewEncrypted(credstore.NewMemory(), []byte("too-short"))
		assert.ErrorIs(t, err, credstore.ErrInvalidKey)
	})

	t.Run("accepts generated key", func(t *testing.T) {
		t.Parallel()

		key, err := credstore.GenerateKey()
		require.NoError(t, err)
		require.Len(t, key, credstore.KeySize)

		store, err := credstore.NewEncrypted(credstore.NewMemory(), key)
		require.NoError(t, err)
		require.NotNil(t, store)
	})
}

func TestEncrypted(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	newStore := func(t *testing.T) (*credstore.Encrypted, *credstore.Memory) {
		t.Helper()
		key, err := credstore.GenerateKey()
		require.NoError(t, err)
		inner := credstore.NewMemory()
		store, err := credstore.NewEncrypted(inner, key)
		require.NoError(t, err)
		return store, inner
	}

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t)
		require.NoError(t, store.Set(ctx, "session", `{"access_token":"abc"}`))

		got, err := store.Get(ctx, "session")
		require.NoError(t, err)
		assert.Equal(t, `{"access_token":"abc"}`, got)
	})

	t.Run("stored value is opaque", func(t *testing.T) {
		t.Parallel()

		store, inner := newStore(t)
		require.NoError(t, store.Set(ctx, "session", "plaintext-token"))

		raw, err := inner.Get(ctx, "session")
		require.NoError(t, err)
		assert.NotContains(t, raw, "plaintext-token")
	})

	t.Run("missing key passes through", func(t *testing.T) {
		t.Parallel()

		store, _ := newStore(t)
		_, err := store.Get(ctx, "absent")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})

	t.Run("tampered value fails to open", func(t *testing.T) {
		t.Parallel()

		store, inner := newStore(t)
		require.NoError(t, store.Set(ctx, "session", "token"))
		require.NoError(t, inner.Set(ctx, "session", "bm90LXJlYWwtY2lwaGVydGV4dA=="))

		_, err := store.Get(ctx, "session")
		assert.Error(t, err)
	})

	t.Run("different key cannot decrypt", func(t *testing.T) {
		t.Parallel()

		inner := credstore.NewMemory()
		keyA, err := credstore.GenerateKey()
		require.NoError(t, err)
		keyB, err := credstore.GenerateKey()
		require.NoError(t, err)

		writer, err := credstore.NewEncrypted(inner, keyA)
		require.NoError(t, err)
		reader, err := credstore.NewEncrypted(inner, keyB)
		require.NoError(t, err)

		require.NoError(t, writer.Set(ctx, "session", "token"))
		_, err = reader.Get(ctx, "session")
		assert.ErrorIs(t, err, credstore.ErrDecryptionFailed)
	})

	t.Run("remove delegates to inner store", func(t *testing.T) {
		t.Parallel()

		store, inner := newStore(t)
		require.NoError(t, store.Set(ctx, "session", "token"))
		require.NoError(t, store.Remove(ctx, "session"))

		_, err := inner.Get(ctx, "session")
		assert.ErrorIs(t, err, credstore.ErrNotFound)
	})
}
