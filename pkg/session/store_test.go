package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyalawy/ballers-app/pkg/credstore"
	"github.com/manyalawy/ballers-app/pkg/session"
)

// failingStore simulates a broken credential store.
type failingStore struct{}

func (failingStore) Get(ctx context.Context, key string) (string, error) {
	return "", errors.New("keychain unavailable")
}

func (failingStore) Set(ctx context.Context, key, value string) error {
	return errors.New("keychain unavailable")
}

func (failingStore) Remove(ctx context.Context, key string) error {
	return errors.New("keychain unavailable")
}

func newSession(email string) *session.Session {
	return &session.Session{
		AccessToken:  "access-" + email,
		RefreshToken: "refresh-" + email,
		ExpiresAt:    time.Now().Add(time.Hour),
		User:         session.User{ID: uuid.New(), Email: email},
	}
}

func TestStoreInit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("fresh install resolves to absent", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()

		assert.True(t, store.Loading())
		require.NoError(t, store.Init(ctx))

		assert.False(t, store.Loading())
		assert.Nil(t, store.Current())
	})

	t.Run("restores persisted session", func(t *testing.T) {
		t.Parallel()

		creds := credstore.NewMemory()
		persisted := newSession("a@b.com")
		raw, err := json.Marshal(persisted)
		require.NoError(t, err)
		require.NoError(t, creds.Set(ctx, session.DefaultStorageKey, string(raw)))

		store := session.New(creds)
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		current := store.Current()
		require.NotNil(t, current)
		assert.Equal(t, persisted.User.ID, current.User.ID)
		assert.Equal(t, persisted.AccessToken, current.AccessToken)
		assert.False(t, store.Loading())
	})

	t.Run("credential store failure fails open to logged out", func(t *testing.T) {
		t.Parallel()

		store := session.New(failingStore{})
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		assert.Nil(t, store.Current())
		assert.False(t, store.Loading())
	})

	t.Run("malformed persisted value fails open", func(t *testing.T) {
		t.Parallel()

		creds := credstore.NewMemory()
		require.NoError(t, creds.Set(ctx, session.DefaultStorageKey, "{not json"))

		store := session.New(creds)
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		assert.Nil(t, store.Current())
	})

	t.Run("init is idempotent", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		signedIn := newSession("a@b.com")
		store.Set(ctx, signedIn)

		require.NoError(t, store.Init(ctx))
		assert.Equal(t, signedIn, store.Current())
	})
}

func TestStoreSet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("replaces session wholesale", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		first := newSession("x@b.com")
		second := newSession("y@b.com")
		store.Set(ctx, first)
		store.Set(ctx, second)

		assert.Equal(t, second, store.Current())
	})

	t.Run("persists through credential store", func(t *testing.T) {
		t.Parallel()

		creds := credstore.NewMemory()
		store := session.New(creds)
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		signedIn := newSession("a@b.com")
		store.Set(ctx, signedIn)

		raw, err := creds.Get(ctx, session.DefaultStorageKey)
		require.NoError(t, err)

		var persisted session.Session
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Equal(t, signedIn.User.ID, persisted.User.ID)
	})

	t.Run("persistence failure is swallowed", func(t *testing.T) {
		t.Parallel()

		store := session.New(failingStore{})
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		signedIn := newSession("a@b.com")
		store.Set(ctx, signedIn)

		// In-memory store stays authoritative
		assert.Equal(t, signedIn, store.Current())
	})

	t.Run("set before init resolves loading", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()

		store.Set(ctx, newSession("a@b.com"))
		assert.False(t, store.Loading())
	})

	t.Run("racing sets persist the last-applied session", func(t *testing.T) {
		t.Parallel()

		creds := credstore.NewMemory()
		store := session.New(creds)
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		var wg sync.WaitGroup
		for i := range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Set(ctx, newSession(fmt.Sprintf("user%d@b.com", i)))
			}()
		}
		wg.Wait()

		raw, err := creds.Get(ctx, session.DefaultStorageKey)
		require.NoError(t, err)

		var persisted session.Session
		require.NoError(t, json.Unmarshal([]byte(raw), &persisted))
		assert.Equal(t, store.Current().AccessToken, persisted.AccessToken)
	})
}

func TestStoreClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	creds := credstore.NewMemory()
	store := session.New(creds)
	defer store.Close()
	require.NoError(t, store.Init(ctx))

	store.Set(ctx, newSession("a@b.com"))
	store.Clear(ctx)

	assert.Nil(t, store.Current())

	_, err := creds.Get(ctx, session.DefaultStorageKey)
	assert.ErrorIs(t, err, credstore.ErrNotFound)
}

func TestStoreSubscribe(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("changes arrive in apply order", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()

		sub := store.Subscribe()
		defer sub.Unsubscribe()

		require.NoError(t, store.Init(ctx))
		first := newSession("x@b.com")
		store.Set(ctx, first)
		store.Clear(ctx)

		initial := <-sub.C()
		assert.Nil(t, initial.Old)
		assert.Nil(t, initial.New)
		assert.False(t, initial.Loading)

		signIn := <-sub.C()
		assert.Nil(t, signIn.Old)
		assert.Equal(t, first, signIn.New)

		signOut := <-sub.C()
		assert.Equal(t, first, signOut.Old)
		assert.Nil(t, signOut.New)
	})

	t.Run("each transition published exactly once", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		sub := store.Subscribe()
		defer sub.Unsubscribe()

		signedIn := newSession("a@b.com")
		store.Set(ctx, signedIn)

		change := <-sub.C()
		assert.Equal(t, signedIn.User.ID, change.New.User.ID)

		select {
		case extra := <-sub.C():
			t.Fatalf("unexpected extra change: %+v", extra)
		case <-time.After(50 * time.Millisecond):
		}
	})

	t.Run("unsubscribed handle receives nothing after release", func(t *testing.T) {
		t.Parallel()

		store := session.New(credstore.NewMemory())
		defer store.Close()
		require.NoError(t, store.Init(ctx))

		sub := store.Subscribe()
		sub.Unsubscribe()

		store.Set(ctx, newSession("a@b.com"))
		_, open := <-sub.C()
		assert.False(t, open)
	})
}

func TestSessionExpiry(t *testing.T) {
	t.Parallel()

	live := &session.Session{ExpiresAt: time.Now().Add(time.Hour)}
	assert.False(t, live.IsExpired())
	assert.False(t, live.ExpiresWithin(30*time.Minute))
	assert.True(t, live.ExpiresWithin(2*time.Hour))

	stale := &session.Session{ExpiresAt: time.Now().Add(-time.Minute)}
	assert.True(t, stale.IsExpired())

	var absent *session.Session
	assert.False(t, absent.IsExpired())
}
