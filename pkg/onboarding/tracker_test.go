package onboarding_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyalawy/ballers-app/pkg/onboarding"
)

func TestTracker_SetUser(t *testing.T) {
	t.Parallel()

	t.Run("starts unknown with no user", func(t *testing.T) {
		t.Parallel()

		tr := onboarding.NewTracker()
		assert.Equal(t, onboarding.StatusUnknown, tr.Status())

		_, _, ok := tr.Current()
		assert.False(t, ok)
	})

	t.Run("new user resets status to unknown", func(t *testing.T) {
		t.Parallel()

		tr := onboarding.NewTracker()
		gen := tr.SetUser(uuid.New())
		require.True(t, tr.Resolve(gen, onboarding.StatusComplete))
		require.Equal(t, onboarding.StatusComplete, tr.Status())

		tr.SetUser(uuid.New())
		assert.Equal(t, onboarding.StatusUnknown, tr.Status())
	})

	t.Run("same user keeps resolved status", func(t *testing.T) {
		t.Parallel()

		userID := uuid.New()
		tr := onboarding.NewTracker()
		gen := tr.SetUser(userID)
		require.True(t, tr.Resolve(gen, onboarding.StatusComplete))

		gen2 := tr.SetUser(userID)
		assert.Equal(t, gen, gen2)
		assert.Equal(t, onboarding.StatusComplete, tr.Status())
	})
}

func TestTracker_Resolve(t *testing.T) {
	t.Parallel()

	t.Run("applies current generation", func(t *testing.T) {
		t.Parallel()

		tr := onboarding.NewTracker()
		gen := tr.SetUser(uuid.New())

		assert.True(t, tr.Resolve(gen, onboarding.StatusIncomplete))
		assert.Equal(t, onboarding.StatusIncomplete, tr.Status())
	})

	t.Run("discards stale generation after user change", func(t *testing.T) {
		t.Parallel()

		tr := onboarding.NewTracker()
		staleGen := tr.SetUser(uuid.New())

		// Second user signs in before the first user's check resolves.
		tr.SetUser(uuid.New())

		assert.False(t, tr.Resolve(staleGen, onboarding.StatusComplete))
		assert.Equal(t, onboarding.StatusUnknown, tr.Status())
	})

	t.Run("discards result after sign out", func(t *testing.T) {
		t.Parallel()

		tr := onboarding.NewTracker()
		gen := tr.SetUser(uuid.New())
		tr.ClearUser()

		assert.False(t, tr.Resolve(gen, onboarding.StatusComplete))
		assert.Equal(t, onboarding.StatusUnknown, tr.Status())
	})

	t.Run("slow check for previous user never wins", func(t *testing.T) {
		t.Parallel()

		first := uuid.New()
		second := uuid.New()

		tr := onboarding.NewTracker()
		firstGen := tr.SetUser(first)

		// First user signs out, second signs in, and the second user's
		// check resolves first.
		tr.ClearUser()
		secondGen := tr.SetUser(second)
		require.True(t, tr.Resolve(secondGen, onboarding.StatusIncomplete))

		// The lagging result for the first user arrives last.
		assert.False(t, tr.Resolve(firstGen, onboarding.StatusComplete))
		assert.Equal(t, onboarding.StatusIncomplete, tr.Status())
	})
}

func TestTracker_Current(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	tr := onboarding.NewTracker()
	gen := tr.SetUser(userID)

	gotID, gotGen, ok := tr.Current()
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, gen, gotGen)
}
