package routeguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manyalawy/ballers-app/pkg/onboarding"
	"github.com/manyalawy/ballers-app/pkg/routeguard"
)

func TestGuard_Evaluate(t *testing.T) {
	t.Parallel()

	t.Run("unchanged input yields none the second time", func(t *testing.T) {
		t.Parallel()

		g := routeguard.NewGuard()
		in := routeguard.Input{Location: routeguard.GroupMain}

		require.Equal(t, routeguard.ActionRedirectAuth, g.Evaluate(in))
		assert.Equal(t, routeguard.ActionNone, g.Evaluate(in))
		assert.Equal(t, routeguard.ActionNone, g.Evaluate(in))
	})

	t.Run("changed input re-decides", func(t *testing.T) {
		t.Parallel()

		g := routeguard.NewGuard()
		in := routeguard.Input{Location: routeguard.GroupMain}
		require.Equal(t, routeguard.ActionRedirectAuth, g.Evaluate(in))

		// User lands on the auth screen; nothing more to do.
		in.Location = routeguard.GroupAuth
		assert.Equal(t, routeguard.ActionNone, g.Evaluate(in))

		// Sign-in completes with an unresolved onboarding status.
		in.Authenticated = true
		assert.Equal(t, routeguard.ActionRedirectOnboarding, g.Evaluate(in))
	})

	t.Run("one redirect per transition", func(t *testing.T) {
		t.Parallel()

		g := routeguard.NewGuard()
		in := routeguard.Input{
			Authenticated: true,
			Status:        onboarding.StatusComplete,
			Location:      routeguard.GroupOnboarding,
		}

		actions := 0
		for range 5 {
			if g.Evaluate(in) != routeguard.ActionNone {
				actions++
			}
		}
		assert.Equal(t, 1, actions)
	})
}
