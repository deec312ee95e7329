package onboarding

import (
	"sync"

	"github.com/google/uuid"
)

// Tracker holds the onboarding status for the current user id and discards
// results from checks that were started for a superseded user. Every user
// change bumps a generation; a check result is applied only when its
// generation is still current at resolution time.
//
// This closes the rapid sign-out/sign-in race: a slow check for the previous
// user can never overwrite the status of the next one.
type Tracker struct {
	mu         sync.Mutex
	userID     uuid.UUID
	hasUser    bool
	status     Status
	generation uint64
}

// NewTracker creates a tracker with no user and StatusUnknown.
func NewTracker() *Tracker {
	return &Tracker{}
}

// SetUser makes userID the current user and returns the generation to pass
// to Resolve. A changed user id resets the status to StatusUnknown and
// invalidates all in-flight checks; re-setting the same user keeps the
// resolved status.
func (t *Tracker) SetUser(userID uuid.UUID) uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.hasUser && t.userID == userID {
		return t.generation
	}

	t.userID = userID
	t.hasUser = true
	t.status = StatusUnknown
	t.generation++
	return t.generation
}

// ClearUser drops the current user (sign-out or expiry). The status resets
// to StatusUnknown and in-flight checks are invalidated.
func (t *Tracker) ClearUser() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.userID = uuid.UUID{}
	t.hasUser = false
	t.status = StatusUnknown
	t.generation++
}

// Resolve applies a check result if gen is still the current generation.
// Returns true when the result was applied, false when it was discarded as
// stale.
func (t *Tracker) Resolve(gen uint64, status Status) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.hasUser || gen != t.generation {
		return false
	}

	t.status = status
	return true
}

// Status returns the current user's onboarding status; StatusUnknown when no
// user is set or no check has resolved yet.
func (t *Tracker) Status() Status {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status
}

// Current returns the current user id, the generation for a new check, and
// whether a user is set at all.
func (t *Tracker) Current() (uuid.UUID, uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.userID, t.generation, t.hasUser
}
