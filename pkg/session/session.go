package session

import (
	"time"

	"github.com/google/uuid"
)

// User is the identity embedded in a session. It is never persisted
// independently of the session that carries it.
type User struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Session is the authenticated credential bundle. Tokens are opaque beyond
// expiry checking. A session value is immutable once published: every update
// replaces the whole value, never mutates it in place.
type Session struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
	User         User      `json:"user"`
}

// IsExpired returns true if the session's access token has expired.
func (s *Session) IsExpired() bool {
	return s != nil && time.Now().After(s.ExpiresAt)
}

// ExpiresWithin reports whether the session expires within d. Used to decide
// when a background refresh is due.
func (s *Session) ExpiresWithin(d time.Duration) bool {
	return s != nil && time.Now().Add(d).After(s.ExpiresAt)
}
