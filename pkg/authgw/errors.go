package authgw

import "errors"

// Network errors: transport failed before a classified backend response.
// Surfaced to the user like auth errors but distinguished in logs.
var ErrNetwork = errors.New("authgw: network failure")

// Auth errors: the backend rejected the credentials.
var (
	ErrCodeInvalid = errors.New("authgw: invalid one-time code")
	ErrCodeExpired = errors.New("authgw: one-time code expired")
	ErrRateLimited = errors.New("authgw: too many requests, try again later")
)

// Request errors.
var (
	// ErrInvalidRequest indicates the backend rejected the request as
	// malformed. Input validated client-side should never trigger it.
	ErrInvalidRequest = errors.New("authgw: malformed request")

	// ErrNoSession indicates an operation that needs an active session was
	// called without one.
	ErrNoSession = errors.New("authgw: no active session")
)
