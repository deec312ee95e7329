// Package authgw is the client's gateway to the backend auth service.
//
// It exposes the three logical auth operations - request a one-time code,
// verify it, sign out - plus background token refresh, and normalizes every
// failure into a small classified taxonomy:
//
//   - validator.ValidationErrors: malformed email or code, caught before any
//     network call.
//   - ErrCodeInvalid, ErrCodeExpired, ErrRateLimited: the backend rejected
//     the credentials. Surfaced as user-facing messages.
//   - ErrNetwork: transport failure with no classified backend response.
//     Surfaced like an auth error but logged separately for diagnosis.
//
// Successful verifications publish the new session to the session store;
// failures never touch session state. Sign-out clears the local session
// unconditionally, even when the server-side call fails.
package authgw
