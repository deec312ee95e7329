// Package session holds the client's authenticated session and is the single
// source of truth for it.
//
// The Store merges session-changed events from every source - one-time-code
// verification, deep-link token exchange, background refresh, sign-out -
// into one authoritative Session value. The value is replaced wholesale on
// every update, so racing sources converge by last-write-wins without
// partial-mutation hazards.
//
// Persistence goes through a credstore.Store and is strictly best-effort:
// read failures degrade to logged out, write failures limit the session to
// the current process lifetime. Neither is ever surfaced to the user.
package session
