// Package routeguard maps auth and onboarding state to the screen group the
// user must be in.
//
// Decide is a pure function over an Input tuple {loading, authenticated,
// onboarding status, current location} and returns at most one redirect.
// While the session store is still loading no navigation happens; an
// unresolved onboarding status keeps the user on the onboarding screen
// rather than letting them through.
//
// Guard adds the statefulness the pure function cannot: it remembers the
// last evaluated input and answers ActionNone for repeats, so wiring the
// guard to a change feed that may fire redundantly is safe.
package routeguard
