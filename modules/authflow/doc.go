// Package authflow assembles the auth and session-lifecycle components into
// a single coordinator with an explicit Init/Close lifecycle.
//
// The coordinator subscribes to session changes and reacts: a new session
// starts a background onboarding check for its user, a cleared session
// resets the onboarding status, and every change re-runs the route guard,
// which emits at most one navigation per state transition through the
// injected Navigator. Check results are discarded if the user changed while
// the check was in flight.
//
// Everything is dependency-injected; nothing here touches globals or the
// network directly.
package authflow
