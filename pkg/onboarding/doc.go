// Package onboarding decides whether an authenticated user has finished
// first-time profile setup and provides the write path that completes it.
//
// The completion rule is intentionally simple: a user is onboarded when they
// have selected at least one activity. Checker asks a Storage backend for the
// count and maps the answer to a tri-state Status. Any backend failure maps
// to StatusIncomplete so a flaky network can never skip the setup flow;
// re-running onboarding for an already-complete profile is harmless, while
// skipping it for an incomplete one breaks the app.
//
// Tracker holds the current status alongside the user it belongs to. Checks
// run in the background, so every check is tagged with a generation number
// taken when it starts; results carrying a stale generation are discarded.
// This prevents a slow check for a previous user from overwriting the status
// of the user who signed in after them.
//
// Two Storage implementations are provided: PostgresStorage over a pgx pool
// (with embedded goose migrations) and MongoStorage over the official mongo
// driver.
package onboarding
