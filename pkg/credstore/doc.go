// Package credstore persists opaque session tokens behind a minimal
// key-value contract.
//
// The package contains no business logic: adapters only move bytes. The
// session store owns the failure policy - a failed Get degrades to "no
// stored value" (logged-out), a failed Set or Remove is logged and swallowed
// so the in-memory session stays authoritative for the process lifetime.
//
// Adapters:
//
//   - Memory: in-process map, for tests and ephemeral sessions.
//   - Redis: Redis-backed store for integration rigs, with Connect retry
//     handling.
//   - Encrypted: wraps any Store with AES-256-GCM sealing using an
//     HKDF-derived key; this is what makes the store "secure" on hosts
//     without a platform keychain.
package credstore
