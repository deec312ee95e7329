package authgw

import "sync"

// ResendCooldownSeconds is the advisory wait between code resends. This is
// local UI state, not a security control; the backend enforces its own rate
// limits.
const ResendCooldownSeconds = 60

// PendingVerification is the ephemeral state of a single verify-code screen:
// the address the code was sent to and the resend cooldown. It is never
// persisted and is discarded when the screen goes away.
type PendingVerification struct {
	Email string

	mu        sync.Mutex
	remaining int
}

// NewPendingVerification creates pending state for the given address with no
// cooldown running.
func NewPendingVerification(email string) *PendingVerification {
	return &PendingVerification{Email: email}
}

// StartCooldown arms the resend countdown at ResendCooldownSeconds.
func (p *PendingVerification) StartCooldown() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.remaining = ResendCooldownSeconds
}

// Tick advances the countdown by one second and returns the remaining
// seconds. The countdown never goes below zero.
func (p *PendingVerification) Tick() int {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.remaining > 0 {
		p.remaining--
	}
	return p.remaining
}

// Remaining returns the seconds left on the cooldown.
func (p *PendingVerification) Remaining() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.remaining
}

// CanResend reports whether a resend is currently allowed.
func (p *PendingVerification) CanResend() bool {
	return p.Remaining() == 0
}
