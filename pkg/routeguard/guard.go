package routeguard

import "sync"

// Guard wraps Decide with input deduplication: re-evaluating an unchanged
// input tuple yields ActionNone, so each state transition issues at most one
// redirect no matter how many times the surrounding code re-runs the guard.
type Guard struct {
	mu      sync.Mutex
	hasLast bool
	last    Input
}

// NewGuard creates a guard with no evaluation history.
func NewGuard() *Guard {
	return &Guard{}
}

// Evaluate returns the action for in, or ActionNone when in equals the
// previously evaluated input.
func (g *Guard) Evaluate(in Input) Action {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.hasLast && g.last == in {
		return ActionNone
	}

	g.hasLast = true
	g.last = in
	return Decide(in)
}
