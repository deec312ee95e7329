package onboarding

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/manyalawy/ballers-app/pkg/logger"
)

// ActivityCounter is the read-only data-store boundary: the number of
// activities the user has declared. A profile is complete once at least one
// activity exists.
type ActivityCounter interface {
	CountActivities(ctx context.Context, userID uuid.UUID) (int64, error)
}

// Checker determines whether a user's profile setup is complete.
type Checker struct {
	counter ActivityCounter
	log     *slog.Logger
}

// CheckerOption configures a Checker during construction.
type CheckerOption func(*Checker)

// WithCheckerLogger sets a custom logger for the checker.
func WithCheckerLogger(log *slog.Logger) CheckerOption {
	return func(c *Checker) {
		if log != nil {
			c.log = log
		}
	}
}

// NewChecker creates a checker backed by counter.
func NewChecker(counter ActivityCounter, opts ...CheckerOption) *Checker {
	c := &Checker{
		counter: counter,
		log:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Check resolves the onboarding status for userID. A query failure resolves
// to StatusIncomplete - forcing onboarding rather than silently granting
// access - and is logged; Check never returns StatusUnknown.
func (c *Checker) Check(ctx context.Context, userID uuid.UUID) Status {
	count, err := c.counter.CountActivities(ctx, userID)
	if err != nil {
		c.log.Error("failed to check profile completion, forcing onboarding",
			logger.Error(err),
			logger.UserID(userID.String()),
			logger.Component("onboarding"),
		)
		return StatusIncomplete
	}

	if count > 0 {
		return StatusComplete
	}
	return StatusIncomplete
}
