package onboarding

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/manyalawy/ballers-app/pkg/logger"
	"github.com/manyalawy/ballers-app/pkg/validator"
)

// SkillLevel is the self-declared proficiency attached to a selected
// activity.
type SkillLevel string

const (
	SkillBeginner     SkillLevel = "beginner"
	SkillIntermediate SkillLevel = "intermediate"
	SkillAdvanced     SkillLevel = "advanced"
)

// Activity is one selected activity with its skill level.
type Activity struct {
	ActivityID uuid.UUID
	SkillLevel SkillLevel
}

// Storage is the persistence boundary for the onboarding flow: the
// completion check plus the profile writes performed when the user finishes
// setup.
type Storage interface {
	ActivityCounter
	SaveDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error
	ReplaceActivities(ctx context.Context, userID uuid.UUID, activities []Activity) error
}

// Service performs the one-time profile-completion step: display name plus
// at least one selected activity.
type Service struct {
	storage Storage
	log     *slog.Logger
}

// ServiceOption configures a Service during construction.
type ServiceOption func(*Service)

// WithServiceLogger sets a custom logger for the service.
func WithServiceLogger(log *slog.Logger) ServiceOption {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// NewService creates an onboarding service backed by storage.
func NewService(storage Storage, opts ...ServiceOption) *Service {
	s := &Service{
		storage: storage,
		log:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Complete saves the user's display name and replaces their selected
// activities. At least one activity is required; prior selections are
// discarded so completing twice is idempotent on the last submission.
func (s *Service) Complete(ctx context.Context, userID uuid.UUID, displayName string, activities []Activity) error {
	displayName = strings.TrimSpace(displayName)
	if err := validator.Apply(
		validator.Required("display_name", displayName),
	); err != nil {
		return err
	}
	if len(activities) == 0 {
		return ErrNoActivitiesSelected
	}

	if err := s.storage.SaveDisplayName(ctx, userID, displayName); err != nil {
		return fmt.Errorf("failed to save display name: %w", err)
	}

	if err := s.storage.ReplaceActivities(ctx, userID, activities); err != nil {
		return fmt.Errorf("failed to save activities: %w", err)
	}

	s.log.Info("onboarding completed",
		logger.UserID(userID.String()),
		slog.Int("activities", len(activities)),
		logger.Component("onboarding"),
	)
	return nil
}
