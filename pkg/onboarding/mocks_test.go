package onboarding_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/manyalawy/ballers-app/pkg/onboarding"
)

// MockStorage is a testify mock for the onboarding.Storage interface.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) CountActivities(ctx context.Context, userID uuid.UUID) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStorage) SaveDisplayName(ctx context.Context, userID uuid.UUID, displayName string) error {
	args := m.Called(ctx, userID, displayName)
	return args.Error(0)
}

func (m *MockStorage) ReplaceActivities(ctx context.Context, userID uuid.UUID, activities []onboarding.Activity) error {
	args := m.Called(ctx, userID, activities)
	return args.Error(0)
}
