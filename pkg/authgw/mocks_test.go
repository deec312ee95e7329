package authgw_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/manyalawy/ballers-app/pkg/session"
)

// MockAPI is a mock implementation of authgw.API.
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) SendCode(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

func (m *MockAPI) VerifyCode(ctx context.Context, email, code string) (*session.Session, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAPI) RefreshSession(ctx context.Context, refreshToken string) (*session.Session, error) {
	args := m.Called(ctx, refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*session.Session), args.Error(1)
}

func (m *MockAPI) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}
