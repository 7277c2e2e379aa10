package mocks

import (
	"context"

	"restaurantapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, creds model.Credentials) error {
	args := m.Called(ctx, creds)
	return args.Error(0)
}
