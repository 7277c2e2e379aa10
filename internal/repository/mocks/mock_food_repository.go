package mocks

import (
	"context"

	"restaurantapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFoodRepository struct {
	mock.Mock
}

func (m *MockFoodRepository) List(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodRepository) Create(ctx context.Context, in model.FoodInput, imageURL *string) (int64, error) {
	args := m.Called(ctx, in, imageURL)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodRepository) Update(ctx context.Context, id string, in model.FoodInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func (m *MockFoodRepository) UpdateWithImage(ctx context.Context, id string, in model.FoodInput, imageURL string) error {
	args := m.Called(ctx, id, in, imageURL)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
