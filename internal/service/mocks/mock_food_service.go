package mocks

import (
	"context"

	"restaurantapi/internal/asset"
	"restaurantapi/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) List(ctx context.Context) ([]model.Food, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Food), args.Error(1)
}

func (m *MockFoodService) Create(ctx context.Context, in model.FoodInput, upload *asset.Upload) (int64, error) {
	args := m.Called(ctx, in, upload)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFoodService) Update(ctx context.Context, id string, in model.FoodInput, upload *asset.Upload) error {
	args := m.Called(ctx, id, in, upload)
	return args.Error(0)
}

func (m *MockFoodService) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
