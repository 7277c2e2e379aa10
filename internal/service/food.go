package service

import (
	"context"

	"restaurantapi/internal/asset"
	"restaurantapi/internal/model"
	"restaurantapi/internal/repository"
)

// FoodService defines the menu use cases.
type FoodService interface {
	// List returns every food, unordered.
	List(ctx context.Context) ([]model.Food, error)

	// Create stores the optional upload first, then inserts the row with its URL
	// (or NULL). Returns the generated id.
	Create(ctx context.Context, in model.FoodInput, upload *asset.Upload) (int64, error)

	// Update always overwrites the four input columns. image_url changes only
	// when an upload is supplied. Succeeds even if no row has the id.
	Update(ctx context.Context, id string, in model.FoodInput, upload *asset.Upload) error

	// Delete removes the row. The stored image, if any, is kept.
	Delete(ctx context.Context, id string) error
}

// foodService is a concrete implementation of FoodService.
type foodService struct {
	assets *asset.Store
	repo   repository.FoodRepository
}

// NewFoodService constructs a new FoodService.
func NewFoodService(assets *asset.Store, repo repository.FoodRepository) FoodService {
	return &foodService{assets: assets, repo: repo}
}

func (s *foodService) List(ctx context.Context) ([]model.Food, error) {
	return s.repo.List(ctx)
}

func (s *foodService) Create(ctx context.Context, in model.FoodInput, upload *asset.Upload) (int64, error) {
	ref, err := s.assets.Save(ctx, upload)
	if err != nil {
		return 0, err
	}
	var imageURL *string
	if ref != nil {
		imageURL = &ref.URL
	}
	// A failed insert leaves the stored file behind.
	return s.repo.Create(ctx, in, imageURL)
}

func (s *foodService) Update(ctx context.Context, id string, in model.FoodInput, upload *asset.Upload) error {
	if upload == nil {
		return s.repo.Update(ctx, id, in)
	}
	ref, err := s.assets.Save(ctx, upload)
	if err != nil {
		return err
	}
	// The previous image file is not removed.
	return s.repo.UpdateWithImage(ctx, id, in, ref.URL)
}

func (s *foodService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
