package repository

import (
	"context"

	"restaurantapi/internal/model"
)

// FoodRepository defines data access for the foods table using SQL queries only.
// Every method runs exactly one parameterized statement. Errors from the driver
// are returned as-is.
type FoodRepository interface {
	// List returns every row in whatever order the database yields.
	List(ctx context.Context) ([]model.Food, error)

	// Create inserts a row and returns its generated id. imageURL may be nil.
	Create(ctx context.Context, in model.FoodInput, imageURL *string) (int64, error)

	// Update overwrites name, price, category and description. image_url is untouched.
	Update(ctx context.Context, id string, in model.FoodInput) error

	// UpdateWithImage overwrites the same columns as Update plus image_url.
	UpdateWithImage(ctx context.Context, id string, in model.FoodInput, imageURL string) error

	// Delete removes the row. It returns nil whether or not a row matched.
	Delete(ctx context.Context, id string) error
}
