package postgres

import (
	"context"
	"database/sql"

	"restaurantapi/internal/model"
	"restaurantapi/internal/repository"
)

// FoodPostgres is a PostgreSQL implementation of repository.FoodRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type FoodPostgres struct {
	db *sql.DB
}

// NewFoodPostgres creates a new FoodPostgres repository.
func NewFoodPostgres(db *sql.DB) *FoodPostgres {
	return &FoodPostgres{db: db}
}

var _ repository.FoodRepository = (*FoodPostgres)(nil)

// List returns all foods. No ORDER BY: ordering is whatever the planner yields.
func (r *FoodPostgres) List(ctx context.Context) ([]model.Food, error) {
	const q = `SELECT id, name, price, category, description, image_url FROM foods`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Price,
			&f.Category,
			&f.Description,
			&f.ImageURL,
		); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Create inserts a food row and returns the id assigned by the SERIAL column.
func (r *FoodPostgres) Create(ctx context.Context, in model.FoodInput, imageURL *string) (int64, error) {
	const q = `
		INSERT INTO foods (name, price, category, description, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	args := append(in.Args(), nullableURL(imageURL))
	var id int64
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the four editable columns and leaves image_url alone.
func (r *FoodPostgres) Update(ctx context.Context, id string, in model.FoodInput) error {
	const q = `UPDATE foods SET name = $1, price = $2, category = $3, description = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, q, append(in.Args(), id)...)
	return err
}

// UpdateWithImage overwrites the four editable columns and image_url.
func (r *FoodPostgres) UpdateWithImage(ctx context.Context, id string, in model.FoodInput, imageURL string) error {
	const q = `UPDATE foods SET name = $1, price = $2, category = $3, description = $4, image_url = $5 WHERE id = $6`
	_, err := r.db.ExecContext(ctx, q, append(in.Args(), imageURL, id)...)
	return err
}

// Delete removes a food by ID. It does not return an error if the row does not exist.
func (r *FoodPostgres) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM foods WHERE id = $1`
	_, err := r.db.ExecContext(ctx, q, id)
	return err
}

func nullableURL(u *string) any {
	if u == nil {
		return nil
	}
	return *u
}
