package mysql

import (
	"context"
	"database/sql"

	"restaurantapi/internal/model"
	"restaurantapi/internal/repository"
)

// FoodMySQL is a MySQL implementation of repository.FoodRepository.
type FoodMySQL struct {
	db *sql.DB
}

// NewFoodMySQL creates a new FoodMySQL repository.
func NewFoodMySQL(db *sql.DB) *FoodMySQL {
	return &FoodMySQL{db: db}
}

var _ repository.FoodRepository = (*FoodMySQL)(nil)

func (r *FoodMySQL) List(ctx context.Context) ([]model.Food, error) {
	const q = `SELECT id, name, price, category, description, image_url FROM foods`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Food, 0)
	for rows.Next() {
		var f model.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Price, &f.Category, &f.Description, &f.ImageURL); err != nil {
			return nil, err
		}
		items = append(items, f)
	}
	return items, rows.Err()
}

// Create inserts a food row and returns the AUTO_INCREMENT id.
func (r *FoodMySQL) Create(ctx context.Context, in model.FoodInput, imageURL *string) (int64, error) {
	const q = `INSERT INTO foods (name, price, category, description, image_url) VALUES (?, ?, ?, ?, ?)`
	var img any
	if imageURL != nil {
		img = *imageURL
	}
	res, err := r.db.ExecContext(ctx, q, append(in.Args(), img)...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *FoodMySQL) Update(ctx context.Context, id string, in model.FoodInput) error {
	const q = `UPDATE foods SET name = ?, price = ?, category = ?, description = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, append(in.Args(), id)...)
	return err
}

func (r *FoodMySQL) UpdateWithImage(ctx context.Context, id string, in model.FoodInput, imageURL string) error {
	const q = `UPDATE foods SET name = ?, price = ?, category = ?, description = ?, image_url = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, q, append(in.Args(), imageURL, id)...)
	return err
}

func (r *FoodMySQL) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM foods WHERE id = ?`, id)
	return err
}
