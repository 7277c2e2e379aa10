package postgres

import (
	"context"
	"database/sql"

	"restaurantapi/internal/repository"
)

// UserPostgres is a PostgreSQL implementation of repository.UserRepository.
type UserPostgres struct {
	db *sql.DB
}

func NewUserPostgres(db *sql.DB) *UserPostgres {
	return &UserPostgres{db: db}
}

var _ repository.UserRepository = (*UserPostgres)(nil)

func (r *UserPostgres) Exists(ctx context.Context, username, password string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1 AND password = $2)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, username, password).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
