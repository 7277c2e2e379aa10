package mysql

import (
	"context"
	"database/sql"

	"restaurantapi/internal/repository"
)

// UserMySQL is a MySQL implementation of repository.UserRepository.
type UserMySQL struct {
	db *sql.DB
}

func NewUserMySQL(db *sql.DB) *UserMySQL {
	return &UserMySQL{db: db}
}

var _ repository.UserRepository = (*UserMySQL)(nil)

// Exists compares both columns with plain equality; the collation of the
// users table decides case sensitivity.
func (r *UserMySQL) Exists(ctx context.Context, username, password string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM users WHERE username = ? AND password = ?)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, username, password).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}
