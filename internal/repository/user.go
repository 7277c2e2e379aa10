package repository

import "context"

// UserRepository looks up login credentials.
type UserRepository interface {
	// Exists reports whether a row matches username and password exactly.
	Exists(ctx context.Context, username, password string) (bool, error)
}
