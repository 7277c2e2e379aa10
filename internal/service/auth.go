package service

import (
	"context"
	"errors"

	"restaurantapi/internal/model"
	"restaurantapi/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService checks login credentials against the users table.
type AuthService interface {
	// Login returns nil on an exact username/password match,
	// ErrInvalidCredentials on no match, or the store error.
	Login(ctx context.Context, creds model.Credentials) error
}

type authService struct {
	users repository.UserRepository
}

func NewAuthService(users repository.UserRepository) AuthService {
	return &authService{users: users}
}

// Login compares plain text. There is no hashing, lockout or session.
func (s *authService) Login(ctx context.Context, creds model.Credentials) error {
	ok, err := s.users.Exists(ctx, creds.Username, creds.Password)
	if err != nil {
		return err
	}
	if !ok {
		return ErrInvalidCredentials
	}
	return nil
}
