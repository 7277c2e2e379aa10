package service

import (
	"context"
	"errors"
	"testing"

	"restaurantapi/internal/model"
	repoMocks "restaurantapi/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		creds      model.Credentials
		setupMocks func(m *repoMocks.MockUserRepository)
		wantErr    error
		wantErrMsg string
	}{
		{
			name:  "match",
			creds: model.Credentials{Username: "admin", Password: "1234"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Exists", ctx, "admin", "1234").Return(true, nil)
			},
		},
		{
			name:  "no match",
			creds: model.Credentials{Username: "admin", Password: "12345"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Exists", ctx, "admin", "12345").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "empty credentials are looked up like any other",
			creds: model.Credentials{},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Exists", ctx, "", "").Return(false, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "store error",
			creds: model.Credentials{Username: "admin", Password: "1234"},
			setupMocks: func(m *repoMocks.MockUserRepository) {
				m.On("Exists", ctx, "admin", "1234").Return(false, errors.New("connection refused"))
			},
			wantErrMsg: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := new(repoMocks.MockUserRepository)
			tt.setupMocks(mRepo)

			err := NewAuthService(mRepo).Login(ctx, tt.creds)

			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.wantErrMsg != "":
				assert.EqualError(t, err, tt.wantErrMsg)
				assert.NotErrorIs(t, err, ErrInvalidCredentials)
			default:
				assert.NoError(t, err)
			}
			mRepo.AssertExpectations(t)
		})
	}
}
