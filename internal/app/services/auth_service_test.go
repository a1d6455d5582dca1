package services

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadio/backend/internal/app/models/dto"
	"github.com/acadio/backend/internal/app/repositories"
	"github.com/acadio/backend/internal/pkg/apperrors"
	"github.com/acadio/backend/internal/pkg/auth"
)

func newAuthService(t *testing.T) (pgxmock.PgxPoolIface, *AuthService) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret-key",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "acadio.test",
	})
	return mock, NewAuthService(repositories.NewUserRepository(mock), jwtService, zerolog.Nop())
}

func TestSignupRejectsInvalidUsername(t *testing.T) {
	_, svc := newAuthService(t)

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "jane doe", // contains a space
		Password:  "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSignupRejectsTakenUsername(t *testing.T) {
	mock, svc := newAuthService(t)

	mock.ExpectQuery("SELECT 1 FROM users WHERE username").
		WithArgs("jane.doe").
		WillReturnRows(pgxmock.NewRows([]string{"?column?"}).AddRow(1))

	_, err := svc.Signup(context.Background(), &dto.SignupRequest{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.com",
		Username:  "jane.doe",
		Password:  "password123",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
	assert.Equal(t, "Username is already taken", err.Error())
}

func TestLoginUnknownUserMapsToInvalidCredentials(t *testing.T) {
	mock, svc := newAuthService(t)

	mock.ExpectQuery("SELECT .+ FROM users WHERE username").
		WithArgs("ghost").
		WillReturnError(pgx.ErrNoRows)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "ghost",
		Password: "whatever",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	assert.Equal(t, "Invalid username or password", err.Error())
}
