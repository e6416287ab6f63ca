package services

import (
	"context"
	"testing"
	"time"

	"github.com/oakfield/realty/internal/app/models"
	"github.com/oakfield/realty/internal/app/models/dto"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/oakfield/realty/internal/pkg/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
}

func seedUser(t *testing.T) *models.User {
	t.Helper()
	hash, err := auth.HashPassword("s3cret")
	require.NoError(t, err)
	return &models.User{
		ID:           1,
		Username:     "jrealtor",
		PasswordHash: hash,
		FullName:     "Jordan Realtor",
		Role:         models.RoleRealtor,
	}
}

func TestLoginSuccess(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(seedUser(t)), testJWTService())

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jrealtor", Password: "s3cret"})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(seedUser(t)), testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jrealtor", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownUserIndistinguishable(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTService())

	_, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	jwtService := testJWTService()
	svc := NewAuthService(newFakeUserStore(seedUser(t)), jwtService)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{Username: "jrealtor", Password: "s3cret"})
	require.NoError(t, err)

	claims, err := jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(1), claims.UserID)
	assert.Equal(t, "jrealtor", claims.Username)
	assert.Equal(t, models.RoleRealtor, claims.Role)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewAuthService(newFakeUserStore(), testJWTService())

	_, err := svc.GetProfile(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}
