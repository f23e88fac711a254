package jwt_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapters "notevault/internal/auth/adapters/services"
	"notevault/internal/auth/domain/services"
)

const (
	testSecret   = "test-secret-key"
	testUserID   = "user-1"
	testUsername = "testuser"
)

func TestGenerateAndValidateAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, 15*time.Minute, 30*24*time.Hour)

	token, expiresAt, err := svc.GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	userID, err := svc.ValidateAccessToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, testUserID, userID)
}

func TestValidateAccessTokenExpired(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, -time.Minute, 30*24*time.Hour)

	token, _, err := svc.GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	userID, err := svc.ValidateAccessToken(ctx, token)

	require.ErrorIs(t, err, services.ErrExpiredJWTToken)
	assert.Empty(t, userID)
}

func TestValidateAccessTokenMalformed(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, 15*time.Minute, 30*24*time.Hour)

	userID, err := svc.ValidateAccessToken(ctx, "not-a-jwt")

	require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	assert.Empty(t, userID)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	ctx := context.Background()
	issuer := adapters.NewJWT(testSecret, 15*time.Minute, 30*24*time.Hour)
	verifier := adapters.NewJWT("another-secret", 15*time.Minute, 30*24*time.Hour)

	token, _, err := issuer.GenerateAccessToken(ctx, testUserID, testUsername)
	require.NoError(t, err)

	userID, err := verifier.ValidateAccessToken(ctx, token)

	require.ErrorIs(t, err, services.ErrInvalidJWTToken)
	assert.Empty(t, userID)
}

func TestGenerateRefreshToken(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT(testSecret, 15*time.Minute, 30*24*time.Hour)

	token, expiresAt, err := svc.GenerateRefreshToken(ctx, testUserID)

	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), expiresAt, 5*time.Second)
}

func TestGenerateAccessTokenEmptySecret(t *testing.T) {
	ctx := context.Background()
	svc := adapters.NewJWT("", 15*time.Minute, 30*24*time.Hour)

	token, _, err := svc.GenerateAccessToken(ctx, testUserID, testUsername)

	require.ErrorIs(t, err, services.ErrGeneratingJWTToken)
	assert.Empty(t, token)
}
