package authusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notevault/internal/auth/app"
	"notevault/internal/auth/domain/entities"
	"notevault/internal/auth/domain/services"
)

func TestRefreshTokens(t *testing.T) {
	refreshTokenValue := "refresh-token-123"

	user := &entities.User{
		ID:       "user-1",
		Username: "testuser",
	}

	storedToken := &services.RefreshToken{
		ID:        "token-id",
		UserID:    user.ID,
		Token:     refreshTokenValue,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	}

	accessExpires := time.Now().Add(15 * time.Minute)
	refreshExpires := time.Now().Add(30 * 24 * time.Hour)

	t.Run("Success - tokens rotated", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		passwordSvc := new(mockPasswordService)
		tokenSvc := new(mockTokenService)

		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).Return(storedToken, nil).Once()
		userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil).Once()
		tokenRepo.On("RevokeToken", mock.Anything, refreshTokenValue).Return(nil).Once()
		tokenSvc.On("GenerateAccessToken", mock.Anything, user.ID, user.Username).
			Return("new-access", accessExpires, nil).Once()
		tokenSvc.On("GenerateRefreshToken", mock.Anything, user.ID).
			Return("new-refresh", refreshExpires, nil).Once()
		tokenRepo.On("StoreRefreshToken", mock.Anything, mock.MatchedBy(func(tok *services.RefreshToken) bool {
			return tok.Token == "new-refresh" && tok.UserID == user.ID
		})).Return(nil).Once()

		uc := app.NewAuthUseCase(userRepo, tokenRepo, passwordSvc, tokenSvc)
		pair, err := uc.RefreshTokens(context.Background(), refreshTokenValue)

		require.NoError(t, err)
		require.NotNil(t, pair)
		assert.Equal(t, "new-access", pair.AccessToken)
		assert.Equal(t, "new-refresh", pair.RefreshToken)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("Error - unknown refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		tokenSvc := new(mockTokenService)

		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).
			Return(nil, errors.New("not found")).Once()

		uc := app.NewAuthUseCase(userRepo, tokenRepo, new(mockPasswordService), tokenSvc)
		pair, err := uc.RefreshTokens(context.Background(), refreshTokenValue)

		require.ErrorIs(t, err, services.ErrInvalidRefreshToken)
		assert.Nil(t, pair)
	})

	t.Run("Error - revoked refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		tokenSvc := new(mockTokenService)

		revoked := &services.RefreshToken{
			UserID:    user.ID,
			Token:     refreshTokenValue,
			ExpiresAt: time.Now().Add(24 * time.Hour),
			IsRevoked: true,
		}
		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).Return(revoked, nil).Once()

		uc := app.NewAuthUseCase(userRepo, tokenRepo, new(mockPasswordService), tokenSvc)
		pair, err := uc.RefreshTokens(context.Background(), refreshTokenValue)

		require.ErrorIs(t, err, services.ErrRevokedRefreshToken)
		assert.Nil(t, pair)
		tokenRepo.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything)
	})

	t.Run("Error - expired refresh token", func(t *testing.T) {
		userRepo := new(mockUserRepository)
		tokenRepo := new(mockTokenRepository)
		tokenSvc := new(mockTokenService)

		expired := &services.RefreshToken{
			UserID:    user.ID,
			Token:     refreshTokenValue,
			ExpiresAt: time.Now().Add(-time.Minute),
		}
		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).Return(expired, nil).Once()

		uc := app.NewAuthUseCase(userRepo, tokenRepo, new(mockPasswordService), tokenSvc)
		pair, err := uc.RefreshTokens(context.Background(), refreshTokenValue)

		require.ErrorIs(t, err, services.ErrExpiredRefreshToken)
		assert.Nil(t, pair)
		tokenRepo.AssertNotCalled(t, "RevokeToken", mock.Anything, mock.Anything)
	})
}

func TestLogout(t *testing.T) {
	refreshTokenValue := "refresh-token-123"

	t.Run("Success - token revoked", func(t *testing.T) {
		tokenRepo := new(mockTokenRepository)

		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).
			Return(&services.RefreshToken{UserID: "user-1", Token: refreshTokenValue}, nil).Once()
		tokenRepo.On("RevokeToken", mock.Anything, refreshTokenValue).Return(nil).Once()

		uc := app.NewAuthUseCase(new(mockUserRepository), tokenRepo, new(mockPasswordService), new(mockTokenService))
		err := uc.Logout(context.Background(), refreshTokenValue)

		require.NoError(t, err)
		tokenRepo.AssertExpectations(t)
	})

	t.Run("Error - revocation failed", func(t *testing.T) {
		tokenRepo := new(mockTokenRepository)

		tokenRepo.On("FindByToken", mock.Anything, refreshTokenValue).
			Return(nil, errors.New("not found")).Once()
		tokenRepo.On("RevokeToken", mock.Anything, refreshTokenValue).
			Return(errors.New("database error")).Once()

		uc := app.NewAuthUseCase(new(mockUserRepository), tokenRepo, new(mockPasswordService), new(mockTokenService))
		err := uc.Logout(context.Background(), refreshTokenValue)

		require.Error(t, err)
	})
}
