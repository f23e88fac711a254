// Package dto содержит объекты передачи данных HTTP-слоя.
package dto

import (
	"time"

	"notevault/internal/auth/domain/entities"
	"notevault/internal/auth/domain/services"
)

// RegisterRequest содержит данные для регистрации пользователя.
type RegisterRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest содержит данные для входа пользователя.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequest содержит данные для обновления токенов.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// LogoutRequest содержит данные для выхода пользователя.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// TokenResponse содержит данные о выданных токенах.
type TokenResponse struct {
	UserID       string    `json:"user_id"`
	Username     string    `json:"username,omitempty"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	ExpiresAt    time.Time `json:"expires_at"`
}

// NewTokenResponse преобразует пару токенов в ответ HTTP-слоя.
func NewTokenResponse(pair *services.TokenPair) *TokenResponse {
	return &TokenResponse{
		UserID:       pair.UserID,
		Username:     pair.Username,
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresAt:    pair.ExpiresAt,
	}
}

// UserProfileResponse содержит данные профиля пользователя.
type UserProfileResponse struct {
	UserID    string    `json:"user_id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserProfileResponse преобразует сущность пользователя в ответ HTTP-слоя.
func NewUserProfileResponse(user *entities.User) *UserProfileResponse {
	return &UserProfileResponse{
		UserID:    user.ID,
		Email:     user.Email,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}
}
