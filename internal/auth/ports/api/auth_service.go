// Package api defines the application-facing interfaces of the auth module.
package api

import (
	"context"

	"notevault/internal/auth/domain/services"
)

// AuthUseCase определяет операции аутентификации.
type AuthUseCase interface {
	Register(ctx context.Context, email, username, password string) (*services.TokenPair, error)
	Login(ctx context.Context, email, password string) (*services.TokenPair, error)
	RefreshTokens(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Logout(ctx context.Context, refreshToken string) error
}
