package repositories

import (
	"context"

	"notevault/internal/auth/domain/services"
)

// TokenRepository определяет интерфейс для работы с хранилищем refresh-токенов.
type TokenRepository interface {
	StoreRefreshToken(ctx context.Context, token *services.RefreshToken) error
	FindByToken(ctx context.Context, token string) (*services.RefreshToken, error)
	RevokeToken(ctx context.Context, token string) error
}
