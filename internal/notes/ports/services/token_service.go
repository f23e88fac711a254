// Package services defines service interfaces used by the notes module.
package services

import "context"

// TokenService определяет проверку access токена.
type TokenService interface {
	ValidateAccessToken(ctx context.Context, token string) (string, error)
}
