package services

import (
	"time"

	"notevault/internal/auth/ports/services"
)

// ServiceFactory создает сервисы аутентификации.
type ServiceFactory struct {
	secretKey       string
	accessTokenTTL  time.Duration
	refreshTokenTTL time.Duration
	bcryptCost      int
}

// NewServiceFactory создает новую фабрику сервисов.
func NewServiceFactory(secretKey string, accessTokenTTL, refreshTokenTTL time.Duration, bcryptCost int) *ServiceFactory {
	return &ServiceFactory{
		secretKey:       secretKey,
		accessTokenTTL:  accessTokenTTL,
		refreshTokenTTL: refreshTokenTTL,
		bcryptCost:      bcryptCost,
	}
}

// PasswordService возвращает сервис для работы с паролями.
func (f *ServiceFactory) PasswordService() services.PasswordService {
	return NewBcrypt(f.bcryptCost)
}

// TokenService возвращает сервис для работы с токенами.
func (f *ServiceFactory) TokenService() services.TokenService {
	return NewJWT(f.secretKey, f.accessTokenTTL, f.refreshTokenTTL)
}
