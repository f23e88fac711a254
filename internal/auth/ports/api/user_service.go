package api

import (
	"context"

	"notevault/internal/auth/domain/entities"
)

// UserUseCase определяет операции над профилем пользователя.
type UserUseCase interface {
	GetUserProfile(ctx context.Context, userID string) (*entities.User, error)
}
