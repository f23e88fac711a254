// Package sources defines where the pipeline acquires media assets from.
package sources

import (
	"context"

	"notevault/internal/media/domain/entities"
)

// AssetSource определяет источник медиафайлов для конвейера вложений.
// RequestPermission возвращает entities.ErrPermissionDenied при отказе;
// Pick возвращает entities.ErrPickCancelled, если пользователь отменил выбор.
type AssetSource interface {
	RequestPermission(ctx context.Context) error
	Pick(ctx context.Context) (*entities.MediaAsset, error)
}
