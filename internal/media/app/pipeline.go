// Package app implements the media attachment pipeline.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"notevault/internal/media/domain/entities"
	"notevault/internal/media/ports/sources"
	"notevault/internal/media/ports/storage"
	notes "notevault/internal/notes/domain/entities"
	"notevault/pkg/logger"
)

const (
	methodAttach = "Attach"
	methodDetach = "Detach"

	errCtxRequestingPermission = "requesting media permission"
	errCtxPickingAsset         = "picking asset"
	errCtxValidatingAsset      = "validating asset"
	errCtxUploadingAsset       = "uploading asset"
)

// AttachmentPipeline последовательно проводит вложение от выбора до записи
// ссылки в черновик: разрешение, выбор, вычисление ключа, загрузка,
// получение публичного URL. Любой сбой обрывает конвейер, не меняя черновик;
// повторных попыток нет.
type AttachmentPipeline struct {
	store storage.ObjectStore
	now   func() time.Time
}

// NewAttachmentPipeline создает новый конвейер вложений.
// now может быть nil, тогда используется time.Now.
func NewAttachmentPipeline(store storage.ObjectStore, now func() time.Time) *AttachmentPipeline {
	if now == nil {
		now = time.Now
	}
	return &AttachmentPipeline{store: store, now: now}
}

// Attach получает медиафайл из источника, загружает его в хранилище и
// записывает публичный URL в черновик. Возвращает записанный URL.
// Отмена выбора возвращает entities.ErrPickCancelled, черновик не меняется.
func (p *AttachmentPipeline) Attach(ctx context.Context, ownerID string, source sources.AssetSource, draft *notes.Draft) (string, error) {
	log := logger.Log(ctx).With(zap.String("method", methodAttach), zap.String("ownerID", ownerID))

	if err := source.RequestPermission(ctx); err != nil {
		log.Debug(ctx, "media permission denied", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxRequestingPermission, err)
	}

	asset, err := source.Pick(ctx)
	if err != nil {
		if errors.Is(err, entities.ErrPickCancelled) {
			log.Debug(ctx, "media selection cancelled")
			return "", fmt.Errorf("%s: %w", errCtxPickingAsset, err)
		}
		log.Error(ctx, "failed to pick asset", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxPickingAsset, err)
	}

	if len(asset.Payload) == 0 {
		log.Debug(ctx, "picked asset has empty payload")
		return "", fmt.Errorf("%s: %w", errCtxValidatingAsset, entities.ErrEmptyPayload)
	}

	identity := entities.DeriveStorageIdentity(ownerID, p.now(), asset)
	if identity.Key == "" {
		return "", fmt.Errorf("%s: %w", errCtxValidatingAsset, entities.ErrEmptyStorageKey)
	}

	log.Debug(ctx, "uploading asset",
		zap.String("key", identity.Key),
		zap.String("mimeType", identity.MimeType),
		zap.Int("size", len(asset.Payload)))

	if err := p.store.Upload(ctx, entities.StorageFolder, identity.Key, asset.Payload, identity.MimeType); err != nil {
		log.Error(ctx, "failed to upload asset", zap.Error(err))
		return "", fmt.Errorf("%s: %w", errCtxUploadingAsset, err)
	}

	locator := p.store.PublicURL(entities.StorageFolder, identity.Key)
	draft.AttachMedia(locator)

	log.Info(ctx, "media attached to draft", zap.String("locator", locator))
	return locator, nil
}

// Detach сбрасывает ссылку на вложение в черновике. Объект в хранилище
// не удаляется: открепление локально и обратимо, удаление - нет.
func (p *AttachmentPipeline) Detach(ctx context.Context, draft *notes.Draft) {
	logger.Log(ctx).Debug(ctx, "detaching media from draft", zap.String("method", methodDetach))
	draft.DetachMedia()
}
