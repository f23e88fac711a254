// Package app implements application business logic for the notes module.
package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"notevault/internal/notes/domain/entities"
	"notevault/internal/notes/ports/cache"
	"notevault/internal/notes/ports/repositories"
	"notevault/internal/notes/ports/services"
	"notevault/pkg/logger"
)

// Ошибки уровня бизнес-логики.
var (
	ErrNotFound     = errors.New("note not found")
	ErrUnauthorized = errors.New("unauthorized access")
)

const listCacheKeyPrefix = "notes:list:"

// NoteUseCase представляет собой бизнес-логику работы с заметками.
type NoteUseCase struct {
	noteRepo     repositories.NoteRepository
	tokenService services.TokenService
	listCache    cache.Cache
}

// NewNoteUseCase создает новый экземпляр NoteUseCase.
// listCache может быть nil, тогда списки не кэшируются.
func NewNoteUseCase(noteRepo repositories.NoteRepository, tokenService services.TokenService, listCache cache.Cache) *NoteUseCase {
	return &NoteUseCase{
		noteRepo:     noteRepo,
		tokenService: tokenService,
		listCache:    listCache,
	}
}

// SaveNote сохраняет черновик заметки: черновик без ID вставляется и получает
// новый id и created_at, черновик с ID перезаписывает заметку по месту.
// Черновик без заголовка и текста отклоняется до обращения к хранилищу.
func (uc *NoteUseCase) SaveNote(ctx context.Context, token string, draft *entities.Draft) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "SaveNote"))

	if err := draft.Validate(); err != nil {
		log.Debug(ctx, "draft rejected by validation", zap.Error(err))
		return nil, fmt.Errorf("validating draft: %w", err)
	}

	userID, err := uc.tokenService.ValidateAccessToken(ctx, token)
	if err != nil {
		log.Debug(ctx, "no resolvable identity", zap.Error(err))
		return nil, ErrUnauthorized
	}

	note := &entities.Note{
		ID:       draft.ID,
		OwnerID:  userID,
		Title:    draft.Title,
		Body:     draft.Body,
		MediaURL: draft.MediaURL,
	}

	var saved *entities.Note
	if draft.ID == "" {
		saved, err = uc.noteRepo.Create(ctx, note)
		if err != nil {
			return nil, fmt.Errorf("failed to create note: %w", err)
		}
	} else {
		saved, err = uc.noteRepo.Update(ctx, note)
		if err != nil {
			if errors.Is(err, entities.ErrNoteNotFound) {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("failed to update note: %w", err)
		}
	}

	uc.invalidateListCache(ctx, userID)

	log.Info(ctx, "note saved", zap.String("noteID", saved.ID))
	return saved, nil
}

// ListNotes возвращает все заметки пользователя, новые первыми.
func (uc *NoteUseCase) ListNotes(ctx context.Context, token string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "ListNotes"))

	userID, err := uc.tokenService.ValidateAccessToken(ctx, token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	if notes, ok := uc.cachedList(ctx, userID); ok {
		log.Debug(ctx, "notes list served from cache", zap.Int("count", len(notes)))
		return notes, nil
	}

	notes, err := uc.noteRepo.ListByOwner(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	uc.storeList(ctx, userID, notes)

	return notes, nil
}

// DeleteNote удаляет заметку пользователя. Вложение заметки из хранилища
// объектов не удаляется.
func (uc *NoteUseCase) DeleteNote(ctx context.Context, token, noteID string) error {
	log := logger.Log(ctx).With(zap.String("method", "DeleteNote"), zap.String("noteID", noteID))

	userID, err := uc.tokenService.ValidateAccessToken(ctx, token)
	if err != nil {
		return ErrUnauthorized
	}

	if err := uc.noteRepo.Delete(ctx, noteID, userID); err != nil {
		if errors.Is(err, entities.ErrNoteNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete note: %w", err)
	}

	uc.invalidateListCache(ctx, userID)

	log.Info(ctx, "note deleted")
	return nil
}

// cachedList пытается получить список заметок из кэша.
func (uc *NoteUseCase) cachedList(ctx context.Context, userID string) ([]*entities.Note, bool) {
	if uc.listCache == nil {
		return nil, false
	}

	raw, err := uc.listCache.Get(ctx, listCacheKeyPrefix+userID)
	if err != nil || raw == "" {
		return nil, false
	}

	var notes []*entities.Note
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, false
	}
	return notes, true
}

// storeList кэширует список заметок. Ошибки кэша не влияют на результат.
func (uc *NoteUseCase) storeList(ctx context.Context, userID string, notes []*entities.Note) {
	if uc.listCache == nil {
		return
	}

	raw, err := json.Marshal(notes)
	if err != nil {
		return
	}

	if err := uc.listCache.Set(ctx, listCacheKeyPrefix+userID, string(raw), 0); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to cache notes list", zap.Error(err))
	}
}

// invalidateListCache сбрасывает кэшированный список заметок пользователя.
func (uc *NoteUseCase) invalidateListCache(ctx context.Context, userID string) {
	if uc.listCache == nil {
		return
	}

	if err := uc.listCache.Delete(ctx, listCacheKeyPrefix+userID); err != nil {
		logger.Log(ctx).Warn(ctx, "failed to invalidate notes list cache", zap.Error(err))
	}
}
