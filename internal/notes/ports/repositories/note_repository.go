// Package repositories defines repository interfaces for the notes module.
package repositories

import (
	"context"

	"notevault/internal/notes/domain/entities"
)

// NoteRepository определяет интерфейс для работы с хранилищем заметок.
// Create назначает заметке новый id и created_at; Update перезаписывает
// заметку по месту, не меняя владельца и created_at.
type NoteRepository interface {
	Create(ctx context.Context, note *entities.Note) (*entities.Note, error)
	Update(ctx context.Context, note *entities.Note) (*entities.Note, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error)
	Delete(ctx context.Context, noteID, ownerID string) error
}
