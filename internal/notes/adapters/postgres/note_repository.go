// Package postgres provides the PostgreSQL implementation of the note repository.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"notevault/internal/notes/domain/entities"
	"notevault/internal/notes/ports/repositories"
	"notevault/pkg/logger"
)

// PgxPoolInterface описывает операции пула соединений, используемые репозиторием.
// Выделен в интерфейс для подстановки pgxmock в тестах.
type PgxPoolInterface interface {
	QueryRow(ctx context.Context, query string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, query string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, query string, args ...interface{}) (pgx.Rows, error)
	Close()
}

// NoteRepository реализует интерфейс repositories.NoteRepository.
type NoteRepository struct {
	pool PgxPoolInterface
}

// NewNoteRepository создает новый репозиторий заметок.
func NewNoteRepository(pool PgxPoolInterface) repositories.NoteRepository {
	return &NoteRepository{pool: pool}
}

// Create сохраняет новую заметку; id и created_at назначает база.
func (r *NoteRepository) Create(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Create"))
	log.Debug(ctx, "creating new note", zap.String("ownerID", note.OwnerID))

	var created entities.Note
	err := r.pool.QueryRow(ctx,
		`INSERT INTO notes (owner_id, title, body, media_url)
         VALUES ($1, $2, $3, $4)
         RETURNING id, owner_id, title, body, media_url, created_at`,
		note.OwnerID, note.Title, note.Body, note.MediaURL,
	).Scan(&created.ID, &created.OwnerID, &created.Title, &created.Body, &created.MediaURL, &created.CreatedAt)

	if err != nil {
		log.Error(ctx, "failed to create note", zap.Error(err))
		return nil, fmt.Errorf("failed to create note: %w", err)
	}

	log.Debug(ctx, "note created", zap.String("noteID", created.ID))
	return &created, nil
}

// Update перезаписывает заметку по месту; владелец и created_at не меняются.
func (r *NoteRepository) Update(ctx context.Context, note *entities.Note) (*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Update"))
	log.Debug(ctx, "updating note", zap.String("noteID", note.ID))

	var updated entities.Note
	err := r.pool.QueryRow(ctx,
		`UPDATE notes
         SET title = $1, body = $2, media_url = $3
         WHERE id = $4 AND owner_id = $5
         RETURNING id, owner_id, title, body, media_url, created_at`,
		note.Title, note.Body, note.MediaURL, note.ID, note.OwnerID,
	).Scan(&updated.ID, &updated.OwnerID, &updated.Title, &updated.Body, &updated.MediaURL, &updated.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			log.Debug(ctx, "note not found or not owned by user")
			return nil, entities.ErrNoteNotFound
		}
		log.Error(ctx, "failed to update note", zap.Error(err))
		return nil, fmt.Errorf("failed to update note: %w", err)
	}

	return &updated, nil
}

// ListByOwner получает все заметки пользователя, новые первыми.
func (r *NoteRepository) ListByOwner(ctx context.Context, ownerID string) ([]*entities.Note, error) {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.ListByOwner"))
	log.Debug(ctx, "listing notes", zap.String("ownerID", ownerID))

	rows, err := r.pool.Query(ctx,
		`SELECT id, owner_id, title, body, media_url, created_at
         FROM notes
         WHERE owner_id = $1
         ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to list notes", zap.Error(err))
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}
	defer rows.Close()

	notes := make([]*entities.Note, 0)
	for rows.Next() {
		var note entities.Note
		err := rows.Scan(&note.ID, &note.OwnerID, &note.Title, &note.Body, &note.MediaURL, &note.CreatedAt)
		if err != nil {
			log.Error(ctx, "failed to scan note", zap.Error(err))
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		notes = append(notes, &note)
	}

	if err := rows.Err(); err != nil {
		log.Error(ctx, "error iterating rows", zap.Error(err))
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return notes, nil
}

// Delete удаляет заметку.
func (r *NoteRepository) Delete(ctx context.Context, noteID, ownerID string) error {
	log := logger.Log(ctx).With(zap.String("method", "NoteRepository.Delete"))
	log.Debug(ctx, "deleting note", zap.String("noteID", noteID))

	result, err := r.pool.Exec(ctx,
		`DELETE FROM notes WHERE id = $1 AND owner_id = $2`,
		noteID, ownerID,
	)
	if err != nil {
		log.Error(ctx, "failed to delete note", zap.Error(err))
		return fmt.Errorf("failed to delete note: %w", err)
	}

	if result.RowsAffected() == 0 {
		log.Debug(ctx, "note not found or not owned by user")
		return entities.ErrNoteNotFound
	}

	return nil
}
