// Package entities defines the domain entities for the notes module.
package entities

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Ограничения на размер полей заметки.
const (
	MaxTitleLength = 100
	MaxBodyLength  = 2000
)

// Ошибки домена заметок.
var (
	ErrEmptyNote    = errors.New("note must have a non-empty title or body")
	ErrNoteNotFound = errors.New("note not found")
)

// Note представляет собой заметку пользователя.
// MediaURL указывает на единственное вложение заметки в хранилище объектов.
type Note struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	MediaURL  *string   `json:"media_url"`
	CreatedAt time.Time `json:"created_at"`
}

// Draft представляет несохраненное состояние заметки, редактируемой пользователем.
// Пустой ID означает, что заметка еще не существует в хранилище.
type Draft struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Body     string  `json:"body"`
	MediaURL *string `json:"media_url"`
}

// Validate проверяет черновик перед сохранением. Заметка без заголовка
// и без текста отклоняется до какого-либо обращения к хранилищу.
func (d *Draft) Validate() error {
	if d.Title == "" && d.Body == "" {
		return ErrEmptyNote
	}

	if err := validation.ValidateStruct(d,
		validation.Field(&d.Title, validation.RuneLength(0, MaxTitleLength)),
		validation.Field(&d.Body, validation.RuneLength(0, MaxBodyLength)),
	); err != nil {
		return err //nolint:wrapcheck
	}
	return nil
}

// AttachMedia устанавливает ссылку на вложение в черновике.
// Хранилище объектов при этом не затрагивается.
func (d *Draft) AttachMedia(locator string) {
	d.MediaURL = &locator
}

// DetachMedia сбрасывает ссылку на вложение в черновике.
// Загруженный объект из хранилища намеренно не удаляется.
func (d *Draft) DetachMedia() {
	d.MediaURL = nil
}
