// Package entities defines the domain entities for the media module.
package entities

import (
	"errors"
)

// Kind определяет тип выбранного медиафайла.
type Kind string

// Поддерживаемые типы медиафайлов.
const (
	KindImage Kind = "image"
	KindVideo Kind = "video"
)

// Ошибки домена медиавложений.
var (
	ErrPermissionDenied = errors.New("media permission denied")
	ErrPickCancelled    = errors.New("media selection cancelled")
	ErrEmptyPayload     = errors.New("media payload cannot be empty")
	ErrEmptyStorageKey  = errors.New("storage key cannot be empty")
)

// MediaAsset представляет выбранный медиафайл до и после загрузки.
// Существует только в памяти между выбором и записью ссылки в черновик.
type MediaAsset struct {
	Payload  []byte
	Filename string
	Kind     Kind
	MimeType string
}
