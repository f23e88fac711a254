// Package storage defines the object store interface for the media module.
package storage

import "context"

// ObjectStore определяет интерфейс хранилища бинарных объектов с публичным
// доступом по URL. Загрузка перезаписывает объект с тем же ключом.
type ObjectStore interface {
	Upload(ctx context.Context, folder, key string, payload []byte, mimeType string) error
	PublicURL(folder, key string) string
}
