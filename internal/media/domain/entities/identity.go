package entities

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// StorageFolder - логическая папка вложений в хранилище объектов.
const StorageFolder = "entries"

// Резервные значения, когда у файла нет имени или объявленного MIME-типа.
const (
	fallbackVideoExtension = "mp4"
	fallbackImageExtension = "png"
	fallbackVideoMimeType  = "video/mp4"
	fallbackImageMimeType  = "image/png"
)

// StorageIdentity - вычисленный ключ хранения и MIME-тип вложения.
type StorageIdentity struct {
	Key      string
	MimeType string
}

// DeriveStorageIdentity вычисляет ключ хранения вида <ownerID>_<unix-ms>.<ext>.
// Расширение берется из имени файла, иначе из типа медиафайла; MIME-тип -
// объявленный, иначе из того же резервного соответствия. Два вызова для одного
// владельца в пределах одной миллисекунды дают одинаковый ключ; разные
// владельцы не коллидируют даже в один и тот же момент времени.
func DeriveStorageIdentity(ownerID string, now time.Time, asset *MediaAsset) StorageIdentity {
	return StorageIdentity{
		Key:      fmt.Sprintf("%s_%d.%s", ownerID, now.UnixMilli(), resolveExtension(asset)),
		MimeType: resolveMimeType(asset),
	}
}

// resolveExtension возвращает расширение из имени файла, иначе резервное.
func resolveExtension(asset *MediaAsset) string {
	if ext := strings.TrimPrefix(filepath.Ext(asset.Filename), "."); ext != "" {
		return ext
	}
	if asset.Kind == KindVideo {
		return fallbackVideoExtension
	}
	return fallbackImageExtension
}

// resolveMimeType возвращает объявленный MIME-тип, иначе резервный.
func resolveMimeType(asset *MediaAsset) string {
	if asset.MimeType != "" {
		return asset.MimeType
	}
	if asset.Kind == KindVideo {
		return fallbackVideoMimeType
	}
	return fallbackImageMimeType
}
