// Package multipart adapts an HTTP multipart upload to an asset source.
package multipart

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"notevault/internal/media/domain/entities"
	"notevault/internal/media/ports/sources"
)

// MaxAssetSize - предельный размер загружаемого медиафайла (50 МБ).
const MaxAssetSize = 50 << 20

// octetStreamMIME - тип по умолчанию у клиентов, не определивших тип файла.
// Трактуется как отсутствие заявленного типа.
const octetStreamMIME = "application/octet-stream"

// FormAssetSource выдает медиафайл из multipart-формы запроса.
// Отсутствующая часть файла трактуется как отмена выбора, а слишком
// большой или не-медийный файл как отказ в разрешении.
type FormAssetSource struct {
	file *multipart.FileHeader
	kind entities.Kind
}

var _ sources.AssetSource = (*FormAssetSource)(nil)

// NewFormAssetSource создает источник из части multipart-формы.
// file может быть nil, если клиент не приложил файл.
func NewFormAssetSource(file *multipart.FileHeader, kind entities.Kind) *FormAssetSource {
	return &FormAssetSource{file: file, kind: kind}
}

// RequestPermission проверяет, что файл допустим к загрузке.
func (s *FormAssetSource) RequestPermission(_ context.Context) error {
	if s.file == nil {
		return nil
	}
	if s.file.Size > MaxAssetSize {
		return fmt.Errorf("%w: file exceeds %d bytes", entities.ErrPermissionDenied, MaxAssetSize)
	}
	if declared := s.declaredMIME(); declared != "" {
		if !strings.HasPrefix(declared, "image/") && !strings.HasPrefix(declared, "video/") {
			return fmt.Errorf("%w: unsupported content type %q", entities.ErrPermissionDenied, declared)
		}
	}
	return nil
}

// declaredMIME возвращает заявленный клиентом тип файла или пустую строку.
func (s *FormAssetSource) declaredMIME() string {
	declared := s.file.Header.Get("Content-Type")
	if declared == octetStreamMIME {
		return ""
	}
	return declared
}

// Pick читает содержимое файла из формы.
func (s *FormAssetSource) Pick(_ context.Context) (*entities.MediaAsset, error) {
	if s.file == nil {
		return nil, entities.ErrPickCancelled
	}

	file, err := s.file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open form file: %w", err)
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read form file: %w", err)
	}

	return &entities.MediaAsset{
		Payload:  payload,
		Filename: s.file.Filename,
		Kind:     s.kind,
		MimeType: s.declaredMIME(),
	}, nil
}
