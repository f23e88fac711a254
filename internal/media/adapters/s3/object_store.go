// Package s3 реализует хранилище объектов поверх S3-совместимого API.
package s3

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"notevault/internal/config"
	"notevault/internal/media/ports/storage"
)

// ObjectStore хранит объекты в S3-совместимом бакете. Работает с AWS S3,
// MinIO, DigitalOcean Spaces и другими совместимыми сервисами.
type ObjectStore struct {
	client  *s3.Client
	bucket  string
	baseURL string
}

var _ storage.ObjectStore = (*ObjectStore)(nil)

// NewObjectStore создает хранилище объектов по конфигурации.
func NewObjectStore(ctx context.Context, cfg *config.S3Config) (*ObjectStore, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(cfg.Region),
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	var client *s3.Client
	if cfg.Endpoint != "" {
		client = s3.NewFromConfig(awsCfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			// MinIO и часть совместимых сервисов не поддерживают
			// virtual-hosted адресацию бакетов.
			o.UsePathStyle = true
		})
	} else {
		client = s3.NewFromConfig(awsCfg)
	}

	return &ObjectStore{
		client:  client,
		bucket:  cfg.Bucket,
		baseURL: resolveBaseURL(cfg),
	}, nil
}

// Upload загружает объект в бакет под указанным ключом внутри папки.
func (s *ObjectStore) Upload(ctx context.Context, folder, key string, payload []byte, mimeType string) error {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectPath(folder, key)),
		Body:        bytes.NewReader(payload),
		ContentType: aws.String(mimeType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload object %q: %w", key, err)
	}
	return nil
}

// PublicURL возвращает публичный URL загруженного объекта.
func (s *ObjectStore) PublicURL(folder, key string) string {
	return fmt.Sprintf("%s/%s", s.baseURL, objectPath(folder, key))
}

func objectPath(folder, key string) string {
	if folder == "" {
		return key
	}
	return folder + "/" + key
}

func resolveBaseURL(cfg *config.S3Config) string {
	if cfg.PublicURL != "" {
		return strings.TrimSuffix(cfg.PublicURL, "/")
	}
	if cfg.Endpoint != "" {
		return strings.TrimSuffix(cfg.Endpoint, "/") + "/" + cfg.Bucket
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
}
