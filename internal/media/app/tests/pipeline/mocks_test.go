package pipeline_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"notevault/internal/media/domain/entities"
)

type mockAssetSource struct {
	mock.Mock
}

func (m *mockAssetSource) RequestPermission(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *mockAssetSource) Pick(ctx context.Context) (*entities.MediaAsset, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.MediaAsset), args.Error(1)
}

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, folder, key string, payload []byte, mimeType string) error {
	return m.Called(ctx, folder, key, payload, mimeType).Error(0)
}

func (m *mockObjectStore) PublicURL(folder, key string) string {
	return m.Called(folder, key).String(0)
}
