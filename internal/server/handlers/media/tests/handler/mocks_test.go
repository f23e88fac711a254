package handler_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type mockObjectStore struct {
	mock.Mock
}

func (m *mockObjectStore) Upload(ctx context.Context, folder, key string, payload []byte, mimeType string) error {
	return m.Called(ctx, folder, key, payload, mimeType).Error(0)
}

func (m *mockObjectStore) PublicURL(folder, key string) string {
	return m.Called(folder, key).String(0)
}
