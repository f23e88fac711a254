package pipeline_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notevault/internal/media/app"
	"notevault/internal/media/domain/entities"
	notesentities "notevault/internal/notes/domain/entities"
)

const testOwnerID = "owner-42"

var errStoreUnavailable = errors.New("store unavailable")

func fixedNow() time.Time {
	return time.UnixMilli(1718000000123)
}

func TestAttachSuccess(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	asset := &entities.MediaAsset{
		Payload:  []byte("image-bytes"),
		Filename: "photo.jpg",
		Kind:     entities.KindImage,
		MimeType: "image/jpeg",
	}
	expectedKey := "owner-42_1718000000123.jpg"
	expectedURL := "https://cdn.example.com/entries/" + expectedKey

	source.On("RequestPermission", mock.Anything).Return(nil).Once()
	source.On("Pick", mock.Anything).Return(asset, nil).Once()
	store.On("Upload", mock.Anything, entities.StorageFolder, expectedKey, asset.Payload, "image/jpeg").
		Return(nil).Once()
	store.On("PublicURL", entities.StorageFolder, expectedKey).Return(expectedURL).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)
	draft := &notesentities.Draft{Title: "trip"}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.NoError(t, err)
	assert.Equal(t, expectedURL, locator)
	require.NotNil(t, draft.MediaURL)
	assert.Equal(t, expectedURL, *draft.MediaURL)
	source.AssertExpectations(t)
	store.AssertExpectations(t)
}

func TestAttachPermissionDenied(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	source.On("RequestPermission", mock.Anything).Return(entities.ErrPermissionDenied).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)
	draft := &notesentities.Draft{Title: "trip"}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.ErrorIs(t, err, entities.ErrPermissionDenied)
	assert.Empty(t, locator)
	assert.Nil(t, draft.MediaURL)
	source.AssertNotCalled(t, "Pick", mock.Anything)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachPickCancelled(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	source.On("RequestPermission", mock.Anything).Return(nil).Once()
	source.On("Pick", mock.Anything).Return(nil, entities.ErrPickCancelled).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)
	draft := &notesentities.Draft{Title: "trip", Body: "text"}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.ErrorIs(t, err, entities.ErrPickCancelled)
	assert.Empty(t, locator)
	assert.Nil(t, draft.MediaURL, "cancelled selection must leave the draft unchanged")
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachEmptyPayload(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	source.On("RequestPermission", mock.Anything).Return(nil).Once()
	source.On("Pick", mock.Anything).Return(&entities.MediaAsset{Kind: entities.KindImage}, nil).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)
	draft := &notesentities.Draft{Title: "trip"}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.ErrorIs(t, err, entities.ErrEmptyPayload)
	assert.Empty(t, locator)
	assert.Nil(t, draft.MediaURL)
	store.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttachUploadFailure(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	asset := &entities.MediaAsset{
		Payload: []byte("video-bytes"),
		Kind:    entities.KindVideo,
	}

	source.On("RequestPermission", mock.Anything).Return(nil).Once()
	source.On("Pick", mock.Anything).Return(asset, nil).Once()
	store.On("Upload", mock.Anything, entities.StorageFolder, "owner-42_1718000000123.mp4", asset.Payload, "video/mp4").
		Return(errStoreUnavailable).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)
	draft := &notesentities.Draft{Title: "trip"}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.ErrorIs(t, err, errStoreUnavailable)
	assert.Empty(t, locator)
	assert.Nil(t, draft.MediaURL, "failed upload must leave the draft unchanged")
	store.AssertNotCalled(t, "PublicURL", mock.Anything, mock.Anything)
}

func TestAttachOverwritesPreviousMedia(t *testing.T) {
	source := new(mockAssetSource)
	store := new(mockObjectStore)

	asset := &entities.MediaAsset{
		Payload:  []byte("new-bytes"),
		Filename: "new.png",
		Kind:     entities.KindImage,
		MimeType: "image/png",
	}
	expectedKey := "owner-42_1718000000123.png"
	expectedURL := "https://cdn.example.com/entries/" + expectedKey

	source.On("RequestPermission", mock.Anything).Return(nil).Once()
	source.On("Pick", mock.Anything).Return(asset, nil).Once()
	store.On("Upload", mock.Anything, entities.StorageFolder, expectedKey, asset.Payload, "image/png").
		Return(nil).Once()
	store.On("PublicURL", entities.StorageFolder, expectedKey).Return(expectedURL).Once()

	pipeline := app.NewAttachmentPipeline(store, fixedNow)

	previous := "https://cdn.example.com/entries/old.png"
	draft := &notesentities.Draft{Title: "trip", MediaURL: &previous}

	locator, err := pipeline.Attach(context.Background(), testOwnerID, source, draft)

	require.NoError(t, err)
	require.NotNil(t, draft.MediaURL)
	assert.Equal(t, expectedURL, *draft.MediaURL, "the new attachment replaces the previous one")
	assert.Equal(t, expectedURL, locator)
}
