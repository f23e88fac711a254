package noteusecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"notevault/internal/notes/app"
	"notevault/internal/notes/domain/entities"
)

const (
	testToken  = "valid-access-token"
	testUserID = "user-7"
)

var errInvalidToken = errors.New("invalid token")

func TestSaveNoteCreate(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)

	created := &entities.Note{
		ID:        "note-1",
		OwnerID:   testUserID,
		Title:     "trip",
		Body:      "pack bags",
		CreatedAt: time.Now(),
	}

	tokenSvc.On("ValidateAccessToken", mock.Anything, testToken).Return(testUserID, nil).Once()
	noteRepo.On("Create", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
		return n.ID == "" && n.OwnerID == testUserID && n.Title == "trip" && n.Body == "pack bags" && n.MediaURL == nil
	})).Return(created, nil).Once()

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, nil)

	saved, err := uc.SaveNote(context.Background(), testToken, &entities.Draft{Title: "trip", Body: "pack bags"})

	require.NoError(t, err)
	assert.Equal(t, created, saved)
	noteRepo.AssertExpectations(t)
	noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSaveNoteUpdate(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)

	mediaURL := "https://cdn.example.com/entries/user-7_1718000000123.jpg"
	updated := &entities.Note{
		ID:       "42",
		OwnerID:  testUserID,
		Title:    "trip",
		Body:     "pack bags and camera",
		MediaURL: &mediaURL,
	}

	tokenSvc.On("ValidateAccessToken", mock.Anything, testToken).Return(testUserID, nil).Once()
	noteRepo.On("Update", mock.Anything, mock.MatchedBy(func(n *entities.Note) bool {
		return n.ID == "42" && n.OwnerID == testUserID && n.MediaURL != nil && *n.MediaURL == mediaURL
	})).Return(updated, nil).Once()

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, nil)

	saved, err := uc.SaveNote(context.Background(), testToken, &entities.Draft{
		ID:       "42",
		Title:    "trip",
		Body:     "pack bags and camera",
		MediaURL: &mediaURL,
	})

	require.NoError(t, err)
	assert.Equal(t, updated, saved)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSaveNoteEmptyDraftRejectedBeforeAnyCall(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, nil)

	saved, err := uc.SaveNote(context.Background(), testToken, &entities.Draft{})

	require.ErrorIs(t, err, entities.ErrEmptyNote)
	assert.Nil(t, saved)
	tokenSvc.AssertNotCalled(t, "ValidateAccessToken", mock.Anything, mock.Anything)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSaveNoteUnauthenticatedRejectedBeforeStore(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)

	tokenSvc.On("ValidateAccessToken", mock.Anything, "bad-token").Return("", errInvalidToken).Once()

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, nil)

	saved, err := uc.SaveNote(context.Background(), "bad-token", &entities.Draft{Title: "trip"})

	require.ErrorIs(t, err, app.ErrUnauthorized)
	assert.Nil(t, saved)
	noteRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	noteRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSaveNoteUpdateMissingNote(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)

	tokenSvc.On("ValidateAccessToken", mock.Anything, testToken).Return(testUserID, nil).Once()
	noteRepo.On("Update", mock.Anything, mock.Anything).Return(nil, entities.ErrNoteNotFound).Once()

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, nil)

	saved, err := uc.SaveNote(context.Background(), testToken, &entities.Draft{ID: "missing", Title: "trip"})

	require.ErrorIs(t, err, app.ErrNotFound)
	assert.Nil(t, saved)
}

func TestSaveNoteInvalidatesListCache(t *testing.T) {
	noteRepo := new(mockNoteRepository)
	tokenSvc := new(mockTokenService)
	listCache := new(mockCache)

	created := &entities.Note{ID: "note-1", OwnerID: testUserID, Title: "trip"}

	tokenSvc.On("ValidateAccessToken", mock.Anything, testToken).Return(testUserID, nil).Once()
	noteRepo.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()
	listCache.On("Delete", mock.Anything, "notes:list:"+testUserID).Return(nil).Once()

	uc := app.NewNoteUseCase(noteRepo, tokenSvc, listCache)

	_, err := uc.SaveNote(context.Background(), testToken, &entities.Draft{Title: "trip"})

	require.NoError(t, err)
	listCache.AssertExpectations(t)
}
