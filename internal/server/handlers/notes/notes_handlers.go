// Package notes содержит HTTP-обработчики для управления заметками.
package notes

import (
	"errors"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/notes/app"
	"notevault/internal/notes/domain/entities"
	"notevault/internal/server/dto"
	"notevault/internal/server/middleware"
	"notevault/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerCreateNote = "handling create note request"
	LogHandlerListNotes  = "handling list notes request"
	LogHandlerUpdateNote = "handling update note request"
	LogHandlerDeleteNote = "handling delete note request"

	ErrMsgInvalidNoteID      = "invalid note id"
	ErrMsgInvalidRequestBody = "invalid request body"
)

// Handler обработчик HTTP-запросов для работы с заметками.
type Handler struct {
	noteUseCase *app.NoteUseCase
}

// NewHandler создает новый экземпляр обработчика заметок.
func NewHandler(noteUseCase *app.NoteUseCase) *Handler {
	return &Handler{
		noteUseCase: noteUseCase,
	}
}

// CreateNote обрабатывает запрос на создание новой заметки.
func (h *Handler) CreateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.CreateNote"))
	log.Debug(requestCtx, LogHandlerCreateNote)

	var req dto.SaveNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	return h.saveNote(ctx, &entities.Draft{
		Title:    req.Title,
		Body:     req.Body,
		MediaURL: req.MediaURL,
	}, fiber.StatusCreated)
}

// UpdateNote обрабатывает запрос на перезапись существующей заметки.
func (h *Handler) UpdateNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.UpdateNote"))
	log.Debug(requestCtx, LogHandlerUpdateNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	var req dto.SaveNoteRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrMsgInvalidRequestBody, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidRequestBody)
	}

	return h.saveNote(ctx, &entities.Draft{
		ID:       noteID,
		Title:    req.Title,
		Body:     req.Body,
		MediaURL: req.MediaURL,
	}, fiber.StatusOK)
}

// saveNote проводит черновик через бизнес-логику и отправляет результат.
func (h *Handler) saveNote(ctx fiber.Ctx, draft *entities.Draft, successStatus int) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)

	note, err := h.noteUseCase.SaveNote(requestCtx, middleware.AccessToken(ctx), draft)
	if err != nil {
		log.Error(requestCtx, "failed to save note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(successStatus).JSON(note); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// ListNotes обрабатывает запрос на получение всех заметок пользователя.
func (h *Handler) ListNotes(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.ListNotes"))
	log.Debug(requestCtx, LogHandlerListNotes)

	notes, err := h.noteUseCase.ListNotes(requestCtx, middleware.AccessToken(ctx))
	if err != nil {
		log.Error(requestCtx, "failed to list notes", zap.Error(err))
		return handleError(ctx, err)
	}

	if notes == nil {
		notes = []*entities.Note{}
	}

	if err := ctx.JSON(notes); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// DeleteNote обрабатывает запрос на удаление заметки.
func (h *Handler) DeleteNote(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.DeleteNote"))
	log.Debug(requestCtx, LogHandlerDeleteNote)

	noteID := ctx.Params("note_id")
	if noteID == "" {
		log.Error(requestCtx, ErrMsgInvalidNoteID)
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrMsgInvalidNoteID)
	}

	if err := h.noteUseCase.DeleteNote(requestCtx, middleware.AccessToken(ctx), noteID); err != nil {
		log.Error(requestCtx, "failed to delete note", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError сопоставляет ошибки бизнес-логики кодам HTTP.
// Сбой хранилища записей передает клиенту текст ошибки хранилища.
func handleError(ctx fiber.Ctx, err error) error {
	var validationErrs validation.Errors

	switch {
	case errors.Is(err, entities.ErrEmptyNote), errors.As(err, &validationErrs):
		return sendErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, app.ErrUnauthorized):
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, app.ErrNotFound):
		return sendErrorResponse(ctx, fiber.StatusNotFound, err.Error())
	default:
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}
}

// sendErrorResponse отправляет JSON-ответ с ошибкой.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}
