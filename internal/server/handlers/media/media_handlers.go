// Package media содержит HTTP-обработчик загрузки вложений.
package media

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	multipartsource "notevault/internal/media/adapters/multipart"
	mediaapp "notevault/internal/media/app"
	"notevault/internal/media/domain/entities"
	notesentities "notevault/internal/notes/domain/entities"
	"notevault/internal/server/dto"
	"notevault/internal/server/middleware"
	"notevault/pkg/logger"
)

// Константы сообщений для логирования.
const (
	LogHandlerAttachMedia = "handling attach media request"
	LogAttachSkipped      = "attach skipped, no file provided"
)

// Имена частей multipart-формы.
const (
	fileFormKey = "file"
	kindFormKey = "kind"
)

// Handler обработчик HTTP-запросов загрузки вложений.
type Handler struct {
	pipeline *mediaapp.AttachmentPipeline
}

// NewHandler создает новый экземпляр обработчика вложений.
func NewHandler(pipeline *mediaapp.AttachmentPipeline) *Handler {
	return &Handler{
		pipeline: pipeline,
	}
}

// AttachMedia принимает медиафайл из multipart-формы, проводит его через
// конвейер вложений и возвращает публичный URL для черновика.
func (h *Handler) AttachMedia(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx).With(zap.String("handler", "Handler.AttachMedia"))
	log.Debug(requestCtx, LogHandlerAttachMedia)

	file, err := ctx.FormFile(fileFormKey)
	if err != nil {
		file = nil // Отсутствие файла трактуется как отмена выбора.
	}

	kind := entities.KindImage
	if ctx.FormValue(kindFormKey) == string(entities.KindVideo) {
		kind = entities.KindVideo
	}

	source := multipartsource.NewFormAssetSource(file, kind)
	draft := &notesentities.Draft{}

	locator, err := h.pipeline.Attach(requestCtx, middleware.UserID(ctx), source, draft)
	if err != nil {
		// Отмена выбора не ошибка, вложение просто не создается.
		if errors.Is(err, entities.ErrPickCancelled) {
			log.Debug(requestCtx, LogAttachSkipped)
			if err := ctx.SendStatus(fiber.StatusNoContent); err != nil {
				return fmt.Errorf("error sending response: %w", err)
			}
			return nil
		}
		log.Error(requestCtx, "failed to attach media", zap.Error(err))
		return handleError(ctx, err)
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(&dto.AttachMediaResponse{
		MediaURL: locator,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// handleError сопоставляет ошибки конвейера вложений кодам HTTP.
// Сбой хранилища передает клиенту текст ошибки хранилища.
func handleError(ctx fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, entities.ErrEmptyPayload):
		return sendErrorResponse(ctx, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, entities.ErrPermissionDenied):
		return sendErrorResponse(ctx, fiber.StatusUnsupportedMediaType, err.Error())
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
