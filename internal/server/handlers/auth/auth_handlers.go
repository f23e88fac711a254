// Package auth содержит HTTP обработчики аутентификации и профиля.
package auth

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/auth/domain/entities"
	"notevault/internal/auth/domain/services"
	"notevault/internal/auth/ports/api"
	"notevault/internal/server/dto"
	"notevault/internal/server/middleware"
	"notevault/pkg/logger"
)

// Константы для логирования.
const (
	LogHandlerRegister      = "auth handler: register"
	LogHandlerLogin         = "auth handler: login"
	LogHandlerRefreshTokens = "auth handler: refresh tokens" // #nosec G101 - not a credential
	LogHandlerLogout        = "auth handler: logout"
	LogHandlerGetProfile    = "auth handler: get profile"

	ErrorInvalidRequest       = "invalid request"
	ErrorFailedToServeRequest = "failed to serve request"
)

// sendErrorResponse отправляет JSON-ответ с ошибкой.
func sendErrorResponse(ctx fiber.Ctx, statusCode int, message string) error {
	if err := ctx.Status(statusCode).JSON(fiber.Map{
		"error": message,
	}); err != nil {
		return fmt.Errorf("error sending response: %w", err)
	}
	return nil
}

// Handler содержит HTTP обработчики авторизации.
type Handler struct {
	authUseCase api.AuthUseCase
	userUseCase api.UserUseCase
}

// NewHandler создает новый экземпляр обработчика авторизации.
func NewHandler(authUseCase api.AuthUseCase, userUseCase api.UserUseCase) *Handler {
	return &Handler{
		authUseCase: authUseCase,
		userUseCase: userUseCase,
	}
}

// Register обрабатывает запрос на регистрацию нового пользователя.
func (h *Handler) Register(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRegister)

	var req dto.RegisterRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Username == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "email, username and password are required")
	}

	pair, err := h.authUseCase.Register(requestCtx, req.Email, req.Username, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, registerStatusCode(err), err.Error())
	}

	if err := ctx.Status(fiber.StatusCreated).JSON(dto.NewTokenResponse(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// registerStatusCode сопоставляет ошибки регистрации кодам HTTP.
func registerStatusCode(err error) int {
	switch {
	case errors.Is(err, services.ErrEmailAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, entities.ErrInvalidEmail),
		errors.Is(err, entities.ErrEmptyUsername),
		errors.Is(err, entities.ErrPasswordTooShort),
		errors.Is(err, entities.ErrPasswordTooWeak):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// Login обрабатывает запрос на вход пользователя.
func (h *Handler) Login(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogin)

	var req dto.LoginRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.Email == "" || req.Password == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	pair, err := h.authUseCase.Login(requestCtx, req.Email, req.Password)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewTokenResponse(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// RefreshTokens обрабатывает запрос на обновление токенов.
func (h *Handler) RefreshTokens(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerRefreshTokens)

	var req dto.RefreshRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "refresh token is required")
	}

	pair, err := h.authUseCase.RefreshTokens(requestCtx, req.RefreshToken)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, err.Error())
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewTokenResponse(pair)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// Logout обрабатывает запрос на выход пользователя.
func (h *Handler) Logout(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerLogout)

	var req dto.LogoutRequest
	if err := ctx.Bind().JSON(&req); err != nil {
		log.Error(requestCtx, ErrorInvalidRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusBadRequest, ErrorInvalidRequest)
	}

	if req.RefreshToken == "" {
		return sendErrorResponse(ctx, fiber.StatusBadRequest, "refresh token is required")
	}

	if err := h.authUseCase.Logout(requestCtx, req.RefreshToken); err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "logged out successfully",
	}); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}

// GetProfile обрабатывает запрос на получение профиля пользователя.
func (h *Handler) GetProfile(ctx fiber.Ctx) error {
	requestCtx := middleware.RequestContext(ctx)
	log := logger.Log(requestCtx)
	log.Info(requestCtx, LogHandlerGetProfile)

	userID := middleware.UserID(ctx)
	if userID == "" {
		return sendErrorResponse(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	profile, err := h.userUseCase.GetUserProfile(requestCtx, userID)
	if err != nil {
		log.Error(requestCtx, ErrorFailedToServeRequest, zap.Error(err))
		if errors.Is(err, entities.ErrUserNotFound) {
			return sendErrorResponse(ctx, fiber.StatusNotFound, err.Error())
		}
		return sendErrorResponse(ctx, fiber.StatusInternalServerError, err.Error())
	}

	if err := ctx.Status(fiber.StatusOK).JSON(dto.NewUserProfileResponse(profile)); err != nil {
		return fmt.Errorf("sending response: %w", err)
	}
	return nil
}
