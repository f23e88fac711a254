package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/internal/notes/ports/services"
	"notevault/pkg/logger"
)

// Ключи Locals, заполняемые промежуточным ПО аутентификации.
const (
	AccessTokenKey = "accessToken"
	UserIDKey      = "userID"
)

// Сообщения об ошибках аутентификации.
const (
	ErrorNoAuthHeader       = "no authorization header provided"
	ErrorInvalidTokenFormat = "invalid token format"
	ErrorInvalidToken       = "invalid or expired token"
)

// NewAuthMiddleware создает промежуточное ПО проверки аутентификации.
// Токен из заголовка Authorization проверяется и вместе с идентификатором
// пользователя сохраняется в Locals для обработчиков.
func NewAuthMiddleware(tokenService services.TokenService) fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := RequestContext(ctx)
		log := logger.Log(requestCtx).With(zap.String("middleware", "auth"))

		authHeader := ctx.Get("Authorization")
		if authHeader == "" {
			log.Debug(requestCtx, ErrorNoAuthHeader)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorNoAuthHeader,
			})
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			log.Debug(requestCtx, ErrorInvalidTokenFormat)
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidTokenFormat,
			})
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokenService.ValidateAccessToken(requestCtx, token)
		if err != nil {
			log.Debug(requestCtx, ErrorInvalidToken, zap.Error(err))
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": ErrorInvalidToken,
			})
		}

		ctx.Locals(AccessTokenKey, token)
		ctx.Locals(UserIDKey, userID)

		return ctx.Next()
	}
}

// AccessToken извлекает access токен запроса из Locals.
func AccessToken(ctx fiber.Ctx) string {
	token, _ := ctx.Locals(AccessTokenKey).(string)
	return token
}

// UserID извлекает идентификатор аутентифицированного пользователя из Locals.
func UserID(ctx fiber.Ctx) string {
	userID, _ := ctx.Locals(UserIDKey).(string)
	return userID
}
