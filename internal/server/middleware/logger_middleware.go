// Package middleware содержит промежуточное ПО для HTTP обработчиков.
package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	"notevault/pkg/logger"
)

// RequestCtxKey - ключ Locals, под которым лежит контекст запроса
// с идентификатором запроса.
const RequestCtxKey = "requestCtx"

// NewLoggerMiddleware создает промежуточное ПО для логирования HTTP запросов.
// Каждому запросу присваивается request_id, который попадает во все записи.
func NewLoggerMiddleware() fiber.Handler {
	return func(ctx fiber.Ctx) error {
		requestCtx := logger.NewRequestIDContext(ctx.Context(), logger.GenerateRequestID())
		ctx.Locals(RequestCtxKey, requestCtx)

		start := time.Now()
		log := logger.Log(requestCtx).With(
			zap.String("path", ctx.Path()),
			zap.String("method", ctx.Method()),
			zap.String("ip", ctx.IP()),
		)

		log.Info(requestCtx, "Request started")

		err := ctx.Next()

		logFields := []zap.Field{
			zap.Int("status", ctx.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}

		if err != nil {
			log.Error(requestCtx, "Request failed", append(logFields, zap.Error(err))...)
			return fmt.Errorf("request processing error: %w", err)
		}

		log.Info(requestCtx, "Request completed", logFields...)
		return nil
	}
}

// RequestContext извлекает контекст запроса из Locals с запасным вариантом.
func RequestContext(ctx fiber.Ctx) context.Context {
	if requestCtx, ok := ctx.Locals(RequestCtxKey).(context.Context); ok {
		return requestCtx
	}
	return ctx.Context()
}
