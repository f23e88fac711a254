// Package server содержит настройку HTTP-сервера и маршрутизации.
package server

import (
	"github.com/gofiber/fiber/v3"

	"notevault/internal/auth/ports/api"
	mediaapp "notevault/internal/media/app"
	notesapp "notevault/internal/notes/app"
	"notevault/internal/notes/ports/services"
	"notevault/internal/server/handlers/auth"
	"notevault/internal/server/handlers/media"
	"notevault/internal/server/handlers/notes"
	"notevault/internal/server/middleware"
)

// Dependencies перечисляет зависимости HTTP-слоя.
type Dependencies struct {
	AuthUseCase  api.AuthUseCase
	UserUseCase  api.UserUseCase
	NoteUseCase  *notesapp.NoteUseCase
	Pipeline     *mediaapp.AttachmentPipeline
	TokenService services.TokenService
}

// SetupRouter настраивает маршрутизацию для HTTP сервера.
func SetupRouter(app *fiber.App, deps Dependencies) {
	authHandler := auth.NewHandler(deps.AuthUseCase, deps.UserUseCase)
	notesHandler := notes.NewHandler(deps.NoteUseCase)
	mediaHandler := media.NewHandler(deps.Pipeline)

	// Middleware для всех запросов.
	app.Use(middleware.NewLoggerMiddleware())
	app.Use(middleware.NewRecoveryMiddleware())

	// API версии 1.
	apiV1 := app.Group("/api/v1")

	// Auth routes (публичные).
	authRoutes := apiV1.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.RefreshTokens)
	authRoutes.Post("/logout", authHandler.Logout)

	authMiddleware := middleware.NewAuthMiddleware(deps.TokenService)

	// Защищенные маршруты.
	userRoutes := apiV1.Group("/user")
	userRoutes.Use(authMiddleware)
	userRoutes.Get("/profile", authHandler.GetProfile)

	// Маршруты заметок (требуют авторизации).
	notesRoutes := apiV1.Group("/notes")
	notesRoutes.Use(authMiddleware)
	notesRoutes.Post("/", notesHandler.CreateNote)
	notesRoutes.Get("/", notesHandler.ListNotes)
	notesRoutes.Put("/:note_id", notesHandler.UpdateNote)
	notesRoutes.Delete("/:note_id", notesHandler.DeleteNote)

	// Маршруты вложений (требуют авторизации).
	mediaRoutes := apiV1.Group("/media")
	mediaRoutes.Use(authMiddleware)
	mediaRoutes.Post("/", mediaHandler.AttachMedia)

	// Обработчик для несуществующих маршрутов.
	app.Use(func(c fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Route not found",
		})
	})
}
