package app

import (
	"github.com/avc/orderchat/internal/handlers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))

	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// Поток событий без сжатия: websocket требует Hijacker
	r.Get("/api/stream", deps.handlers.stream.Serve)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Compress(5))

		r.Get("/api/session", deps.handlers.session.Get)
		r.Post("/api/session/register", deps.handlers.session.Register)
		r.Post("/api/session/prompt/dismiss", deps.handlers.session.DismissPrompt)
		r.Get("/api/menu", deps.handlers.session.Menu)
		r.Post("/api/chat", deps.handlers.chat.Chat)
		r.Post("/api/order/new", deps.handlers.chat.NewOrder)
	})

	return r
}
