package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	serverReadTimeout = 15 * time.Second
	serverIdleTimeout = 60 * time.Second
	shutdownTimeout   = 10 * time.Second
)

// createServer создает HTTP сервер.
// WriteTimeout не задан: /api/stream держит соединение, а ?wait=true ждет сервис заказов.
func createServer(addr string, handler *chi.Mux) *http.Server {
	return &http.Server{
		Addr:        addr,
		Handler:     handler,
		ReadTimeout: serverReadTimeout,
		IdleTimeout: serverIdleTimeout,
	}
}

// runServer запускает HTTP сервер и ожидает сигнала завершения
func (a *App) runServer(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("starting HTTP server", zap.String("address", a.server.Addr))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		return nil
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		a.logger.Error("failed to start server", zap.Error(err))
		a.deps.dispatcher.Stop()
		a.store.close(context.Background())
		return err
	}
}

// shutdown выполняет graceful shutdown приложения
func (a *App) shutdown(cancel context.CancelFunc) {
	a.logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	// Websocket-соединения Shutdown не закрывает
	a.deps.handlers.stream.Close()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown error", zap.Error(err))
	}

	// Очередь дорабатывается до отмены контекста, оставшиеся обмены прерываются
	a.deps.dispatcher.Stop()
	cancel()
	a.logger.Info("dispatcher stopped")

	a.store.close(shutdownCtx)
	a.logger.Info("client store closed")

	a.logger.Info("server stopped gracefully")
	_ = a.logger.Sync()
}
