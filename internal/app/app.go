package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/orderchat/internal/config"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config *config.Config
	logger *zap.Logger
	store  *clientStore
	deps   *dependencies
	server *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := initStore(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init client store: %w", err)
	}

	deps := initDependencies(cfg, store.store, logger)
	router := setupRouter(deps, logger)
	server := createServer(cfg.ListenAddress, router)

	return &App{
		config: cfg,
		logger: logger,
		store:  store,
		deps:   deps,
		server: server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a.deps.dispatcher.Start(ctx)

	// Начальная загрузка: идентификатор, регистрация, меню, корзина
	startCtx, startCancel := context.WithTimeout(ctx, a.config.RequestTimeout*2)
	a.deps.session.Start(startCtx)
	startCancel()

	if err := a.runServer(ctx); err != nil {
		return err
	}

	a.shutdown(cancel)

	return nil
}
