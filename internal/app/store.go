package app

import (
	"context"
	"fmt"

	"github.com/avc/orderchat/internal/config"
	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/repository/file"
	"github.com/avc/orderchat/internal/repository/memory"
	mongostore "github.com/avc/orderchat/internal/repository/mongo"
	"github.com/avc/orderchat/internal/repository/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// clientStore хранилище клиента и функция освобождения его ресурсов
type clientStore struct {
	store domain.ClientStore
	close func(ctx context.Context)
}

// initStore создает хранилище клиента выбранного бэкенда
func initStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*clientStore, error) {
	noop := func(context.Context) {}

	switch cfg.StoreBackend {
	case config.StoreMemory:
		logger.Warn("using in-memory client store, session will not survive restart")
		return &clientStore{store: memory.NewStore(nil), close: noop}, nil

	case config.StoreFile:
		store, err := file.NewStore(cfg.StorePath)
		if err != nil {
			return nil, err
		}
		logger.Info("using file client store", zap.String("path", store.Path()))
		return &clientStore{store: store, close: noop}, nil

	case config.StorePostgres:
		pool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres client store", zap.String("profile", cfg.StoreProfile))
		return &clientStore{
			store: postgres.NewClientStore(pool, cfg.StoreProfile),
			close: func(context.Context) { pool.Close() },
		}, nil

	case config.StoreMongo:
		client, err := mongostore.Connect(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		store := mongostore.NewClientStore(client.Database(cfg.MongoDatabase), cfg.StoreProfile)
		if err := store.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, err
		}
		logger.Info("using mongo client store",
			zap.String("database", cfg.MongoDatabase),
			zap.String("profile", cfg.StoreProfile),
		)
		return &clientStore{
			store: store,
			close: func(ctx context.Context) {
				if err := client.Disconnect(ctx); err != nil {
					logger.Error("failed to disconnect from mongo", zap.Error(err))
				}
			},
		}, nil
	}

	return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
}

// initDatabase создает пул соединений с базой данных и выполняет миграции
func initDatabase(ctx context.Context, databaseURI string, logger *zap.Logger) (*pgxpool.Pool, error) {
	dbPool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := postgres.RunMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return dbPool, nil
}
