package app

import (
	"github.com/avc/orderchat/internal/config"
	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/handlers"
	"github.com/avc/orderchat/internal/service"
	"github.com/avc/orderchat/internal/worker"
	"go.uber.org/zap"
)

// dispatchWorkers один воркер: сессия допускает один обмен в полете
const dispatchWorkers = 1

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	session *handlers.SessionHandler
	chat    *handlers.ChatHandler
	health  *handlers.HealthHandler
	stream  *handlers.StreamHub
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	ordering   domain.OrderingService
	session    *service.OrderSession
	handlers   *handlerSet
	dispatcher *worker.Dispatcher
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, store domain.ClientStore, logger *zap.Logger) *dependencies {
	ordering := service.NewOrderingClient(cfg.OrderingAddress, cfg.RequestTimeout)

	identity := service.NewIdentityManager(store, logger)
	gate := service.NewRegistrationGate(store, ordering, cfg.RegistrationPromptDelay, logger)
	session := service.NewOrderSession(identity, gate, ordering, service.OrderSessionConfig{
		CartPolicy: cfg.NewOrderCartPolicy,
	}, logger)

	dispatcher := worker.NewDispatcher(dispatchWorkers, cfg.DispatchQueueSize, session, logger)

	stream := handlers.NewStreamHub(session.Snapshot, logger)
	session.SetObserver(stream)

	hdlrs := &handlerSet{
		session: handlers.NewSessionHandler(session, logger),
		chat:    handlers.NewChatHandler(session, dispatcher, logger),
		health:  handlers.NewHealthHandler(store, session, logger),
		stream:  stream,
	}

	return &dependencies{
		ordering:   ordering,
		session:    session,
		handlers:   hdlrs,
		dispatcher: dispatcher,
	}
}
