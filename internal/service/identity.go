package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/avc/orderchat/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// IdentityManager выдает постоянный идентификатор сессии
type IdentityManager struct {
	store     domain.ClientStore
	logger    *zap.Logger
	mu        sync.Mutex
	sessionID string
	ephemeral bool
}

// NewIdentityManager создает новый IdentityManager
func NewIdentityManager(store domain.ClientStore, logger *zap.Logger) *IdentityManager {
	return &IdentityManager{
		store:  store,
		logger: logger,
	}
}

// NewSessionID генерирует новый идентификатор: UUIDv4 (122 случайных бита) без дефисов
func NewSessionID() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}

// SessionID возвращает идентификатор сессии, создавая и сохраняя его при первом обращении.
// Если хранилище недоступно, выдается временный идентификатор на время жизни процесса.
func (m *IdentityManager) SessionID(ctx context.Context) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sessionID != "" {
		return m.sessionID
	}

	stored, err := m.store.Get(ctx, domain.KeySessionID)
	switch {
	case err == nil && stored != "":
		m.sessionID = stored
		return m.sessionID

	case err == nil || errors.Is(err, domain.ErrKeyNotFound):
		id := NewSessionID()
		m.warnIfRegistered(ctx, id)
		if err := m.store.Set(ctx, domain.KeySessionID, id); err != nil {
			m.degrade(id, err)
			return m.sessionID
		}
		m.sessionID = id
		m.logger.Info("session id created", zap.String("session_id", id))
		return m.sessionID

	default:
		m.degrade(NewSessionID(), err)
		return m.sessionID
	}
}

// Ephemeral сообщает, что идентификатор не сохранен в хранилище
func (m *IdentityManager) Ephemeral() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ephemeral
}

// degrade переключает менеджер на временный идентификатор. Вызывается под m.mu.
func (m *IdentityManager) degrade(id string, err error) {
	m.sessionID = id
	m.ephemeral = true
	m.logger.Warn("client store unavailable, using ephemeral session id",
		zap.String("session_id", id),
		zap.Error(err),
	)
}

// warnIfRegistered сообщает о регистрации без идентификатора сессии:
// сервис заказов не знает нового идентификатора. Вызывается под m.mu.
func (m *IdentityManager) warnIfRegistered(ctx context.Context, id string) {
	registered, err := m.store.Get(ctx, domain.KeyRegistered)
	if err != nil || registered != domain.RegisteredValue {
		return
	}
	m.logger.Warn("registration record exists without session id, ordering service does not know the new id",
		zap.String("session_id", id),
	)
}
