package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Pinger проверяет доступность хранилища клиента.
type Pinger interface {
	Ping(ctx context.Context) error
}

// IdentityChecker сообщает, сохранен ли идентификатор сессии.
type IdentityChecker interface {
	Ephemeral() bool
	Started() bool
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	store    Pinger
	identity IdentityChecker
	logger   *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(store Pinger, identity IdentityChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		store:    store,
		identity: identity,
		logger:   logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Identity string `json:"identity"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Store:    "ok",
		Identity: "persistent",
	}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		response.Status = "degraded"
		response.Store = "unavailable"
		h.logger.Warn("health check: client store unavailable", zap.Error(err))
	}

	// Эфемерный идентификатор не переживет перезапуск
	if h.identity.Ephemeral() {
		response.Status = "degraded"
		response.Identity = "ephemeral"
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response, h.logger)
}

// Ready возвращает готовность после начальной загрузки сессии
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if !h.identity.Started() {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK")) //nolint:errcheck
}
