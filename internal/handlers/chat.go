package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avc/orderchat/internal/service"
	"go.uber.org/zap"
)

// Dispatcher ставит обмен с сервисом заказов в фоновую очередь.
type Dispatcher interface {
	Enqueue(ex *service.Exchange) error
}

// ChatRequest тело запроса отправки реплики
type ChatRequest struct {
	Message string `json:"message"`
}

type ChatHandler struct {
	session    OrderSession
	dispatcher Dispatcher
	logger     *zap.Logger
}

func NewChatHandler(session OrderSession, dispatcher Dispatcher, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		session:    session,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Chat отправляет реплику. Реплика пользователя попадает в лог сразу,
// ответ сервиса применяется в фоне. С ?wait=true обработчик ждет ответа.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	wait, _ := strconv.ParseBool(r.URL.Query().Get("wait"))

	ex, err := h.session.BeginExchange(r.Context(), req.Message)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	if wait {
		// Обмен не прерывается при отключении клиента: ответ сервиса применяется всегда.
		// Ошибка обмена уже отражена репликой в логе
		_ = h.session.CompleteExchange(context.WithoutCancel(r.Context()), ex)
		writeJSON(w, http.StatusOK, h.session.Snapshot(r.Context()), h.logger)
		return
	}

	if err := h.dispatcher.Enqueue(ex); err != nil {
		h.session.AbortExchange(ex, err)
		h.logger.Warn("failed to dispatch exchange",
			zap.String("request_id", GetRequestID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()}, h.logger)
		return
	}

	writeJSON(w, http.StatusAccepted, h.session.Snapshot(r.Context()), h.logger)
}

// NewOrder сбрасывает показанный чек и начинает новый заказ
func (h *ChatHandler) NewOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.session.StartNewOrder(context.WithoutCancel(r.Context())); err != nil {
		writeError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, h.session.Snapshot(r.Context()), h.logger)
}
