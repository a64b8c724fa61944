package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avc/orderchat/internal/domain"
	"github.com/avc/orderchat/internal/service"
	"go.uber.org/zap"
)

// OrderSession определяет методы сессии заказа, которые нужны обработчикам.
type OrderSession interface {
	Snapshot(ctx context.Context) domain.SessionView
	Menu() []domain.MenuItem
	Register(ctx context.Context, name, phone string) (string, error)
	DismissRegistrationPrompt()
	BeginExchange(ctx context.Context, text string) (*service.Exchange, error)
	CompleteExchange(ctx context.Context, ex *service.Exchange) error
	AbortExchange(ex *service.Exchange, cause error)
	StartNewOrder(ctx context.Context) error
}

// RegisterRequest тело запроса регистрации
type RegisterRequest struct {
	Name  string `json:"customer_name"`
	Phone string `json:"customer_phone"`
}

// RegisterResponse ответ на успешную регистрацию
type RegisterResponse struct {
	Message string             `json:"message"`
	Session domain.SessionView `json:"session"`
}

// MenuResponse ответ GET /api/menu
type MenuResponse struct {
	Menu []domain.MenuItem `json:"menu"`
}

type SessionHandler struct {
	session OrderSession
	logger  *zap.Logger
}

func NewSessionHandler(session OrderSession, logger *zap.Logger) *SessionHandler {
	return &SessionHandler{
		session: session,
		logger:  logger,
	}
}

// Get возвращает снимок сессии
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Snapshot(r.Context()), h.logger)
}

// Menu возвращает меню, загруженное при старте
func (h *SessionHandler) Menu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, MenuResponse{Menu: h.session.Menu()}, h.logger)
}

// Register регистрирует клиента
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	welcome, err := h.session.Register(context.WithoutCancel(r.Context()), req.Name, req.Phone)
	if err != nil {
		writeError(w, r, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, RegisterResponse{
		Message: welcome,
		Session: h.session.Snapshot(r.Context()),
	}, h.logger)
}

// DismissPrompt закрывает окно регистрации
func (h *SessionHandler) DismissPrompt(w http.ResponseWriter, r *http.Request) {
	h.session.DismissRegistrationPrompt()
	w.WriteHeader(http.StatusNoContent)
}
