package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"go.uber.org/zap"
)

// DefaultWelcomeMessage приветствие, если сервис не прислал своего
const DefaultWelcomeMessage = "Welcome! How can I help you today?"

// DefaultPromptDelay задержка показа окна регистрации после загрузки
const DefaultPromptDelay = 500 * time.Millisecond

// RegistrationGate управляет регистрацией клиента и окном регистрации
type RegistrationGate struct {
	store       domain.ClientStore
	ordering    domain.OrderingService
	logger      *zap.Logger
	promptDelay time.Duration

	mu              sync.Mutex
	status          domain.RegistrationStatus
	profile         domain.CustomerProfile
	inFlight        bool
	promptOpen      bool
	promptScheduled bool
	promptTimer     *time.Timer
	onPrompt        func(open bool)
}

// NewRegistrationGate создает новый RegistrationGate
func NewRegistrationGate(
	store domain.ClientStore,
	ordering domain.OrderingService,
	promptDelay time.Duration,
	logger *zap.Logger,
) *RegistrationGate {
	if promptDelay < 0 {
		promptDelay = DefaultPromptDelay
	}
	return &RegistrationGate{
		store:       store,
		ordering:    ordering,
		logger:      logger,
		promptDelay: promptDelay,
		status:      domain.StatusUnregistered,
	}
}

// SetPromptHook задает функцию, вызываемую при показе и закрытии окна регистрации
func (g *RegistrationGate) SetPromptHook(fn func(open bool)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onPrompt = fn
}

// Load читает статус регистрации и профиль из хранилища.
// Ошибка хранилища оставляет клиента незарегистрированным.
func (g *RegistrationGate) Load(ctx context.Context) {
	registered, err := g.store.Get(ctx, domain.KeyRegistered)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			g.logger.Warn("failed to read registration status", zap.Error(err))
		}
		return
	}
	if registered != domain.RegisteredValue {
		return
	}

	profile := domain.CustomerProfile{
		Name:  g.readOptional(ctx, domain.KeyCustomerName),
		Phone: g.readOptional(ctx, domain.KeyCustomerPhone),
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.status = domain.StatusRegistered
	g.profile = profile
}

func (g *RegistrationGate) readOptional(ctx context.Context, key string) string {
	value, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrKeyNotFound) {
			g.logger.Warn("failed to read customer profile", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return value
}

// Status возвращает статус регистрации
func (g *RegistrationGate) Status() domain.RegistrationStatus {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.status
}

// IsRegistered сообщает, зарегистрирован ли клиент
func (g *RegistrationGate) IsRegistered() bool {
	return g.Status() == domain.StatusRegistered
}

// Profile возвращает профиль зарегистрированного клиента
func (g *RegistrationGate) Profile() (domain.CustomerProfile, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.profile, g.status == domain.StatusRegistered
}

// PromptOpen сообщает, показано ли окно регистрации
func (g *RegistrationGate) PromptOpen() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.promptOpen
}

// PromptIfUnregistered планирует показ окна регистрации через promptDelay.
// Планируется не более одного раза за сессию.
func (g *RegistrationGate) PromptIfUnregistered() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.status == domain.StatusRegistered || g.promptScheduled {
		return
	}
	g.promptScheduled = true
	g.promptTimer = time.AfterFunc(g.promptDelay, g.showPrompt)
}

func (g *RegistrationGate) showPrompt() {
	g.mu.Lock()
	if g.status == domain.StatusRegistered || g.promptOpen {
		g.mu.Unlock()
		return
	}
	g.promptOpen = true
	hook := g.onPrompt
	g.mu.Unlock()

	if hook != nil {
		hook(true)
	}
}

// DismissPrompt закрывает окно регистрации. Повторно оно не показывается.
func (g *RegistrationGate) DismissPrompt() {
	g.closePrompt()
}

func (g *RegistrationGate) closePrompt() {
	g.mu.Lock()
	if g.promptTimer != nil {
		g.promptTimer.Stop()
	}
	wasOpen := g.promptOpen
	g.promptOpen = false
	hook := g.onPrompt
	g.mu.Unlock()

	if wasOpen && hook != nil {
		hook(false)
	}
}

// Register регистрирует клиента в сервисе заказов и сохраняет профиль.
// Возвращает приветствие для лога разговора.
func (g *RegistrationGate) Register(ctx context.Context, name, phone, sessionID string) (string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	// Валидация входных данных
	if name == "" {
		return "", NewValidationError("name")
	}
	if phone == "" {
		return "", NewValidationError("phone")
	}

	g.mu.Lock()
	if g.status == domain.StatusRegistered {
		g.mu.Unlock()
		return "", domain.ErrAlreadyRegistered
	}
	if g.inFlight {
		g.mu.Unlock()
		return "", domain.ErrRegistrationInFlight
	}
	g.inFlight = true
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		g.inFlight = false
		g.mu.Unlock()
	}()

	resp, err := g.ordering.Register(ctx, domain.RegistrationRequest{
		CustomerName:  name,
		CustomerPhone: phone,
		SessionID:     sessionID,
	})
	if err != nil {
		g.logger.Warn("registration failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return "", &RegistrationError{Err: err}
	}

	welcome := resp.Message
	if welcome == "" {
		welcome = DefaultWelcomeMessage
	}

	// Сервис подтвердил регистрацию: при сбое хранилища статус живет только в памяти процесса
	err = g.store.SetMany(ctx, map[string]string{
		domain.KeyRegistered:    domain.RegisteredValue,
		domain.KeyCustomerName:  name,
		domain.KeyCustomerPhone: phone,
	})
	if err != nil {
		g.logger.Warn("registration acknowledged but not persisted",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
	} else {
		g.logger.Info("customer registered", zap.String("session_id", sessionID))
	}

	g.mu.Lock()
	g.status = domain.StatusRegistered
	g.profile = domain.CustomerProfile{Name: name, Phone: phone}
	g.mu.Unlock()

	g.closePrompt()

	return welcome, nil
}
