package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/avc/orderchat/internal/domain"
	"go.uber.org/zap"
)

// Тексты реплик бота, которые формирует сам клиент
const (
	ChatFailureMessage = "Sorry, I encountered an error processing your request. Please try again."
	NewOrderPrompt     = "What would you like to order?"
	greetingFormat     = "Welcome %s! to FireBall, ready to take your order."
)

// OrderSessionConfig настройки сессии заказа
type OrderSessionConfig struct {
	CartPolicy domain.CartPolicy
}

// Exchange один обмен репликами с сервисом: эхо пользователя уже в логе, ответ еще нет
type Exchange struct {
	Text      string
	SessionID string
	Turn      domain.ChatTurn
	StartedAt time.Time
}

// OrderSession оркестрирует идентификатор, регистрацию, лог, корзину и чек.
// Одновременно в полете не более одного обмена с сервисом.
type OrderSession struct {
	identity   *IdentityManager
	gate       *RegistrationGate
	ordering   domain.OrderingService
	log        *ConversationLog
	cart       *CartProjector
	receipt    *ReceiptLifecycle
	cartPolicy domain.CartPolicy
	logger     *zap.Logger

	startOnce sync.Once
	mu        sync.Mutex
	state     domain.SessionState
	sessionID string
	menu      []domain.MenuItem
	started   bool
	inFlight  *Exchange
	observer  domain.Observer
}

// NewOrderSession создает новую сессию заказа
func NewOrderSession(
	identity *IdentityManager,
	gate *RegistrationGate,
	ordering domain.OrderingService,
	cfg OrderSessionConfig,
	logger *zap.Logger,
) *OrderSession {
	policy := cfg.CartPolicy
	if !policy.Valid() {
		policy = domain.CartPolicyKeep
	}

	s := &OrderSession{
		identity:   identity,
		gate:       gate,
		ordering:   ordering,
		log:        NewConversationLog(),
		cart:       NewCartProjector(),
		receipt:    NewReceiptLifecycle(),
		cartPolicy: policy,
		logger:     logger,
		state:      domain.StateAwaitingRegistration,
		menu:       []domain.MenuItem{},
		observer:   domain.ObserverFunc(func(domain.Event) {}),
	}
	gate.SetPromptHook(s.onPrompt)

	return s
}

// SetObserver задает получателя событий сессии
func (s *OrderSession) SetObserver(observer domain.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if observer == nil {
		observer = domain.ObserverFunc(func(domain.Event) {})
	}
	s.observer = observer
}

// Start выполняет начальную загрузку: идентификатор, регистрация, меню,
// приветствие и корзина для зарегистрированного клиента, иначе окно регистрации.
// Повторные вызовы ничего не делают.
func (s *OrderSession) Start(ctx context.Context) {
	s.startOnce.Do(func() { s.start(ctx) })
}

func (s *OrderSession) start(ctx context.Context) {
	sessionID := s.identity.SessionID(ctx)
	s.gate.Load(ctx)

	menu, err := s.ordering.GetMenu(ctx)
	if err != nil {
		s.logger.Warn("failed to fetch menu, continuing with empty catalog", zap.Error(err))
		menu = []domain.MenuItem{}
	}

	profile, registered := s.gate.Profile()

	s.mu.Lock()
	s.sessionID = sessionID
	s.menu = menu
	s.started = true
	if registered {
		s.appendBot(fmt.Sprintf(greetingFormat, profile.Name), false)
		s.setState(domain.StateIdle)
	} else {
		s.setState(domain.StateAwaitingRegistration)
	}
	s.mu.Unlock()

	s.logger.Info("order session started",
		zap.String("session_id", sessionID),
		zap.Bool("registered", registered),
		zap.Bool("ephemeral", s.identity.Ephemeral()),
		zap.Int("menu_items", len(menu)),
	)

	if registered {
		s.restoreCart(ctx, sessionID)
		return
	}
	s.gate.PromptIfUnregistered()
}

// restoreCart подтягивает корзину сервиса после перезапуска клиента
func (s *OrderSession) restoreCart(ctx context.Context, sessionID string) {
	resp, err := s.ordering.GetCart(ctx, sessionID)
	if err == nil {
		err = ValidateLines(resp.Cart)
	}
	if err != nil {
		s.logger.Warn("failed to restore cart", zap.String("session_id", sessionID), zap.Error(err))
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight == nil {
		s.replaceCart(resp.Cart)
	}
}

// Register регистрирует клиента и добавляет приветствие в лог
func (s *OrderSession) Register(ctx context.Context, name, phone string) (string, error) {
	sessionID := s.identity.SessionID(ctx)

	welcome, err := s.gate.Register(ctx, name, phone, sessionID)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.appendBot(welcome, false)
	if s.state == domain.StateAwaitingRegistration {
		s.setState(domain.StateIdle)
	}

	return welcome, nil
}

// DismissRegistrationPrompt закрывает окно регистрации без регистрации
func (s *OrderSession) DismissRegistrationPrompt() {
	s.gate.DismissPrompt()
}

// Submit отправляет реплику и ждет ответа сервиса.
// Возвращает только ошибки предусловий; сбой обмена отражается репликой в логе.
func (s *OrderSession) Submit(ctx context.Context, text string) error {
	ex, err := s.BeginExchange(ctx, text)
	if err != nil {
		return err
	}
	_ = s.CompleteExchange(ctx, ex)
	return nil
}

// BeginExchange первая фаза обмена: проверяет предусловия, добавляет реплику
// пользователя в лог до ответа сервиса и переводит сессию в AwaitingResponse
func (s *OrderSession) BeginExchange(ctx context.Context, text string) (*Exchange, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.ErrEmptyMessage
	}

	sessionID := s.identity.SessionID(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.gate.IsRegistered() {
		return nil, domain.ErrNotRegistered
	}

	switch s.state {
	case domain.StateAwaitingResponse:
		return nil, domain.ErrExchangeInFlight
	case domain.StateReceiptShown:
		return nil, domain.ErrOrderFinalized
	}

	turn := s.appendUser(text)
	ex := &Exchange{
		Text:      text,
		SessionID: sessionID,
		Turn:      turn,
		StartedAt: time.Now(),
	}
	s.inFlight = ex
	s.setState(domain.StateAwaitingResponse)

	return ex, nil
}

// CompleteExchange вторая фаза обмена: запрос к сервису и применение ответа.
// Возвращает ошибку обмена уже после того, как она отражена в логе.
func (s *OrderSession) CompleteExchange(ctx context.Context, ex *Exchange) error {
	resp, err := s.ordering.Chat(ctx, domain.ChatRequest{
		Message:   ex.Text,
		SessionID: ex.SessionID,
	})
	if err == nil && resp.CartItems != nil {
		if verr := ValidateLines(resp.CartItems); verr != nil {
			err = NewNetworkError("chat", verr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight != ex {
		s.logger.Error("exchange completed out of turn", zap.String("session_id", ex.SessionID))
		return fmt.Errorf("order session: exchange is not in flight")
	}
	s.inFlight = nil

	if err != nil {
		s.failExchange(ex, err)
		return err
	}

	// Корзину заменяем только если сервис ее прислал
	if resp.CartItems != nil {
		s.replaceCart(resp.CartItems)
	}

	s.receipt.Observe(resp.HasReceipt)
	s.appendBot(resp.Response, resp.HasReceipt)

	if resp.HasReceipt {
		s.setState(domain.StateReceiptShown)
	} else {
		s.setState(domain.StateIdle)
	}

	s.logger.Debug("chat exchange completed",
		zap.String("session_id", ex.SessionID),
		zap.Bool("has_receipt", resp.HasReceipt),
		zap.Bool("cart_replaced", resp.CartItems != nil),
		zap.Duration("duration", time.Since(ex.StartedAt)),
	)

	return nil
}

// AbortExchange завершает обмен сбоем без обращения к сервису
func (s *OrderSession) AbortExchange(ex *Exchange, cause error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.inFlight != ex {
		return
	}
	s.inFlight = nil
	s.failExchange(ex, cause)
}

// failExchange добавляет общую реплику об ошибке. Корзина и чек не меняются. Вызывается под s.mu.
func (s *OrderSession) failExchange(ex *Exchange, cause error) {
	s.logger.Error("chat exchange failed",
		zap.String("session_id", ex.SessionID),
		zap.Duration("duration", time.Since(ex.StartedAt)),
		zap.Error(cause),
	)
	s.appendBot(ChatFailureMessage, false)
	s.setState(domain.StateIdle)
}

// StartNewOrder сбрасывает показанный чек и предлагает сделать новый заказ.
// Поведение корзины определяется политикой CartPolicy.
func (s *OrderSession) StartNewOrder(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != domain.StateReceiptShown {
		return domain.ErrNoReceipt
	}

	switch s.cartPolicy {
	case domain.CartPolicyClear:
		s.replaceCart(nil)

	case domain.CartPolicyClearRemote:
		sessionID := s.sessionIDLocked(ctx)
		s.setState(domain.StateAwaitingResponse)

		s.mu.Unlock()
		err := s.ordering.ClearCart(ctx, sessionID)
		s.mu.Lock()

		if err != nil {
			s.logger.Warn("failed to clear remote cart, keeping last known cart",
				zap.String("session_id", sessionID),
				zap.Error(err),
			)
		} else {
			s.replaceCart(nil)
		}
	}

	s.receipt.Reset()
	s.appendBot(NewOrderPrompt, false)
	s.setState(domain.StateIdle)

	return nil
}

// State возвращает текущее состояние сессии
func (s *OrderSession) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Started сообщает, выполнена ли начальная загрузка
func (s *OrderSession) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

// SessionID возвращает идентификатор сессии
func (s *OrderSession) SessionID(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sessionIDLocked(ctx)
}

func (s *OrderSession) sessionIDLocked(ctx context.Context) string {
	if s.sessionID == "" {
		s.sessionID = s.identity.SessionID(ctx)
	}
	return s.sessionID
}

// Ephemeral сообщает, что идентификатор сессии не сохранен
func (s *OrderSession) Ephemeral() bool {
	return s.identity.Ephemeral()
}

// Menu возвращает меню, загруженное при старте
func (s *OrderSession) Menu() []domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MenuItem, len(s.menu))
	copy(out, s.menu)
	return out
}

// Turns возвращает лог разговора
func (s *OrderSession) Turns() []domain.ChatTurn {
	return s.log.All()
}

// Cart возвращает текущий снимок корзины
func (s *OrderSession) Cart() []domain.CartLine {
	return s.cart.Lines()
}

// CartTotal возвращает итог текущей корзины
func (s *OrderSession) CartTotal() float64 {
	return s.cart.Total()
}

// HasReceipt сообщает, показан ли чек
func (s *OrderSession) HasReceipt() bool {
	return s.receipt.Active()
}

// Snapshot возвращает снимок сессии для отображения
func (s *OrderSession) Snapshot(ctx context.Context) domain.SessionView {
	s.mu.Lock()
	defer s.mu.Unlock()

	view := domain.SessionView{
		SessionID:  s.sessionIDLocked(ctx),
		Ephemeral:  s.identity.Ephemeral(),
		State:      s.state,
		Registered: s.gate.IsRegistered(),
		PromptOpen: s.gate.PromptOpen(),
		Turns:      RenderTurns(s.log.All()),
		Cart:       s.cart.Lines(),
		Total:      s.cart.Total(),
	}
	if profile, ok := s.gate.Profile(); ok {
		view.Customer = &profile
	}

	return view
}

// appendUser добавляет реплику пользователя. Вызывается под s.mu.
func (s *OrderSession) appendUser(text string) domain.ChatTurn {
	turn := s.log.AppendUser(text)
	s.notify(domain.Event{Type: domain.EventTurnAppended, Turn: &turn})
	return turn
}

// appendBot добавляет реплику бота. Вызывается под s.mu.
func (s *OrderSession) appendBot(text string, isReceipt bool) domain.ChatTurn {
	turn := s.log.AppendBot(text, isReceipt)
	s.notify(domain.Event{Type: domain.EventTurnAppended, Turn: &turn})
	return turn
}

// setState меняет состояние сессии. Вызывается под s.mu.
func (s *OrderSession) setState(state domain.SessionState) {
	if s.state == state {
		return
	}
	s.state = state
	s.notify(domain.Event{Type: domain.EventStateChanged, State: state})
}

// replaceCart заменяет снимок корзины. Вызывается под s.mu.
func (s *OrderSession) replaceCart(lines []domain.CartLine) {
	s.cart.Replace(lines)
	s.notify(domain.Event{Type: domain.EventCartReplaced, Cart: s.cart.Lines(), Total: s.cart.Total()})
}

func (s *OrderSession) onPrompt(open bool) {
	event := domain.Event{Type: domain.EventPromptClosed}
	if open {
		event.Type = domain.EventPromptShown
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.notify(event)
}

// notify отправляет событие наблюдателю. Вызывается под s.mu.
func (s *OrderSession) notify(event domain.Event) {
	event.At = time.Now()
	s.observer.Notify(event)
}
