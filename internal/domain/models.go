package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SessionState представляет состояние сессии заказа
type SessionState string

const (
	StateAwaitingRegistration SessionState = "AWAITING_REGISTRATION"
	StateIdle                 SessionState = "IDLE"
	StateAwaitingResponse     SessionState = "AWAITING_RESPONSE"
	StateReceiptShown         SessionState = "RECEIPT_SHOWN"
)

// RegistrationStatus статус регистрации клиента. Переход только Unregistered -> Registered.
type RegistrationStatus string

const (
	StatusUnregistered RegistrationStatus = "UNREGISTERED"
	StatusRegistered   RegistrationStatus = "REGISTERED"
)

// Role определяет автора реплики
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// CartPolicy определяет, что происходит с корзиной при начале нового заказа
type CartPolicy string

const (
	CartPolicyKeep        CartPolicy = "keep"
	CartPolicyClear       CartPolicy = "clear"
	CartPolicyClearRemote CartPolicy = "clear-remote"
)

// Valid сообщает, известна ли политика
func (p CartPolicy) Valid() bool {
	switch p {
	case CartPolicyKeep, CartPolicyClear, CartPolicyClearRemote:
		return true
	}
	return false
}

// Ключи постоянного хранилища клиента
const (
	KeySessionID     = "cafebot_session_id"
	KeyRegistered    = "cafebot_registered"
	KeyCustomerName  = "cafebot_customer_name"
	KeyCustomerPhone = "cafebot_customer_phone"
)

// RegisteredValue значение ключа KeyRegistered для зарегистрированного клиента
const RegisteredValue = "true"

// CustomerProfile представляет данные клиента
type CustomerProfile struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// ChatTurn представляет одну реплику разговора. После добавления в лог не меняется.
type ChatTurn struct {
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	IsReceipt bool   `json:"is_receipt"`
}

// CartLine представляет позицию корзины
type CartLine struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Subtotal возвращает стоимость позиции
func (l CartLine) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.UnitPrice).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Valid проверяет инварианты позиции
func (l CartLine) Valid() bool {
	return l.Name != "" && l.UnitPrice >= 0 && l.Quantity > 0
}

// MenuItem представляет позицию меню. Только для отображения.
type MenuItem struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Category    string   `json:"category,omitempty"`
	Description string   `json:"description,omitempty"`
	Ingredients []string `json:"ingredients,omitempty"`
}

// RegistrationRequest тело запроса POST /register
type RegistrationRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	SessionID     string `json:"session_id"`
}

// RegistrationResponse ответ POST /register
type RegistrationResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// ChatRequest тело запроса POST /chat
type ChatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// ChatResponse ответ POST /chat.
// CartItems == nil означает, что данных корзины в ответе нет;
// пустой, но не nil срез означает пустую корзину.
type ChatResponse struct {
	Response   string     `json:"response"`
	CartItems  []CartLine `json:"cart_items,omitempty"`
	HasReceipt bool       `json:"has_receipt,omitempty"`
}

// CartResponse ответ GET /cart/{session_id}
type CartResponse struct {
	Cart         []CartLine `json:"cart"`
	CustomerName string     `json:"customer_name"`
}

// ReceiptLine строка структурированного чека
type ReceiptLine struct {
	Text     string `json:"text"`
	Emphasis bool   `json:"emphasis,omitempty"`
}

// ReceiptView структурированное представление чека
type ReceiptView struct {
	Title string        `json:"title"`
	Lines []ReceiptLine `json:"lines"`
}

// RenderedTurn реплика, подготовленная к отображению
type RenderedTurn struct {
	ChatTurn
	Receipt *ReceiptView `json:"receipt,omitempty"`
}

// SessionView снимок состояния сессии для отображения
type SessionView struct {
	SessionID  string           `json:"session_id"`
	Ephemeral  bool             `json:"ephemeral"`
	State      SessionState     `json:"state"`
	Registered bool             `json:"registered"`
	Customer   *CustomerProfile `json:"customer,omitempty"`
	PromptOpen bool             `json:"registration_prompt"`
	Turns      []RenderedTurn   `json:"turns"`
	Cart       []CartLine       `json:"cart"`
	Total      float64          `json:"total"`
}

// EventType тип события сессии
type EventType string

const (
	EventTurnAppended EventType = "turn_appended"
	EventStateChanged EventType = "state_changed"
	EventCartReplaced EventType = "cart_replaced"
	EventPromptShown  EventType = "prompt_shown"
	EventPromptClosed EventType = "prompt_closed"
)

// Event уведомление об изменении сессии
type Event struct {
	Type  EventType    `json:"type"`
	Turn  *ChatTurn    `json:"turn,omitempty"`
	State SessionState `json:"state,omitempty"`
	Cart  []CartLine   `json:"cart,omitempty"`
	Total float64      `json:"total,omitempty"`
	At    time.Time    `json:"at"`
}
