package domain

import "context"

// OrderingService определяет методы взаимодействия с сервисом заказов
type OrderingService interface {
	GetMenu(ctx context.Context) ([]MenuItem, error)
	Register(ctx context.Context, req RegistrationRequest) (*RegistrationResponse, error)
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
	GetCart(ctx context.Context, sessionID string) (*CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) error
}

// ClientStore определяет постоянное key-value хранилище клиента.
// Get возвращает ErrKeyNotFound, если ключ отсутствует.
type ClientStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	SetMany(ctx context.Context, values map[string]string) error
	Ping(ctx context.Context) error
}

// Observer получает события сессии в порядке изменений.
// Notify не должен блокироваться.
type Observer interface {
	Notify(event Event)
}

// ObserverFunc адаптер функции к Observer
type ObserverFunc func(event Event)

// Notify вызывает f(event)
func (f ObserverFunc) Notify(event Event) {
	f(event)
}
