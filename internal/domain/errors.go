package domain

import "errors"

// Ошибки регистрации
var (
	ErrNotRegistered        = errors.New("customer is not registered")
	ErrAlreadyRegistered    = errors.New("customer already registered")
	ErrRegistrationInFlight = errors.New("registration already in progress")
)

// Ошибки разговора и заказа
var (
	ErrEmptyMessage     = errors.New("message is empty")
	ErrExchangeInFlight = errors.New("chat exchange already in flight")
	ErrOrderFinalized   = errors.New("order finalized, start a new order first")
	ErrNoReceipt        = errors.New("no receipt shown")
	ErrInvalidCart      = errors.New("invalid cart data")
	ErrQueueFull        = errors.New("dispatch queue is full")
)

// Ошибки хранилища
var (
	ErrKeyNotFound = errors.New("key not found")
)
