package service

import (
	"fmt"
)

// ValidationError пустое обязательное поле. Разрешается локально, до сервиса не доходит.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s is required", e.Field)
}

// NewValidationError создает новую ошибку валидации
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field}
}

// NetworkError запрос не удалось отправить или разобрать ответ
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// NewNetworkError создает новую сетевую ошибку
func NewNetworkError(op string, err error) *NetworkError {
	return &NetworkError{Op: op, Err: err}
}

// ServiceError сервис доступен, но вернул признак неуспеха
type ServiceError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *ServiceError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: service error (status %d): %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: service error (status %d)", e.Op, e.StatusCode)
}

// NewServiceError создает новую ошибку сервиса
func NewServiceError(op string, statusCode int, message string) *ServiceError {
	return &ServiceError{Op: op, StatusCode: statusCode, Message: message}
}

// RegistrationError сетевая или сервисная ошибка регистрации, показывается пользователю
type RegistrationError struct {
	Err error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("registration failed: %v", e.Err)
}

func (e *RegistrationError) Unwrap() error {
	return e.Err
}

// UserMessage текст ошибки для пользователя
func (e *RegistrationError) UserMessage() string {
	return "There was an error registering your information. Please try again."
}
