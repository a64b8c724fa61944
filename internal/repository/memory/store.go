package memory

import (
	"context"
	"sync"

	"github.com/avc/orderchat/internal/domain"
)

// Store реализует domain.ClientStore в памяти процесса
type Store struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewStore создает новый Store, опционально с начальными значениями
func NewStore(initial map[string]string) *Store {
	values := make(map[string]string, len(initial))
	for k, v := range initial {
		values[k] = v
	}
	return &Store{values: values}
}

// Get возвращает значение по ключу
func (s *Store) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.values[key]
	if !ok {
		return "", domain.ErrKeyNotFound
	}
	return value, nil
}

// Set сохраняет значение
func (s *Store) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// SetMany сохраняет несколько значений
func (s *Store) SetMany(_ context.Context, values map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, v := range values {
		s.values[k] = v
	}
	return nil
}

// Ping всегда успешен
func (s *Store) Ping(_ context.Context) error {
	return nil
}
