// Package memory - хранилище в памяти для тестов; ":memory:" в storage_path обслуживает sqlite.
package memory

import (
	"context"
	"fmt"
	"sync"

	"salary-calculator/internal/storage"
)

type Storage struct {
	mu   sync.RWMutex
	data map[string][]byte

	// FailWrites заставляет Set/Delete возвращать ошибку (квота, диск).
	FailWrites error
}

func New() *Storage {
	return &Storage{data: make(map[string][]byte)}
}

func (s *Storage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.data[key]
	if !ok {
		return nil, fmt.Errorf("storage.memory.Get: %s: %w", key, storage.ErrKeyNotFound)
	}

	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *Storage) Set(_ context.Context, key string, value []byte) error {
	if key == "" {
		return storage.ErrEmptyKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}

	v := make([]byte, len(value))
	copy(v, value)
	s.data[key] = v
	return nil
}

func (s *Storage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.FailWrites != nil {
		return s.FailWrites
	}

	delete(s.data, key)
	return nil
}

// Len - количество ключей, для тестов.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
