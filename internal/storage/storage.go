package storage

import (
	"context"
	"errors"
)

var (
	ErrKeyNotFound = errors.New("key not found")
	ErrEmptyKey    = errors.New("empty key")
)

// Ключи, под которыми лежат коллекции.
const (
	LocationsKey = "salary_calculator_locations"
	DealersKey   = "salary_calculator_dealers"
)

// KeyValue - постоянное хранилище вида ключ -> JSON документ.
// Get возвращает ErrKeyNotFound, если ключа нет.
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
