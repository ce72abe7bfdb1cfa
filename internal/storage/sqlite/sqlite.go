package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"salary-calculator/internal/storage"
)

// Storage - ключ/значение в одном файле sqlite.
type Storage struct {
	db *sql.DB
	mu sync.RWMutex
}

// New открывает (или создаёт) базу по пути path. ":memory:" - база в памяти.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("%s: create dir %s: %w", op, dir, err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	// один коннект, иначе у :memory: у каждого соединения своя база
	db.SetMaxOpenConns(1)

	s := &Storage{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: migrate: %w", op, err)
	}

	return s, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) migrate() error {
	_, err := s.db.Exec(`
	CREATE TABLE IF NOT EXISTS kv (
		key        TEXT PRIMARY KEY,
		value      TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return err
}

func (s *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	const op = "storage.sqlite.Get"

	if key == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrEmptyKey)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %s: %w", op, key, storage.ErrKeyNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", op, key, err)
	}

	return []byte(value), nil
}

func (s *Storage) Set(ctx context.Context, key string, value []byte) error {
	const op = "storage.sqlite.Set"

	if key == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrEmptyKey)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%s: %s: %w", op, key, err)
	}

	return nil
}

// Delete удаляет ключ; отсутствие ключа ошибкой не считается.
func (s *Storage) Delete(ctx context.Context, key string) error {
	const op = "storage.sqlite.Delete"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("%s: %s: %w", op, key, err)
	}

	return nil
}
