package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"salary-calculator/internal/storage"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "data", "payroll.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestStorage_GetMissingKey(t *testing.T) {
	s := newTestStorage(t)

	_, err := s.Get(context.Background(), storage.DealersKey)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_SetGetOverwrite(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.LocationsKey, []byte(`[1]`)))
	require.NoError(t, s.Set(ctx, storage.LocationsKey, []byte(`[1,2]`)))

	got, err := s.Get(ctx, storage.LocationsKey)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))
}

func TestStorage_Delete(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.DealersKey, []byte(`[]`)))
	require.NoError(t, s.Delete(ctx, storage.DealersKey))
	// повторное удаление не ошибка
	require.NoError(t, s.Delete(ctx, storage.DealersKey))

	_, err := s.Get(ctx, storage.DealersKey)
	assert.ErrorIs(t, err, storage.ErrKeyNotFound)
}

func TestStorage_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "payroll.db")
	ctx := context.Background()

	s, err := New(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, storage.DealersKey, []byte(`{"version":1,"items":[]}`)))
	require.NoError(t, s.Close())

	s, err = New(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, storage.DealersKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"version":1,"items":[]}`, string(got))
}

func TestStorage_EmptyKey(t *testing.T) {
	s := newTestStorage(t)

	err := s.Set(context.Background(), "", []byte(`x`))
	assert.ErrorIs(t, err, storage.ErrEmptyKey)
}

func TestStorage_InMemoryPath(t *testing.T) {
	s, err := New(":memory:")
	require.NoError(t, err)
	defer s.Close()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, storage.DealersKey, []byte(`[]`)))

	got, err := s.Get(ctx, storage.DealersKey)
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}
