package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"golang.org/x/sync/errgroup"
	"salary-calculator/internal/storage"
)

// SchemaVersion - версия формата записей в хранилище.
// Версия 0 - голый JSON массив, как его писал браузер.
const SchemaVersion = 1

var ErrUnsupportedVersion = errors.New("unsupported schema version")

type envelope[T any] struct {
	Version int `json:"version"`
	Items   []T `json:"items"`
}

type observer interface {
	Observe(ids ...int64)
}

// Repository хранит объекты и дилеров в KeyValue. Ошибки чтения и записи
// наружу не отдаются: они пишутся в лог, вызывающий получает
// значение по умолчанию и продолжает работу со своим состоянием в памяти.
type Repository struct {
	log *slog.Logger
	kv  storage.KeyValue
	ids IDSource
}

func New(log *slog.Logger, kv storage.KeyValue, ids IDSource) *Repository {
	if ids == nil {
		ids = NewSequence()
	}
	return &Repository{log: log, kv: kv, ids: ids}
}

// ==================== LOCATIONS ====================

func (r *Repository) LoadLocations(ctx context.Context) []storage.Location {
	const op = "repository.LoadLocations"

	data, err := r.kv.Get(ctx, storage.LocationsKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		// первый запуск
		return r.seedLocations(ctx)
	}
	if err != nil {
		r.log.Error("failed to read locations, using defaults", slog.String("op", op), slog.String("error", err.Error()))
		return r.defaultLocations()
	}

	locations, err := decode[storage.Location](data)
	if err != nil {
		r.log.Error("failed to decode locations, reseeding defaults", slog.String("op", op), slog.String("error", err.Error()))
		return r.seedLocations(ctx)
	}

	r.observe(locationIDs(locations)...)

	return locations
}

func (r *Repository) SaveLocations(ctx context.Context, locations []storage.Location) {
	r.save(ctx, "repository.SaveLocations", storage.LocationsKey, locations)
}

// AddLocation не проверяет name/city, это делает вызывающий.
func (r *Repository) AddLocation(ctx context.Context, current []storage.Location, name, city, address string, typ storage.LocationType) []storage.Location {
	// current мог прийти не из Load
	r.observe(locationIDs(current)...)

	loc := storage.Location{
		ID:      r.ids.Next(),
		Name:    name,
		City:    city,
		Address: address,
		Type:    typ,
	}

	updated := append(slices.Clone(current), loc)
	r.SaveLocations(ctx, updated)

	return updated
}

func (r *Repository) RemoveLocation(ctx context.Context, current []storage.Location, id int64) []storage.Location {
	updated := slices.DeleteFunc(slices.Clone(current), func(l storage.Location) bool {
		return l.ID == id
	})
	if len(updated) == len(current) {
		return updated
	}

	r.SaveLocations(ctx, updated)

	return updated
}

func LocationByID(current []storage.Location, id int64) (storage.Location, bool) {
	i := slices.IndexFunc(current, func(l storage.Location) bool { return l.ID == id })
	if i < 0 {
		return storage.Location{}, false
	}
	return current[i], true
}

func (r *Repository) defaultLocations() []storage.Location {
	locations := make([]storage.Location, len(storage.DefaultLocations))
	for i, loc := range storage.DefaultLocations {
		loc.ID = r.ids.Next()
		locations[i] = loc
	}
	return locations
}

func (r *Repository) seedLocations(ctx context.Context) []storage.Location {
	locations := r.defaultLocations()
	r.SaveLocations(ctx, locations)

	r.log.Info("default locations seeded", slog.Int("count", len(locations)))

	return locations
}

// ==================== DEALERS ====================

func (r *Repository) LoadDealers(ctx context.Context) []storage.Dealer {
	const op = "repository.LoadDealers"

	data, err := r.kv.Get(ctx, storage.DealersKey)
	if errors.Is(err, storage.ErrKeyNotFound) {
		return []storage.Dealer{}
	}
	if err != nil {
		r.log.Error("failed to read dealers", slog.String("op", op), slog.String("error", err.Error()))
		return []storage.Dealer{}
	}

	dealers, err := decode[storage.Dealer](data)
	if err != nil {
		r.log.Error("failed to decode dealers", slog.String("op", op), slog.String("error", err.Error()))
		return []storage.Dealer{}
	}

	r.observe(dealerIDs(dealers)...)

	return dealers
}

func (r *Repository) SaveDealers(ctx context.Context, dealers []storage.Dealer) {
	r.save(ctx, "repository.SaveDealers", storage.DealersKey, dealers)
}

func (r *Repository) AddDealer(ctx context.Context, current []storage.Dealer, name string, locationID int64, coefGeneral, coefPersonal float64) []storage.Dealer {
	r.observe(dealerIDs(current)...)

	dealer := storage.Dealer{
		ID:           r.ids.Next(),
		Name:         name,
		LocationID:   locationID,
		CoefGeneral:  coefGeneral,
		CoefPersonal: coefPersonal,
	}

	updated := append(slices.Clone(current), dealer)
	r.SaveDealers(ctx, updated)

	return updated
}

func (r *Repository) RemoveDealer(ctx context.Context, current []storage.Dealer, id int64) []storage.Dealer {
	updated := slices.DeleteFunc(slices.Clone(current), func(d storage.Dealer) bool {
		return d.ID == id
	})
	if len(updated) == len(current) {
		return updated
	}

	r.SaveDealers(ctx, updated)

	return updated
}

// RemoveDealersByLocation удаляет всех дилеров объекта и возвращает, сколько удалено.
func (r *Repository) RemoveDealersByLocation(ctx context.Context, current []storage.Dealer, locationID int64) ([]storage.Dealer, int) {
	updated := slices.DeleteFunc(slices.Clone(current), func(d storage.Dealer) bool {
		return d.LocationID == locationID
	})
	removed := len(current) - len(updated)
	if removed > 0 {
		r.SaveDealers(ctx, updated)
	}

	return updated, removed
}

func DealersByLocation(current []storage.Dealer, locationID int64) []storage.Dealer {
	out := make([]storage.Dealer, 0)
	for _, d := range current {
		if d.LocationID == locationID {
			out = append(out, d)
		}
	}
	return out
}

// ==================== COMMON ====================

// LoadAll читает обе коллекции параллельно.
func (r *Repository) LoadAll(ctx context.Context) ([]storage.Location, []storage.Dealer, error) {
	var (
		locations []storage.Location
		dealers   []storage.Dealer
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		locations = r.LoadLocations(gCtx)
		return gCtx.Err()
	})
	g.Go(func() error {
		dealers = r.LoadDealers(gCtx)
		return gCtx.Err()
	})

	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("repository.LoadAll: %w", err)
	}

	return locations, dealers, nil
}

// ClearAllData удаляет обе коллекции из хранилища.
func (r *Repository) ClearAllData(ctx context.Context) {
	const op = "repository.ClearAllData"

	for _, key := range []string{storage.DealersKey, storage.LocationsKey} {
		if err := r.kv.Delete(ctx, key); err != nil {
			r.log.Error("failed to clear data", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
		}
	}
}

func (r *Repository) save(ctx context.Context, op, key string, items any) {
	data, err := json.Marshal(struct {
		Version int `json:"version"`
		Items   any `json:"items"`
	}{Version: SchemaVersion, Items: items})
	if err != nil {
		r.log.Error("failed to encode", slog.String("op", op), slog.String("error", err.Error()))
		return
	}

	if err := r.kv.Set(ctx, key, data); err != nil {
		r.log.Error("failed to save", slog.String("op", op), slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (r *Repository) observe(ids ...int64) {
	if o, ok := r.ids.(observer); ok {
		o.Observe(ids...)
	}
}

func decode[T any](data []byte) ([]T, error) {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '[' {
		var items []T
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, err
		}
		return nonNil(items), nil
	}

	var env envelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}
	if env.Version < 1 || env.Version > SchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}

	return nonNil(env.Items), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

func locationIDs(locations []storage.Location) []int64 {
	ids := make([]int64, len(locations))
	for i, l := range locations {
		ids[i] = l.ID
	}
	return ids
}

func dealerIDs(dealers []storage.Dealer) []int64 {
	ids := make([]int64, len(dealers))
	for i, d := range dealers {
		ids[i] = d.ID
	}
	return ids
}
