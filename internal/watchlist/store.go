package watchlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/cinemood/cinemood/internal/kvstore"
)

// storageKey is the single key-value entry holding the serialized watchlist.
const storageKey = "watchlist"

var (
	ErrReorderActive = errors.New("a reorder session is already active")
	ErrItemNotFound  = errors.New("watchlist item not found")
)

// Store owns the ordered watchlist and persists it write-through after every
// mutation. Insertion order is the canonical persisted order; it is what the
// reorder session rewrites and what budget evaluation walks.
type Store struct {
	kv     kvstore.Store
	logger zerolog.Logger

	mu     sync.Mutex
	active *Session
}

// NewStore creates a watchlist store backed by the given key-value store.
func NewStore(kv kvstore.Store, logger zerolog.Logger) *Store {
	return &Store{
		kv:     kv,
		logger: logger.With().Str("component", "watchlist").Logger(),
	}
}

// Items returns the watchlist in persisted order. Missing or malformed
// persisted state yields an empty list, never an error.
func (s *Store) Items(ctx context.Context) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add appends item to the end of the watchlist and persists. It returns
// false without mutating anything when an item with the same ID is already
// present.
func (s *Store) Add(ctx context.Context, item Item) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	for _, existing := range items {
		if existing.ID == item.ID {
			return false, nil
		}
	}

	items = append(items, item)
	if err := s.persist(ctx, items); err != nil {
		return false, err
	}

	s.logger.Info().Str("id", item.ID).Str("title", item.Title).Msg("Added watchlist item")
	return true, nil
}

// Remove deletes the item with the given ID and persists. Removing an absent
// ID is a silent no-op that leaves the persisted state untouched.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.load(ctx)
	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}

	if err := s.persist(ctx, kept); err != nil {
		return err
	}

	s.logger.Info().Str("id", id).Msg("Removed watchlist item")
	return nil
}

// Reorder replaces the persisted order with idOrder. The new order is
// authoritative: unknown IDs are dropped, and items missing from idOrder are
// dropped as well.
func (s *Store) Reorder(ctx context.Context, idOrder []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reorderLocked(ctx, idOrder)
}

func (s *Store) reorderLocked(ctx context.Context, idOrder []string) error {
	items := s.load(ctx)

	byID := make(map[string]Item, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	reordered := make([]Item, 0, len(items))
	for _, id := range idOrder {
		if item, ok := byID[id]; ok {
			reordered = append(reordered, item)
			delete(byID, id)
		}
	}

	return s.persist(ctx, reordered)
}

func (s *Store) load(ctx context.Context) []Item {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		s.logger.Warn().Err(err).Msg("Failed to read persisted watchlist, starting empty")
		return []Item{}
	}
	if !ok {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn().Err(err).Msg("Malformed persisted watchlist, starting empty")
		return []Item{}
	}
	if items == nil {
		return []Item{}
	}
	return items
}

func (s *Store) persist(ctx context.Context, items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to serialize watchlist: %w", err)
	}
	if err := s.kv.Set(ctx, storageKey, string(data)); err != nil {
		return fmt.Errorf("failed to persist watchlist: %w", err)
	}
	return nil
}
