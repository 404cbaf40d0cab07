package memory

import (
	"context"
	"sync"

	"github.com/reshipi-labs/reshipi-cli/internal/core/domain"
	"github.com/reshipi-labs/reshipi-cli/internal/core/ports/driven"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore is an in-memory implementation of driven.StateStore.
// It backs tests and ephemeral sessions; nothing survives the process.
type StateStore struct {
	mu        sync.RWMutex
	history   []*domain.HistoryItem
	favorites domain.Favorites
	shopping  []domain.ShoppingEntry
	allergies string
	theme     domain.Theme
}

// NewStateStore creates a new in-memory state store.
func NewStateStore() *StateStore {
	return &StateStore{}
}

// LoadHistory returns the stored history items.
func (s *StateStore) LoadHistory(_ context.Context) ([]*domain.HistoryItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.HistoryItem, len(s.history))
	copy(out, s.history)
	return out, nil
}

// SaveHistory replaces the stored history wholesale.
func (s *StateStore) SaveHistory(_ context.Context, history []*domain.HistoryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = make([]*domain.HistoryItem, len(history))
	copy(s.history, history)
	return nil
}

// LoadFavorites returns the stored favorite set, or nil if never saved.
func (s *StateStore) LoadFavorites(_ context.Context) (domain.Favorites, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.favorites == nil {
		return nil, nil
	}
	return domain.NewFavorites(s.favorites.IDs()), nil
}

// SaveFavorites replaces the stored favorite set.
func (s *StateStore) SaveFavorites(_ context.Context, favorites domain.Favorites) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = domain.NewFavorites(favorites.IDs())
	return nil
}

// LoadShoppingList returns the stored shopping list, or nil if never saved.
func (s *StateStore) LoadShoppingList(_ context.Context) (*domain.ShoppingList, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.shopping == nil {
		return nil, nil
	}
	return domain.NewShoppingList(s.shopping), nil
}

// SaveShoppingList replaces the stored shopping list.
func (s *StateStore) SaveShoppingList(_ context.Context, list *domain.ShoppingList) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.shopping = list.Entries()
	return nil
}

// LoadAllergies returns the stored allergy preference text.
func (s *StateStore) LoadAllergies(_ context.Context) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.allergies, nil
}

// SaveAllergies replaces the stored allergy preference text.
func (s *StateStore) SaveAllergies(_ context.Context, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allergies = value
	return nil
}

// LoadTheme returns the stored theme preference.
func (s *StateStore) LoadTheme(_ context.Context) (domain.Theme, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme, nil
}

// SaveTheme replaces the stored theme preference.
func (s *StateStore) SaveTheme(_ context.Context, theme domain.Theme) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.theme = theme
	return nil
}
