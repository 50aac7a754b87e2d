package store

import (
	"fmt"
	"strings"

	"github.com/wanderplan/backend/internal/domain"
)

// AddCategory appends a new empty packing category. Blank names are
// refused with domain.ErrValidation.
func (s *DocumentStore) AddCategory(name string) (domain.PackingCategory, error) {
	if strings.TrimSpace(name) == "" {
		return domain.PackingCategory{}, fmt.Errorf("store.DocumentStore.AddCategory: %w: name is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cat := domain.PackingCategory{
		ID:    domain.NewID(),
		Name:  name,
		Items: []domain.PackingItem{},
	}
	s.packing = append(s.packing, cat)
	return cat, nil
}

// DeleteCategory removes a packing category and everything in it.
func (s *DocumentStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.packing {
		if s.packing[i].ID == id {
			s.packing = append(s.packing[:i], s.packing[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store.DocumentStore.DeleteCategory: %w", domain.ErrNotFound)
}

// ClearCategories empties the whole packing list. Irreversible; callers
// are expected to have confirmed the action with the user.
func (s *DocumentStore) ClearCategories() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.packing = []domain.PackingCategory{}
}

// AddPackingItem appends an unchecked item to the named category. Blank
// text is refused with domain.ErrValidation.
func (s *DocumentStore) AddPackingItem(catID, text string) (domain.PackingItem, error) {
	if strings.TrimSpace(text) == "" {
		return domain.PackingItem{}, fmt.Errorf("store.DocumentStore.AddPackingItem: %w: text is required", domain.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	idx := s.categoryIndex(catID)
	if idx < 0 {
		return domain.PackingItem{}, fmt.Errorf("store.DocumentStore.AddPackingItem: %w", domain.ErrNotFound)
	}
	item := domain.PackingItem{ID: domain.NewID(), Text: text}
	s.packing[idx].Items = append(s.packing[idx].Items, item)
	return item, nil
}

// DeletePackingItem removes an item from its category.
func (s *DocumentStore) DeletePackingItem(catID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(catID)
	if idx < 0 {
		return fmt.Errorf("store.DocumentStore.DeletePackingItem: %w", domain.ErrNotFound)
	}
	items := s.packing[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			s.packing[idx].Items = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store.DocumentStore.DeletePackingItem: %w", domain.ErrNotFound)
}

// ToggleChecked flips an item's checked state and returns the new value.
func (s *DocumentStore) ToggleChecked(catID, itemID string) (domain.PackingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(catID)
	if idx < 0 {
		return domain.PackingItem{}, fmt.Errorf("store.DocumentStore.ToggleChecked: %w", domain.ErrNotFound)
	}
	items := s.packing[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			items[i].Checked = !items[i].Checked
			return items[i], nil
		}
	}
	return domain.PackingItem{}, fmt.Errorf("store.DocumentStore.ToggleChecked: %w", domain.ErrNotFound)
}

// ReplacePackingList overwrites the whole packing list with the given
// categories (template load, assistant generation). The input is deep
// copied; destructive, no merge.
func (s *DocumentStore) ReplacePackingList(cats []domain.PackingCategory) {
	copied := domain.CloneCategories(cats)
	if copied == nil {
		copied = []domain.PackingCategory{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.packing = copied
}

// PackingList returns a deep copy of the current packing categories.
func (s *DocumentStore) PackingList() []domain.PackingCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.CloneCategories(s.packing)
}

// categoryIndex returns the position of the category with the given ID,
// or -1. Callers must hold the lock.
func (s *DocumentStore) categoryIndex(id string) int {
	for i := range s.packing {
		if s.packing[i].ID == id {
			return i
		}
	}
	return -1
}
