package store

import (
	"fmt"

	"github.com/wanderplan/backend/internal/domain"
)

// defaultItemTime is the schedule time a newly added stop starts with.
const defaultItemTime = "10:00"

// AddItem appends a new itinerary item with defaulted fields to the named
// day's schedule.
func (s *DocumentStore) AddItem(dayID string) (domain.ItineraryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(dayID)
	if idx < 0 {
		return domain.ItineraryItem{}, fmt.Errorf("store.DocumentStore.AddItem: %w", domain.ErrNotFound)
	}
	item := domain.ItineraryItem{
		ID:            domain.NewID(),
		Time:          defaultItemTime,
		TransportMode: domain.TransportTransit,
	}
	s.days[idx].Items = append(s.days[idx].Items, item)
	return item, nil
}

// UpdateItem merges the non-nil fields of upd into the matching item.
// Changing the transport mode or the location clears EstimatedTravelTime,
// because the stored estimate was computed against the old values.
func (s *DocumentStore) UpdateItem(dayID, itemID string, upd domain.ItemUpdate) (domain.ItineraryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.item(dayID, itemID)
	if err != nil {
		return domain.ItineraryItem{}, fmt.Errorf("store.DocumentStore.UpdateItem: %w", err)
	}
	if upd.TransportMode != nil && !upd.TransportMode.Valid() {
		return domain.ItineraryItem{}, fmt.Errorf("store.DocumentStore.UpdateItem: %w: unknown transport mode %q", domain.ErrValidation, *upd.TransportMode)
	}

	if upd.Time != nil {
		item.Time = *upd.Time
	}
	if upd.Activity != nil {
		item.Activity = *upd.Activity
	}
	if upd.Notes != nil {
		item.Notes = *upd.Notes
	}
	if upd.Location != nil && *upd.Location != item.Location {
		item.Location = *upd.Location
		item.EstimatedTravelTime = ""
	}
	if upd.TransportMode != nil && *upd.TransportMode != item.TransportMode {
		item.TransportMode = *upd.TransportMode
		item.EstimatedTravelTime = ""
	}
	return *item, nil
}

// DeleteItem removes the item from its day's schedule. The relative order
// of the remaining items is unchanged.
func (s *DocumentStore) DeleteItem(dayID, itemID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(dayID)
	if idx < 0 {
		return fmt.Errorf("store.DocumentStore.DeleteItem: %w", domain.ErrNotFound)
	}
	items := s.days[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			s.days[idx].Items = append(items[:i], items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("store.DocumentStore.DeleteItem: %w", domain.ErrNotFound)
}

// ReorderItems rearranges a day's schedule to follow the caller-supplied ID
// order. The caller contract is that order is a permutation of the current
// item IDs; defensively, unknown IDs are ignored and items missing from
// order keep their relative position at the end, so no item is ever lost.
func (s *DocumentStore) ReorderItems(dayID string, order []string) (domain.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(dayID)
	if idx < 0 {
		return domain.Day{}, fmt.Errorf("store.DocumentStore.ReorderItems: %w", domain.ErrNotFound)
	}

	byID := make(map[string]domain.ItineraryItem, len(s.days[idx].Items))
	for _, it := range s.days[idx].Items {
		byID[it.ID] = it
	}

	reordered := make([]domain.ItineraryItem, 0, len(byID))
	for _, id := range order {
		if it, ok := byID[id]; ok {
			reordered = append(reordered, it)
			delete(byID, id)
		}
	}
	for _, it := range s.days[idx].Items {
		if _, left := byID[it.ID]; left {
			reordered = append(reordered, it)
		}
	}

	s.days[idx].Items = reordered
	return cloneDay(s.days[idx]), nil
}

// ItemContext returns the item plus the location of the stop immediately
// before it in the schedule. The previous location is empty for the first
// item of a day. Use it to issue a travel-time estimate request.
func (s *DocumentStore) ItemContext(dayID, itemID string) (domain.ItineraryItem, string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.dayIndex(dayID)
	if idx < 0 {
		return domain.ItineraryItem{}, "", fmt.Errorf("store.DocumentStore.ItemContext: %w", domain.ErrNotFound)
	}
	items := s.days[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			prev := ""
			if i > 0 {
				prev = items[i-1].Location
			}
			return items[i], prev, nil
		}
	}
	return domain.ItineraryItem{}, "", fmt.Errorf("store.DocumentStore.ItemContext: %w", domain.ErrNotFound)
}

// ApplyEstimate stores the assistant's travel-time estimate on the item,
// but only if the item's (previous location, location, transport mode)
// triple still matches the snapshot the estimate was requested against.
// A response arriving after the user changed any of those inputs is
// discarded; the return value reports whether the estimate was applied.
func (s *DocumentStore) ApplyEstimate(dayID, itemID, origin, destination string, mode domain.TransportMode, estimate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(dayID)
	if idx < 0 {
		return false
	}
	items := s.days[idx].Items
	for i := range items {
		if items[i].ID != itemID {
			continue
		}
		prev := ""
		if i > 0 {
			prev = items[i-1].Location
		}
		if prev != origin || items[i].Location != destination || items[i].TransportMode != mode {
			return false
		}
		items[i].EstimatedTravelTime = estimate
		return true
	}
	return false
}

// item returns a pointer into the live day/item tree. Callers must hold
// the write lock and must not retain the pointer past the unlock.
func (s *DocumentStore) item(dayID, itemID string) (*domain.ItineraryItem, error) {
	idx := s.dayIndex(dayID)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}
	items := s.days[idx].Items
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, domain.ErrNotFound
}
