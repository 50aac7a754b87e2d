// Package store owns the live trip document: the ordered day/item tree and
// the ordered packing-category tree. It is the single writer for both; all
// mutations go through its methods, which never leave the document in a
// state violating the invariants (at least one day, unique IDs, stable
// sequence order).
//
// The document lives only in process memory. Durability is the caller's
// concern, via the transfer layer's export.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/wanderplan/backend/internal/domain"
)

// DocumentStore holds the live trip document behind a RWMutex.
// Handlers call it concurrently; every accessor returns deep copies so
// callers can never alias internal state.
type DocumentStore struct {
	mu          sync.RWMutex
	days        []domain.Day
	packing     []domain.PackingCategory
	activeDayID string

	now func() time.Time // injectable clock for tests
}

// seedCategories are the two empty categories a fresh document starts with.
func seedCategories() []domain.PackingCategory {
	return []domain.PackingCategory{
		{ID: domain.NewID(), Name: "必備證件/錢包", Items: []domain.PackingItem{}},
		{ID: domain.NewID(), Name: "衣物", Items: []domain.PackingItem{}},
	}
}

// NewDocumentStore returns a store seeded with one empty day dated today
// and the seed packing categories. The seed day is active.
func NewDocumentStore() *DocumentStore {
	s := &DocumentStore{now: time.Now}
	day := s.freshDay(1)
	s.days = []domain.Day{day}
	s.activeDayID = day.ID
	s.packing = seedCategories()
	return s
}

// freshDay builds an empty day labelled "Day n" dated today.
// Callers must hold the write lock or be inside the constructor.
func (s *DocumentStore) freshDay(n int) domain.Day {
	return domain.Day{
		ID:    domain.NewID(),
		Label: fmt.Sprintf("Day %d", n),
		Date:  s.now().Format("2006-01-02"),
		Items: []domain.ItineraryItem{},
	}
}

// Snapshot returns a deep copy of the full document state.
func (s *DocumentStore) Snapshot() domain.TripSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.TripSnapshot{
		Days:        domain.CloneDays(s.days),
		PackingList: domain.CloneCategories(s.packing),
		ActiveDayID: s.activeDayID,
	}
}

// Reset replaces the whole document with one fresh empty day and an empty
// packing list. Irreversible; callers are expected to have confirmed the
// action with the user.
func (s *DocumentStore) Reset() domain.TripSnapshot {
	s.mu.Lock()
	day := s.freshDay(1)
	s.days = []domain.Day{day}
	s.activeDayID = day.ID
	s.packing = []domain.PackingCategory{}
	s.mu.Unlock()
	return s.Snapshot()
}

// Import replaces the day sequence (and, when present, the packing list)
// wholesale with the validated document. There is no merge with existing
// state. Returns domain.ErrSchema when the document has no days, leaving
// the store unchanged: an imported trip must uphold the at-least-one-day
// invariant.
func (s *DocumentStore) Import(doc domain.TripDocument) error {
	if len(doc.Days) == 0 {
		return fmt.Errorf("store.DocumentStore.Import: %w", domain.ErrSchema)
	}

	days := domain.CloneDays(doc.Days)
	for i := range days {
		if days[i].ID == "" {
			days[i].ID = domain.NewID()
		}
		if days[i].Items == nil {
			days[i].Items = []domain.ItineraryItem{}
		}
		for j := range days[i].Items {
			if days[i].Items[j].ID == "" {
				days[i].Items[j].ID = domain.NewID()
			}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.days = days
	s.activeDayID = days[0].ID
	if doc.PackingList != nil {
		packing := domain.CloneCategories(doc.PackingList)
		for i := range packing {
			if packing[i].ID == "" {
				packing[i].ID = domain.NewID()
			}
			if packing[i].Items == nil {
				packing[i].Items = []domain.PackingItem{}
			}
			for j := range packing[i].Items {
				if packing[i].Items[j].ID == "" {
					packing[i].Items[j].ID = domain.NewID()
				}
			}
		}
		s.packing = packing
	}
	return nil
}
