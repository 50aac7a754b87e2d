package store

import (
	"fmt"
	"time"

	"github.com/wanderplan/backend/internal/domain"
)

// AddDay appends a new empty day and makes it active. The label is
// auto-numbered ("Day n" for the nth day) and the date defaults to one
// calendar day after the current last day's date, or stays unset when the
// last day has no date.
func (s *DocumentStore) AddDay() domain.Day {
	s.mu.Lock()
	defer s.mu.Unlock()

	day := domain.Day{
		ID:    domain.NewID(),
		Label: fmt.Sprintf("Day %d", len(s.days)+1),
		Items: []domain.ItineraryItem{},
	}
	if last := s.days[len(s.days)-1]; last.Date != "" {
		if d, err := time.Parse("2006-01-02", last.Date); err == nil {
			day.Date = d.AddDate(0, 0, 1).Format("2006-01-02")
		}
	}
	s.days = append(s.days, day)
	s.activeDayID = day.ID
	return day
}

// DeleteDay removes the day with the given ID. Deleting the only remaining
// day is refused with domain.ErrValidation so the trip always keeps at
// least one day. When the deleted day was active, activation moves to the
// new first day.
func (s *DocumentStore) DeleteDay(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(id)
	if idx < 0 {
		return fmt.Errorf("store.DocumentStore.DeleteDay: %w", domain.ErrNotFound)
	}
	if len(s.days) == 1 {
		return fmt.Errorf("store.DocumentStore.DeleteDay: %w: cannot delete the last remaining day", domain.ErrValidation)
	}

	s.days = append(s.days[:idx], s.days[idx+1:]...)
	if s.activeDayID == id {
		s.activeDayID = s.days[0].ID
	}
	return nil
}

// SetDayDate replaces a day's date. The value is accepted as-is: an ISO
// date string or empty to unset. Calendar correctness is not validated.
func (s *DocumentStore) SetDayDate(id, date string) (domain.Day, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.dayIndex(id)
	if idx < 0 {
		return domain.Day{}, fmt.Errorf("store.DocumentStore.SetDayDate: %w", domain.ErrNotFound)
	}
	s.days[idx].Date = date
	return cloneDay(s.days[idx]), nil
}

// ActivateDay marks the day with the given ID as the one being edited.
func (s *DocumentStore) ActivateDay(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.dayIndex(id) < 0 {
		return fmt.Errorf("store.DocumentStore.ActivateDay: %w", domain.ErrNotFound)
	}
	s.activeDayID = id
	return nil
}

// Day returns a deep copy of the day with the given ID.
func (s *DocumentStore) Day(id string) (domain.Day, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.dayIndex(id)
	if idx < 0 {
		return domain.Day{}, fmt.Errorf("store.DocumentStore.Day: %w", domain.ErrNotFound)
	}
	return cloneDay(s.days[idx]), nil
}

// dayIndex returns the position of the day with the given ID, or -1.
// Callers must hold the lock.
func (s *DocumentStore) dayIndex(id string) int {
	for i := range s.days {
		if s.days[i].ID == id {
			return i
		}
	}
	return -1
}

func cloneDay(d domain.Day) domain.Day {
	d.Items = append([]domain.ItineraryItem(nil), d.Items...)
	return d
}
