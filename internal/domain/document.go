package domain

import "time"

// TripDocument is the import/export wire envelope for a whole trip.
// It is not a persisted entity of the running application ; it exists only
// at the transfer boundary. SavedAt records the export time.
type TripDocument struct {
	Days        []Day             `json:"days"`
	PackingList []PackingCategory `json:"packingList"`
	SavedAt     time.Time         `json:"savedAt"`
}

// TripSnapshot is a deep copy of the live document state, safe to read
// without holding the store's lock. ActiveDayID identifies the day the
// user is currently editing.
type TripSnapshot struct {
	Days        []Day             `json:"days"`
	PackingList []PackingCategory `json:"packingList"`
	ActiveDayID string            `json:"activeDayId"`
}
