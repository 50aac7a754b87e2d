// Package domain contains the core data types for the WanderPlan backend.
// This package has zero dependencies beyond the UUID generator and is
// imported by every other internal package (store, repo, service, handler).
package domain

// TransportMode is how the traveller reaches an itinerary stop.
type TransportMode string

const (
	TransportWalking TransportMode = "walking"
	TransportDriving TransportMode = "driving"
	TransportTransit TransportMode = "transit"
	TransportCycling TransportMode = "cycling"
)

// TransportLabels maps each mode to its display label. The label is also
// what the travel-time assistant receives as the mode description, so it
// must stay in sync with the phrasing the assistant is prompted with.
var TransportLabels = map[TransportMode]string{
	TransportWalking: "步行",
	TransportDriving: "開車",
	TransportTransit: "大眾運輸",
	TransportCycling: "騎行",
}

// Valid reports whether m is one of the four known transport modes.
func (m TransportMode) Valid() bool {
	_, ok := TransportLabels[m]
	return ok
}

// ItineraryItem is a single timed stop within a Day.
// EstimatedTravelTime holds whatever string the travel-time assistant
// returned for the leg ending at this stop. It is derived from the
// (previous location, location, transport mode) triple and is cleared
// whenever the transport mode or location changes.
type ItineraryItem struct {
	ID                  string        `json:"id"`
	Time                string        `json:"time"` // wall clock "HH:MM", may be empty
	Location            string        `json:"location"`
	Activity            string        `json:"activity"`
	TransportMode       TransportMode `json:"transportMode"`
	Notes               string        `json:"notes"`
	EstimatedTravelTime string        `json:"estimatedTravelTime,omitempty"`
}

// Day is one day of the trip: an ordered schedule of itinerary items.
// The order of Items is the schedule order and is always meaningful.
type Day struct {
	ID    string          `json:"id"`
	Label string          `json:"label"`          // e.g. "Day 1", not required to be unique
	Date  string          `json:"date,omitempty"` // ISO "YYYY-MM-DD", may be unset
	Items []ItineraryItem `json:"items"`
}

// ItemUpdate carries a partial update for an ItineraryItem.
// Nil fields are left untouched by the merge.
type ItemUpdate struct {
	Time          *string        `json:"time,omitempty"`
	Location      *string        `json:"location,omitempty"`
	Activity      *string        `json:"activity,omitempty"`
	TransportMode *TransportMode `json:"transportMode,omitempty"`
	Notes         *string        `json:"notes,omitempty"`
}
