package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderplan/backend/internal/calc"
)

// CreateDay handles POST /api/days.
// Appends a new auto-labelled day and makes it active.
func (s *Server) CreateDay(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, s.docs.AddDay())
}

// UpdateDay handles PATCH /api/days/{dayID}.
// Currently the only mutable day field is the date.
func (s *Server) UpdateDay(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Date *string `json:"date"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}
	if body.Date == nil {
		writeRequestError(w, "date is required")
		return
	}

	day, err := s.docs.SetDayDate(chi.URLParam(r, "dayID"), *body.Date)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// DeleteDay handles DELETE /api/days/{dayID}.
// Refused with 422 when the day is the last remaining one.
func (s *Server) DeleteDay(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.DeleteDay(chi.URLParam(r, "dayID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivateDay handles POST /api/days/{dayID}/activate.
func (s *Server) ActivateDay(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.ActivateDay(chi.URLParam(r, "dayID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetLeaveTimes handles GET /api/days/{dayID}/leave-times.
// Returns the latest-departure hints derived from the day's schedule.
func (s *Server) GetLeaveTimes(w http.ResponseWriter, r *http.Request) {
	day, err := s.docs.Day(chi.URLParam(r, "dayID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, calc.DayLeaveTimes(day))
}
