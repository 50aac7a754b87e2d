package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderplan/backend/internal/domain"
)

// CreateItem handles POST /api/days/{dayID}/items.
// Appends a new itinerary item with defaulted fields.
func (s *Server) CreateItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.docs.AddItem(chi.URLParam(r, "dayID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// UpdateItem handles PATCH /api/days/{dayID}/items/{itemID}.
// Merges the supplied fields; absent fields are untouched. Changing the
// transport mode or location clears the stored travel estimate.
func (s *Server) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var upd domain.ItemUpdate
	if err := decodeBody(r, &upd); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	item, err := s.docs.UpdateItem(chi.URLParam(r, "dayID"), chi.URLParam(r, "itemID"), upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /api/days/{dayID}/items/{itemID}.
func (s *Server) DeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.DeleteItem(chi.URLParam(r, "dayID"), chi.URLParam(r, "itemID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReorderItems handles PUT /api/days/{dayID}/items/order.
// The body carries the full item ID sequence in its new order; supplying
// a permutation of the current IDs is the caller's contract.
func (s *Server) ReorderItems(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ItemIDs []string `json:"itemIds"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	day, err := s.docs.ReorderItems(chi.URLParam(r, "dayID"), body.ItemIDs)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, day)
}

// EstimateItem handles POST /api/days/{dayID}/items/{itemID}/estimate.
// Asks the assistant for a travel-time estimate for the leg ending at
// this item. The response reports whether the estimate was applied or
// discarded as stale.
func (s *Server) EstimateItem(w http.ResponseWriter, r *http.Request) {
	result, err := s.assist.EstimateItem(r.Context(), chi.URLParam(r, "dayID"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
