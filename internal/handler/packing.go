package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wanderplan/backend/internal/calc"
	"github.com/wanderplan/backend/internal/domain"
)

// packingResponse is the packing list plus its derived views: overall
// progress percentage and per-category checked/total counts.
type packingResponse struct {
	Categories []domain.PackingCategory `json:"categories"`
	Progress   int                      `json:"progress"`
	Counts     []categoryCount          `json:"counts"`
}

type categoryCount struct {
	CategoryID string `json:"categoryId"`
	Checked    int    `json:"checked"`
	Total      int    `json:"total"`
}

// GetPacking handles GET /api/packing.
func (s *Server) GetPacking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.packingView())
}

// CreateCategory handles POST /api/packing/categories.
func (s *Server) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	cat, err := s.docs.AddCategory(body.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

// DeleteCategory handles DELETE /api/packing/categories/{catID}.
func (s *Server) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.DeleteCategory(chi.URLParam(r, "catID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearCategories handles DELETE /api/packing/categories.
// Empties the whole packing list; the client confirms with the user first.
func (s *Server) ClearCategories(w http.ResponseWriter, r *http.Request) {
	s.docs.ClearCategories()
	w.WriteHeader(http.StatusNoContent)
}

// CreatePackingItem handles POST /api/packing/categories/{catID}/items.
func (s *Server) CreatePackingItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	item, err := s.docs.AddPackingItem(chi.URLParam(r, "catID"), body.Text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

// DeletePackingItem handles DELETE /api/packing/categories/{catID}/items/{itemID}.
func (s *Server) DeletePackingItem(w http.ResponseWriter, r *http.Request) {
	if err := s.docs.DeletePackingItem(chi.URLParam(r, "catID"), chi.URLParam(r, "itemID")); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// TogglePackingItem handles POST /api/packing/categories/{catID}/items/{itemID}/toggle.
func (s *Server) TogglePackingItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.docs.ToggleChecked(chi.URLParam(r, "catID"), chi.URLParam(r, "itemID"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// GeneratePacking handles POST /api/packing/generate.
// The assistant proposes a packing list for the trip; on success it
// replaces the live list. Destructive; the client confirms first.
func (s *Server) GeneratePacking(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Destination string `json:"destination"`
		Days        int    `json:"days"`
		TripType    string `json:"tripType"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	if _, err := s.assist.GeneratePacking(r.Context(), body.Destination, body.Days, body.TripType); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.packingView())
}

// packingView assembles the packing list with its derived views.
func (s *Server) packingView() packingResponse {
	cats := s.docs.PackingList()
	counts := make([]categoryCount, len(cats))
	for i, c := range cats {
		checked, total := calc.CategoryCounts(c)
		counts[i] = categoryCount{CategoryID: c.ID, Checked: checked, Total: total}
	}
	return packingResponse{Categories: cats, Progress: calc.Progress(cats), Counts: counts}
}
