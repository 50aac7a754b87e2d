package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// ListTemplates handles GET /api/templates.
func (s *Server) ListTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := s.templates.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, templates)
}

// SaveTemplate handles POST /api/templates.
// Snapshots the current live packing list under the given name.
func (s *Server) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.templates.Save(r.Context(), body.Name, s.docs.PackingList())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// LoadTemplate handles POST /api/templates/{templateID}/load.
// Instantiates the template (fresh IDs, everything unchecked) and
// replaces the live packing list with it. Destructive overwrite; the
// client confirms with the user when the current list is non-empty.
func (s *Server) LoadTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		writeRequestError(w, "invalid template id")
		return
	}

	cats, err := s.templates.Load(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	s.docs.ReplacePackingList(cats)
	writeJSON(w, http.StatusOK, s.packingView())
}

// DeleteTemplate handles DELETE /api/templates/{templateID}.
func (s *Server) DeleteTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "templateID"))
	if err != nil {
		writeRequestError(w, "invalid template id")
		return
	}
	if err := s.templates.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
