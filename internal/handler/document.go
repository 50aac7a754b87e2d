package handler

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/wanderplan/backend/internal/transfer"
)

// GetDocument handles GET /api/document.
// Returns the full live document snapshot.
func (s *Server) GetDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.docs.Snapshot())
}

// ResetDocument handles POST /api/document/reset.
// Replaces the whole document with one fresh empty day and an empty
// packing list. Irreversible; the client confirms with the user first.
func (s *Server) ResetDocument(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.docs.Reset())
}

// ImportDocument handles POST /api/document/import.
// The body is a raw backup file. Malformed JSON yields 400, a document
// without a days array yields 422; either way the live state is untouched.
func (s *Server) ImportDocument(w http.ResponseWriter, r *http.Request) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		writeRequestError(w, "could not read request body")
		return
	}
	defer r.Body.Close()

	doc, err := transfer.ImportJSON(raw)
	if err != nil {
		writeError(w, err)
		return
	}
	if err := s.docs.Import(doc); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.docs.Snapshot())
}

// ExportDocument handles GET /api/document/export.
// Returns the backup envelope with SavedAt stamped now, served as a file
// download under the conventional date-stamped name.
func (s *Server) ExportDocument(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	out, err := transfer.ExportJSON(s.docs.Snapshot(), now)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", transfer.Filename(now)))
	w.WriteHeader(http.StatusOK)
	w.Write(out)
}

// ExportDocumentText handles GET /api/document/export/text.
// Returns the one-way human-readable itinerary report.
func (s *Server) ExportDocumentText(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, transfer.ExportText(s.docs.Snapshot()))
}
