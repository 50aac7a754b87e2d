// Package handler implements the HTTP handlers for the WanderPlan API.
// Handlers are methods on Server, split into resource-specific files
// (document.go, day.go, packing.go, ...) but all sharing the same Server
// struct so they can access its dependencies.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wanderplan/backend/internal/domain"
	"github.com/wanderplan/backend/internal/service"
	"github.com/wanderplan/backend/internal/store"
)

// TemplateServicer defines the template operations the handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database.
type TemplateServicer interface {
	List(ctx context.Context) ([]domain.PackingTemplate, error)
	Save(ctx context.Context, name string, categories []domain.PackingCategory) (domain.PackingTemplate, error)
	Load(ctx context.Context, id uuid.UUID) ([]domain.PackingCategory, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AssistServicer defines the assistant operations the handlers depend on.
type AssistServicer interface {
	EstimateItem(ctx context.Context, dayID, itemID string) (service.EstimateResult, error)
	GeneratePacking(ctx context.Context, destination string, days int, tripType string) ([]domain.PackingCategory, error)
}

// Server holds the dependencies shared by all handlers. The document
// store is used directly: it is the in-memory aggregate this API exists
// to expose, and it is as cheap to construct in tests as any mock.
type Server struct {
	docs      *store.DocumentStore
	templates TemplateServicer
	assist    AssistServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(docs *store.DocumentStore, templates TemplateServicer, assist AssistServicer) *Server {
	return &Server{docs: docs, templates: templates, assist: assist}
}

// Routes mounts every API endpoint on a fresh chi router. Middleware is
// applied by the caller (cmd/api) so tests can mount bare routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)

	r.Route("/api", func(r chi.Router) {
		r.Route("/document", func(r chi.Router) {
			r.Get("/", s.GetDocument)
			r.Post("/reset", s.ResetDocument)
			r.Post("/import", s.ImportDocument)
			r.Get("/export", s.ExportDocument)
			r.Get("/export/text", s.ExportDocumentText)
		})

		r.Route("/days", func(r chi.Router) {
			r.Post("/", s.CreateDay)
			r.Route("/{dayID}", func(r chi.Router) {
				r.Patch("/", s.UpdateDay)
				r.Delete("/", s.DeleteDay)
				r.Post("/activate", s.ActivateDay)
				r.Get("/leave-times", s.GetLeaveTimes)
				r.Route("/items", func(r chi.Router) {
					r.Post("/", s.CreateItem)
					r.Put("/order", s.ReorderItems)
					r.Patch("/{itemID}", s.UpdateItem)
					r.Delete("/{itemID}", s.DeleteItem)
					r.Post("/{itemID}/estimate", s.EstimateItem)
				})
			})
		})

		r.Route("/packing", func(r chi.Router) {
			r.Get("/", s.GetPacking)
			r.Post("/generate", s.GeneratePacking)
			r.Route("/categories", func(r chi.Router) {
				r.Post("/", s.CreateCategory)
				r.Delete("/", s.ClearCategories)
				r.Delete("/{catID}", s.DeleteCategory)
				r.Post("/{catID}/items", s.CreatePackingItem)
				r.Delete("/{catID}/items/{itemID}", s.DeletePackingItem)
				r.Post("/{catID}/items/{itemID}/toggle", s.TogglePackingItem)
			})
		})

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.ListTemplates)
			r.Post("/", s.SaveTemplate)
			r.Post("/{templateID}/load", s.LoadTemplate)
			r.Delete("/{templateID}", s.DeleteTemplate)
		})
	})

	return r
}

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
