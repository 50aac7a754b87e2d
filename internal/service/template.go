// Package service contains the business logic for the WanderPlan backend.
// Services validate inputs, enforce business rules, and orchestrate repo,
// store, and assistant calls. No SQL and no HTTP live here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/backend/internal/domain"
	"github.com/wanderplan/backend/internal/repo"
)

// TemplateService implements the packing-template lifecycle: named
// snapshots of the packing tree, persisted independently of the live trip.
type TemplateService struct {
	repo repo.TemplateRepo
}

// NewTemplateService constructs a TemplateService backed by the provided repo.
func NewTemplateService(r repo.TemplateRepo) *TemplateService {
	return &TemplateService{repo: r}
}

// List returns all saved templates. Always returns a non-nil slice so
// callers can safely range over it.
func (s *TemplateService) List(ctx context.Context) ([]domain.PackingTemplate, error) {
	templates, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TemplateService.List: %w", err)
	}
	if templates == nil {
		return []domain.PackingTemplate{}, nil
	}
	return templates, nil
}

// Save snapshots the given categories under a name. Blank names are
// refused with domain.ErrValidation. The snapshot is a deep copy: later
// edits to the live packing list never reach the stored template.
func (s *TemplateService) Save(ctx context.Context, name string, categories []domain.PackingCategory) (domain.PackingTemplate, error) {
	if strings.TrimSpace(name) == "" {
		return domain.PackingTemplate{}, fmt.Errorf("service.TemplateService.Save: %w: name is required", domain.ErrValidation)
	}

	snapshot := domain.CloneCategories(categories)
	if snapshot == nil {
		snapshot = []domain.PackingCategory{}
	}
	created, err := s.repo.Create(ctx, domain.PackingTemplate{Name: name, Categories: snapshot})
	if err != nil {
		return domain.PackingTemplate{}, fmt.Errorf("service.TemplateService.Save: %w", err)
	}
	return created, nil
}

// Load instantiates a template: a fresh category sequence in which every
// category and item receives a newly minted ID and every item's checked
// state is forced false, regardless of what the snapshot recorded. The
// caller hands the result to the document store to replace the live
// packing list.
func (s *TemplateService) Load(ctx context.Context, id uuid.UUID) ([]domain.PackingCategory, error) {
	tpl, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service.TemplateService.Load: %w", err)
	}
	return instantiate(tpl.Categories), nil
}

// Delete removes a template by ID.
func (s *TemplateService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TemplateService.Delete: %w", err)
	}
	return nil
}

// instantiate deep-copies a category tree with fresh IDs and all items
// unchecked.
func instantiate(cats []domain.PackingCategory) []domain.PackingCategory {
	out := make([]domain.PackingCategory, len(cats))
	for i, c := range cats {
		items := make([]domain.PackingItem, len(c.Items))
		for j, it := range c.Items {
			items[j] = domain.PackingItem{ID: domain.NewID(), Text: it.Text, Checked: false}
		}
		out[i] = domain.PackingCategory{ID: domain.NewID(), Name: c.Name, Items: items}
	}
	return out
}
