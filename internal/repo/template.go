// Package repo contains all database access for the WanderPlan backend.
// Only packing templates are persisted; the live trip document is
// in-memory by design. No business logic lives here, only SQL and type
// mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/wanderplan/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and
// pgx.Tx. Accepting this interface instead of *pgxpool.Pool directly lets
// integration tests pass a transaction that is rolled back after each
// test, giving per-test isolation without manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TemplateRepo defines the persistence operations for packing templates.
// The service layer depends on this interface, not the Postgres
// implementation, so it can be unit-tested with a mock.
type TemplateRepo interface {
	// Create inserts a new template and returns the persisted record
	// (with DB-generated id and created_at populated).
	Create(ctx context.Context, t domain.PackingTemplate) (domain.PackingTemplate, error)

	// GetByID retrieves a single template by its UUID primary key.
	// Returns domain.ErrNotFound if no template with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.PackingTemplate, error)

	// List returns all templates ordered by creation time ascending, so
	// the built-in seeds come first.
	List(ctx context.Context) ([]domain.PackingTemplate, error)

	// Delete removes a template by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgTemplateRepo is the Postgres implementation of TemplateRepo.
// The category tree is stored as a jsonb snapshot: templates are opaque
// blobs to the database, queried only whole.
type pgTemplateRepo struct {
	db db
}

// NewTemplateRepo constructs a TemplateRepo backed by the provided db
// connection. In production pass *pgxpool.Pool; in tests pass a pgx.Tx.
func NewTemplateRepo(db db) TemplateRepo {
	return &pgTemplateRepo{db: db}
}

// Create inserts a new template row and returns the full persisted record.
func (r *pgTemplateRepo) Create(ctx context.Context, t domain.PackingTemplate) (domain.PackingTemplate, error) {
	cats, err := json.Marshal(t.Categories)
	if err != nil {
		return domain.PackingTemplate{}, fmt.Errorf("repo.TemplateRepo.Create: marshal categories: %w", err)
	}

	const q = `
		INSERT INTO packing_templates (name, categories)
		VALUES (@name, @categories)
		RETURNING id, name, categories, created_at`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": t.Name, "categories": cats})
	result, err := scanTemplate(row)
	if err != nil {
		return domain.PackingTemplate{}, fmt.Errorf("repo.TemplateRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a template by primary key.
func (r *pgTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.PackingTemplate, error) {
	const q = `
		SELECT id, name, categories, created_at
		FROM packing_templates
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanTemplate(row)
	if err != nil {
		return domain.PackingTemplate{}, fmt.Errorf("repo.TemplateRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all templates, oldest first.
func (r *pgTemplateRepo) List(ctx context.Context) ([]domain.PackingTemplate, error) {
	const q = `
		SELECT id, name, categories, created_at
		FROM packing_templates
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.TemplateRepo.List: %w", err)
	}
	defer rows.Close()

	var templates []domain.PackingTemplate
	for rows.Next() {
		t, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TemplateRepo.List: scan: %w", err)
		}
		templates = append(templates, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TemplateRepo.List: rows: %w", err)
	}

	return templates, nil
}

// Delete removes a template by primary key.
func (r *pgTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM packing_templates WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.TemplateRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TemplateRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTemplate
// to be reused for QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTemplate maps a single database row into a domain.PackingTemplate,
// decoding the jsonb category snapshot.
func scanTemplate(s scanner) (domain.PackingTemplate, error) {
	var (
		t    domain.PackingTemplate
		id   pgtype.UUID
		cats []byte
	)

	if err := s.Scan(&id, &t.Name, &cats, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PackingTemplate{}, domain.ErrNotFound
		}
		return domain.PackingTemplate{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if err := json.Unmarshal(cats, &t.Categories); err != nil {
		return domain.PackingTemplate{}, fmt.Errorf("decode categories: %w", err)
	}
	return t, nil
}
