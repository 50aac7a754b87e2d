package domain

import (
	"time"

	"github.com/google/uuid"
)

// PackingItem is a single checkable entry in a packing category.
type PackingItem struct {
	ID      string `json:"id"`
	Text    string `json:"text"`
	Checked bool   `json:"checked"`
}

// PackingCategory groups packing items under a user-chosen name.
// The order of Items is display order and is preserved by all operations.
type PackingCategory struct {
	ID    string        `json:"id"`
	Name  string        `json:"name"`
	Items []PackingItem `json:"items"`
}

// PackingTemplate is a named snapshot of a packing-category tree, persisted
// independently of the live trip. Categories is a full copy, not references:
// loading a template mints fresh IDs for every category and item and forces
// every item's Checked to false.
type PackingTemplate struct {
	ID         uuid.UUID         `json:"id"`
	Name       string            `json:"name"`
	Categories []PackingCategory `json:"categories"`
	CreatedAt  time.Time         `json:"createdAt"`
}
