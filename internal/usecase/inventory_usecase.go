// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"nexstock/internal/domain/entity"
)

// --- Input DTOs ---

// CreateItemInput defines the data required to create an inventory item.
// Server-assigned fields (id, createdAt, updatedAt) are never accepted.
type CreateItemInput struct {
	Name           string
	SKU            string
	Category       string
	Quantity       int
	MinThreshold   int
	ImageURL       string
	OrganizationID string
	ActedBy        string // Acting user id, recorded for auditing.
}

// UpdateItemInput defines a partial update. Nil fields are left untouched in
// the store (field-level merge).
type UpdateItemInput struct {
	Name         *string
	SKU          *string
	Category     *string
	Quantity     *int
	MinThreshold *int
	ImageURL     *string
	ActedBy      string
}

// InventoryUsecase is the mutation gateway for inventory items plus the
// audit-trail read side. Write errors propagate to the caller; the caller
// decides user-visible feedback.
type InventoryUsecase interface {
	// CreateItem persists a new item and returns its store-assigned id.
	CreateItem(ctx context.Context, input *CreateItemInput) (string, error)

	// UpdateItem merges partial fields into the item. A quantity transition
	// additionally emits an item change event for the audit worker; event
	// publishing failures never fail the primary write.
	UpdateItem(ctx context.Context, id string, input *UpdateItemInput) error

	// DeleteItem removes the item unconditionally.
	DeleteItem(ctx context.Context, id string) error

	// ItemHistory lists the audit entries for one item, newest first.
	ItemHistory(ctx context.Context, itemID string) ([]entity.StockHistory, error)
}
