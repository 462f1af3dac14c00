// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"nexstock/internal/domain/entity"
)

// ErrItemNotFound is a domain-specific error returned when an inventory item
// does not exist in the store.
var ErrItemNotFound = errors.New("inventory item not found")

// ItemFields carries a partial, field-level update. Nil fields are left
// untouched in the stored document, so two concurrent writers only race on
// the fields they both set.
type ItemFields struct {
	Name         *string
	SKU          *string
	Category     *string
	Quantity     *int
	MinThreshold *int
	ImageURL     *string
}

// ItemSnapshotStream is a standing query against the store. Every call to
// Next blocks until the store pushes a new full result set (never a delta)
// and returns it normalized. Stop tears the query down; a blocked Next
// returns an error afterwards and no further snapshots are delivered.
type ItemSnapshotStream interface {
	Next(ctx context.Context) ([]entity.InventoryItem, error)
	Stop()
}

// InventoryRepository defines the standard operations for inventory
// persistence. Timestamps are assigned by the store at write time; readers
// always receive normalized records.
type InventoryRepository interface {
	// Create persists a new item and returns the store-assigned id.
	// CreatedAt and UpdatedAt are stamped with the server time.
	Create(ctx context.Context, item *entity.InventoryItem) (string, error)

	// Update merges the non-nil fields into the stored document and rewrites
	// UpdatedAt with the server time. Returns ErrItemNotFound for unknown ids.
	Update(ctx context.Context, id string, fields ItemFields) error

	// Delete removes the item unconditionally. Returns ErrItemNotFound when
	// the id does not exist.
	Delete(ctx context.Context, id string) error

	// FindByID retrieves a single normalized item.
	FindByID(ctx context.Context, id string) (*entity.InventoryItem, error)

	// ListByOrganization retrieves every item belonging to the organization,
	// in store order.
	ListByOrganization(ctx context.Context, organizationID string) ([]entity.InventoryItem, error)

	// Watch opens a standing filtered query for the organization's items.
	Watch(ctx context.Context, organizationID string) (ItemSnapshotStream, error)
}
