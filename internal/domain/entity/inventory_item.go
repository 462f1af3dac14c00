// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// InventoryItem is one stock-keeping unit owned by a single organization.
// The ID is assigned by the document store on creation and never changes.
type InventoryItem struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	SKU            string    `json:"sku"`      // External-facing identifier; not guaranteed globally unique.
	Category       string    `json:"category"` // Free-form; the UI offers a configured set.
	Quantity       int       `json:"quantity"`
	MinThreshold   int       `json:"minThreshold"` // Alert boundary for low-stock detection.
	ImageURL       string    `json:"imageUrl"`     // Empty string means "no image".
	OrganizationID string    `json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"` // Server-assigned, immutable after creation.
	UpdatedAt      time.Time `json:"updatedAt"` // Server-assigned, rewritten on every mutation.
}

// IsLowStock reports whether the item's quantity has fallen below its
// configured minimum threshold.
func (i InventoryItem) IsLowStock() bool {
	return i.Quantity < i.MinThreshold
}
