package impl

import (
	"io"
	"log/slog"
	"time"

	"nexstock/internal/domain/entity"
)

// newTestLogger returns a logger that discards everything, keeping test
// output readable.
func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T {
	return &v
}

// newTestItem builds an inventory item with sensible defaults for tests.
func newTestItem(id, name string, quantity int) entity.InventoryItem {
	return entity.InventoryItem{
		ID:             id,
		Name:           name,
		SKU:            "SKU-" + id,
		Category:       "Electronics",
		Quantity:       quantity,
		MinThreshold:   5,
		OrganizationID: "org-1",
		CreatedAt:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		UpdatedAt:      time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC),
	}
}
