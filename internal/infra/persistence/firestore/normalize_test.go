package firestore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeItem_CanonicalKeyWinsOverSuffixedVariants(t *testing.T) {
	raw := map[string]any{
		"name":   "Widget",
		"name ":  "Widget (dirty)",
		"name  ": "Widget (dirtier)",
		"sku ":   "W-1",
		"sku  ":  "W-1-old",
	}

	item := normalizeItem("item-1", raw)

	assert.Equal(t, "item-1", item.ID)
	assert.Equal(t, "Widget", item.Name)
	assert.Equal(t, "W-1", item.SKU, "single-space variant should win over double-space")
}

func TestNormalizeItem_SuffixedVariantUsedWhenCanonicalMissing(t *testing.T) {
	raw := map[string]any{
		"category  ": "Electronics",
		"quantity ":  int64(7),
	}

	item := normalizeItem("item-2", raw)

	assert.Equal(t, "Electronics", item.Category)
	assert.Equal(t, 7, item.Quantity)
}

func TestNormalizeItem_DefaultsWhenEveryVariantMissing(t *testing.T) {
	item := normalizeItem("item-3", map[string]any{})

	assert.Equal(t, "item-3", item.ID)
	assert.Empty(t, item.Name)
	assert.Empty(t, item.SKU)
	assert.Empty(t, item.Category)
	assert.Empty(t, item.ImageURL)
	assert.Empty(t, item.OrganizationID)
	assert.Zero(t, item.Quantity)
	assert.Zero(t, item.MinThreshold)
	assert.True(t, item.CreatedAt.IsZero())
	assert.True(t, item.UpdatedAt.IsZero())
}

func TestNormalizeItem_NilValueFallsThroughToNextVariant(t *testing.T) {
	raw := map[string]any{
		"imageUrl":  nil,
		"imageUrl ": "https://cdn.example.com/w.png",
	}

	item := normalizeItem("item-4", raw)

	assert.Equal(t, "https://cdn.example.com/w.png", item.ImageURL)
}

func TestNormalizeItem_NumericAndTimeShapes(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	raw := map[string]any{
		"quantity":     float64(12), // seeded as a double
		"minThreshold": int64(10),
		"createdAt":    created,
	}

	item := normalizeItem("item-5", raw)

	assert.Equal(t, 12, item.Quantity)
	assert.Equal(t, 10, item.MinThreshold)
	assert.Equal(t, created, item.CreatedAt)
}

func TestNormalizeItem_NegativeQuantityPreserved(t *testing.T) {
	// Negative values are not rejected at this layer; derived views must
	// tolerate them.
	item := normalizeItem("item-6", map[string]any{"quantity": int64(-3)})

	assert.Equal(t, -3, item.Quantity)
	assert.True(t, item.IsLowStock() == (item.Quantity < item.MinThreshold))
}
