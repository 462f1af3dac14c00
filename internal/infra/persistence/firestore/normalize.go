// Package firestore implements the persistence interfaces on Cloud
// Firestore. Collections: inventoryItems, users, stockHistory. Tenant
// isolation is by organizationId query predicate only.
package firestore

import (
	"time"

	"nexstock/internal/domain/entity"
)

// Some historically seeded documents carry keys with trailing spaces
// ("name ", "name  "). The source data is externally owned, so the repair
// is a permanent read-side layer: canonical keys stay clean on write,
// dirty keys are tolerated on read.

// normalizeItem repairs a raw inventory document into a fully-populated
// entity. The canonical key wins over suffixed variants; missing fields get
// zero defaults. It is pure and never fails.
func normalizeItem(docID string, raw map[string]any) entity.InventoryItem {
	return entity.InventoryItem{
		ID:             docID,
		Name:           stringField(raw, "name"),
		SKU:            stringField(raw, "sku"),
		Category:       stringField(raw, "category"),
		Quantity:       intField(raw, "quantity"),
		MinThreshold:   intField(raw, "minThreshold"),
		ImageURL:       stringField(raw, "imageUrl"),
		OrganizationID: stringField(raw, "organizationId"),
		CreatedAt:      timeField(raw, "createdAt"),
		UpdatedAt:      timeField(raw, "updatedAt"),
	}
}

// cleanKey resolves a field under its canonical key and whitespace-suffixed
// variants, first non-nil wins.
func cleanKey(raw map[string]any, key string) any {
	for _, k := range []string{key, key + " ", key + "  "} {
		if v, ok := raw[k]; ok && v != nil {
			return v
		}
	}

	return nil
}

func stringField(raw map[string]any, key string) string {
	if s, ok := cleanKey(raw, key).(string); ok {
		return s
	}

	return ""
}

// intField accepts the numeric shapes Firestore hands back: int64 for
// integer values, float64 for values written as doubles.
func intField(raw map[string]any, key string) int {
	switch v := cleanKey(raw, key).(type) {
	case int64:
		return int(v)
	case int:
		return v
	case float64:
		return int(v)
	default:
		return 0
	}
}

func timeField(raw map[string]any, key string) time.Time {
	if t, ok := cleanKey(raw, key).(time.Time); ok {
		return t
	}

	return time.Time{}
}
