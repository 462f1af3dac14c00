package impl

import (
	"fmt"
	"testing"

	"nexstock/config"
	"nexstock/internal/domain/entity"
	"nexstock/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestViewService(pageSize int) usecase.InventoryViewUsecase {
	cfg := &config.Config{}
	cfg.Inventory.PageSize = pageSize

	return NewInventoryViewService(cfg)
}

func TestViewService_Derive_SearchMatchesNameOrSKU(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "1", Name: "USB-C Cable", SKU: "CAB-001"},
		{ID: "2", Name: "Monitor Stand", SKU: "STD-002"},
		{ID: "3", Name: "Desk Lamp", SKU: "usb-hub-bundle"},
	}

	page := svc.Derive(items, usecase.ItemQuery{Search: "USB"})

	require.Len(t, page.Items, 2)
	assert.Equal(t, "3", page.Items[0].ID) // "Desk Lamp" sorts before "USB-C Cable"
	assert.Equal(t, "1", page.Items[1].ID)
}

func TestViewService_Derive_SearchNoMatch(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{{ID: "1", Name: "Cable"}}

	page := svc.Derive(items, usecase.ItemQuery{Search: "printer"})
	assert.Empty(t, page.Items)
	assert.Equal(t, 0, page.TotalItems)
	assert.Equal(t, 0, page.TotalPages)
}

func TestViewService_Derive_CategoryFilter(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "1", Name: "Cable", Category: "Electronics"},
		{ID: "2", Name: "Chair", Category: "Furniture"},
		{ID: "3", Name: "Lamp", Category: "Electronics"},
	}

	page := svc.Derive(items, usecase.ItemQuery{Category: "Electronics"})
	require.Len(t, page.Items, 2)
	for _, item := range page.Items {
		assert.Equal(t, "Electronics", item.Category)
	}

	all := svc.Derive(items, usecase.ItemQuery{Category: usecase.CategoryAll})
	assert.Len(t, all.Items, 3)
}

func TestViewService_Derive_SortByQuantityIsStable(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "a", Name: "A", Quantity: 30},
		{ID: "b", Name: "B", Quantity: 5},
		{ID: "c", Name: "C", Quantity: 5},
		{ID: "d", Name: "D", Quantity: 12},
	}

	page := svc.Derive(items, usecase.ItemQuery{SortKey: "quantity"})

	require.Len(t, page.Items, 4)
	// Equal quantities keep their prior relative order.
	assert.Equal(t, "b", page.Items[0].ID)
	assert.Equal(t, "c", page.Items[1].ID)
	assert.Equal(t, "d", page.Items[2].ID)
	assert.Equal(t, "a", page.Items[3].ID)
}

func TestViewService_Derive_SortDescending(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "a", Name: "A", Quantity: 30},
		{ID: "b", Name: "B", Quantity: 5},
		{ID: "c", Name: "C", Quantity: 12},
	}

	page := svc.Derive(items, usecase.ItemQuery{SortKey: "quantity", SortDirection: usecase.SortDesc})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "a", page.Items[0].ID)
	assert.Equal(t, "c", page.Items[1].ID)
	assert.Equal(t, "b", page.Items[2].ID)
}

func TestViewService_Derive_DefaultSortIsNameCaseInsensitive(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "1", Name: "zebra print"},
		{ID: "2", Name: "Apple stand"},
		{ID: "3", Name: "apple cable"},
	}

	page := svc.Derive(items, usecase.ItemQuery{})

	require.Len(t, page.Items, 3)
	assert.Equal(t, "3", page.Items[0].ID)
	assert.Equal(t, "2", page.Items[1].ID)
	assert.Equal(t, "1", page.Items[2].ID)
}

func TestViewService_Derive_PagesConcatenateToFullView(t *testing.T) {
	svc := createTestViewService(10)

	items := make([]entity.InventoryItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, entity.InventoryItem{
			ID:   fmt.Sprintf("item-%02d", i),
			Name: fmt.Sprintf("Item %02d", i),
		})
	}

	var seen []string
	for p := 1; p <= 3; p++ {
		page := svc.Derive(items, usecase.ItemQuery{Page: p})
		assert.Equal(t, 25, page.TotalItems)
		assert.Equal(t, 3, page.TotalPages)
		for _, item := range page.Items {
			seen = append(seen, item.ID)
		}
	}

	require.Len(t, seen, 25)
	for i := 0; i < 25; i++ {
		assert.Equal(t, fmt.Sprintf("item-%02d", i), seen[i])
	}
}

func TestViewService_Derive_OutOfRangePageIsEmpty(t *testing.T) {
	svc := createTestViewService(10)

	items := make([]entity.InventoryItem, 25)
	for i := range items {
		items[i] = entity.InventoryItem{ID: fmt.Sprintf("item-%02d", i), Name: fmt.Sprintf("Item %02d", i)}
	}

	page := svc.Derive(items, usecase.ItemQuery{Page: 4})
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
	assert.Equal(t, 4, page.Page)
	assert.Equal(t, 25, page.TotalItems)
	assert.Equal(t, 3, page.TotalPages)
}

func TestViewService_Derive_PageBelowOneClampsToFirst(t *testing.T) {
	svc := createTestViewService(2)

	items := []entity.InventoryItem{
		{ID: "1", Name: "A"},
		{ID: "2", Name: "B"},
		{ID: "3", Name: "C"},
	}

	page := svc.Derive(items, usecase.ItemQuery{Page: 0})
	assert.Equal(t, 1, page.Page)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "1", page.Items[0].ID)
}

func TestViewService_Derive_LeavesInputUnmodified(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "z", Name: "Zebra", Quantity: 1},
		{ID: "a", Name: "Apple", Quantity: 2},
	}

	_ = svc.Derive(items, usecase.ItemQuery{SortKey: "name"})

	assert.Equal(t, "z", items[0].ID)
	assert.Equal(t, "a", items[1].ID)
}

func TestViewService_LowStock_BelowThresholdOnly(t *testing.T) {
	svc := createTestViewService(10)

	items := []entity.InventoryItem{
		{ID: "low", Quantity: 5, MinThreshold: 10},
		{ID: "exact", Quantity: 10, MinThreshold: 10},
		{ID: "above", Quantity: 11, MinThreshold: 10},
		{ID: "zero", Quantity: 0, MinThreshold: 1},
	}

	low := svc.LowStock(items)

	require.Len(t, low, 2)
	assert.Equal(t, "low", low[0].ID)
	assert.Equal(t, "zero", low[1].ID)
}

func TestViewService_LowStock_EmptyList(t *testing.T) {
	svc := createTestViewService(10)

	low := svc.LowStock(nil)
	assert.NotNil(t, low)
	assert.Empty(t, low)
}
