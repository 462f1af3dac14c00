package impl

import (
	"sort"
	"strings"

	"nexstock/config"
	"nexstock/internal/domain/entity"
	"nexstock/internal/usecase"
)

// viewService implements the InventoryViewUsecase interface. Every method is
// pure: no I/O, no retained state beyond the configured page size.
type viewService struct {
	pageSize int
}

// NewInventoryViewService is the constructor for viewService.
func NewInventoryViewService(cfg *config.Config) usecase.InventoryViewUsecase {
	return &viewService{pageSize: cfg.Inventory.PageSize}
}

// Derive recomputes the view window: category and search filters, then a
// stable sort, then pagination.
func (srv *viewService) Derive(items []entity.InventoryItem, query usecase.ItemQuery) usecase.ItemPage {
	filtered := filterCategory(items, query.Category)
	filtered = filterSearch(filtered, query.Search)
	sortItems(filtered, query.SortKey, query.SortDirection)

	total := len(filtered)
	totalPages := (total + srv.pageSize - 1) / srv.pageSize

	page := query.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * srv.pageSize
	end := start + srv.pageSize
	if start >= total {
		// Out-of-range pages yield an empty window, never an error.
		return usecase.ItemPage{
			Items:      []entity.InventoryItem{},
			Page:       page,
			PageSize:   srv.pageSize,
			TotalItems: total,
			TotalPages: totalPages,
		}
	}
	if end > total {
		end = total
	}

	return usecase.ItemPage{
		Items:      filtered[start:end],
		Page:       page,
		PageSize:   srv.pageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}
}

// LowStock evaluates the alert boundary over the complete list, independent
// of any search, category or pagination state.
func (srv *viewService) LowStock(items []entity.InventoryItem) []entity.InventoryItem {
	low := make([]entity.InventoryItem, 0)
	for _, item := range items {
		if item.IsLowStock() {
			low = append(low, item)
		}
	}

	return low
}

func filterCategory(items []entity.InventoryItem, category string) []entity.InventoryItem {
	if category == "" || category == usecase.CategoryAll {
		out := make([]entity.InventoryItem, len(items))
		copy(out, items)

		return out
	}

	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			out = append(out, item)
		}
	}

	return out
}

func filterSearch(items []entity.InventoryItem, term string) []entity.InventoryItem {
	if term == "" {
		return items
	}

	needle := strings.ToLower(term)
	out := make([]entity.InventoryItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.SKU), needle) {
			out = append(out, item)
		}
	}

	return out
}

// sortItems sorts in place. The sort must be stable so equal keys keep their
// prior relative order, which keeps pagination deterministic.
func sortItems(items []entity.InventoryItem, key string, direction usecase.SortDirection) {
	less := lessFunc(key)
	if direction == usecase.SortDesc {
		asc := less
		less = func(a, b entity.InventoryItem) bool { return asc(b, a) }
	}

	sort.SliceStable(items, func(i, j int) bool {
		return less(items[i], items[j])
	})
}

func lessFunc(key string) func(a, b entity.InventoryItem) bool {
	switch key {
	case "quantity":
		return func(a, b entity.InventoryItem) bool { return a.Quantity < b.Quantity }
	case "minThreshold":
		return func(a, b entity.InventoryItem) bool { return a.MinThreshold < b.MinThreshold }
	case "sku":
		return func(a, b entity.InventoryItem) bool { return lessFold(a.SKU, b.SKU) }
	case "category":
		return func(a, b entity.InventoryItem) bool { return lessFold(a.Category, b.Category) }
	case "updatedAt":
		return func(a, b entity.InventoryItem) bool { return a.UpdatedAt.Before(b.UpdatedAt) }
	default:
		return func(a, b entity.InventoryItem) bool { return lessFold(a.Name, b.Name) }
	}
}

// lessFold compares strings case-insensitively.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
