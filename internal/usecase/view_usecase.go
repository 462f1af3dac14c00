package usecase

import (
	"nexstock/internal/domain/entity"
)

// CategoryAll is the sentinel category filter that matches every item.
const CategoryAll = "All"

// SortDirection orders a derived view ascending or descending.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// ItemQuery selects, orders and windows the derived inventory view.
type ItemQuery struct {
	Search        string        // Case-insensitive substring on name or sku; empty matches all.
	Category      string        // Exact match; "" or "All" passes everything through.
	SortKey       string        // name, sku, category, quantity, minThreshold, updatedAt.
	SortDirection SortDirection // Defaults to ascending.
	Page          int           // 1-based; pages beyond the end yield an empty slice.
}

// ItemPage is one window of the filtered and sorted view, with enough
// totals for the caller to render a pager.
type ItemPage struct {
	Items      []entity.InventoryItem `json:"items"`
	Page       int                    `json:"page"`
	PageSize   int                    `json:"pageSize"`
	TotalItems int                    `json:"totalItems"`
	TotalPages int                    `json:"totalPages"`
}

// InventoryViewUsecase is the derived view engine: pure, synchronous, and
// recomputed from scratch on every call. Filters apply before the stable
// sort, the sort before pagination; low-stock derivation is independent of
// all view state and always sees the complete list.
type InventoryViewUsecase interface {
	Derive(items []entity.InventoryItem, query ItemQuery) ItemPage
	LowStock(items []entity.InventoryItem) []entity.InventoryItem
}
