package repository

import (
	"context"

	"nexstock/internal/domain/entity"
)

// StockHistoryRepository defines the operations for the append-only audit
// trail. Entries are never mutated or deleted.
type StockHistoryRepository interface {
	// Append writes one history entry under the given document id and stamps
	// Timestamp with the server time. Writing the same id twice overwrites
	// the same document, which makes redelivered events harmless.
	Append(ctx context.Context, id string, entry *entity.StockHistory) error

	// ListByItem retrieves the history entries for one item, newest first.
	ListByItem(ctx context.Context, itemID string) ([]entity.StockHistory, error)
}
