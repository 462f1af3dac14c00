package firestore

import (
	"context"
	"time"

	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
)

type stockHistoryRepository struct {
	client *fs.Client
}

// NewStockHistoryRepository creates a Firestore-backed StockHistoryRepository.
func NewStockHistoryRepository(client *fs.Client) repository.StockHistoryRepository {
	return &stockHistoryRepository{client: client}
}

func (r *stockHistoryRepository) history() *fs.CollectionRef {
	return r.client.Collection(colStockHistory)
}

// Append uses Set under a caller-chosen id: redelivery of the same event
// rewrites the same document instead of appending a duplicate.
func (r *stockHistoryRepository) Append(ctx context.Context, id string, entry *entity.StockHistory) error {
	if _, err := r.history().Doc(id).Set(ctx, map[string]any{
		"itemId":           entry.ItemID,
		"type":             string(entry.Type),
		"previousQuantity": entry.PreviousQuantity,
		"newQuantity":      entry.NewQuantity,
		"changedBy":        entry.ChangedBy,
		"timestamp":        fs.ServerTimestamp,
	}); err != nil {
		return errors.Wrap(err, "failed to append stock history")
	}

	return nil
}

func (r *stockHistoryRepository) ListByItem(ctx context.Context, itemID string) ([]entity.StockHistory, error) {
	docs, err := r.history().
		Where("itemId", "==", itemID).
		OrderBy("timestamp", fs.Desc).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list stock history")
	}

	entries := make([]entity.StockHistory, 0, len(docs))
	for _, doc := range docs {
		entries = append(entries, decodeHistory(doc.Ref.ID, doc.Data()))
	}

	return entries, nil
}

func decodeHistory(id string, raw map[string]any) entity.StockHistory {
	entry := entity.StockHistory{ID: id}

	if v, ok := raw["itemId"].(string); ok {
		entry.ItemID = v
	}
	if v, ok := raw["type"].(string); ok {
		entry.Type = entity.ChangeType(v)
	}
	if v, ok := raw["previousQuantity"].(int64); ok {
		entry.PreviousQuantity = int(v)
	}
	if v, ok := raw["newQuantity"].(int64); ok {
		entry.NewQuantity = int(v)
	}
	if v, ok := raw["changedBy"].(string); ok {
		entry.ChangedBy = v
	}
	if v, ok := raw["timestamp"].(time.Time); ok {
		entry.Timestamp = v
	}

	return entry
}
