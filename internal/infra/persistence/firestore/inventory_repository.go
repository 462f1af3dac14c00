package firestore

import (
	"context"

	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/repository"

	fs "cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type inventoryRepository struct {
	client *fs.Client
}

// NewInventoryRepository creates a Firestore-backed InventoryRepository.
func NewInventoryRepository(client *fs.Client) repository.InventoryRepository {
	return &inventoryRepository{client: client}
}

func (r *inventoryRepository) items() *fs.CollectionRef {
	return r.client.Collection(colInventoryItems)
}

// Create writes canonical keys only; dirty keys are tolerated on read, never
// produced on write.
func (r *inventoryRepository) Create(ctx context.Context, item *entity.InventoryItem) (string, error) {
	ref, _, err := r.items().Add(ctx, map[string]any{
		"name":           item.Name,
		"sku":            item.SKU,
		"category":       item.Category,
		"quantity":       item.Quantity,
		"minThreshold":   item.MinThreshold,
		"imageUrl":       item.ImageURL,
		"organizationId": item.OrganizationID,
		"createdAt":      fs.ServerTimestamp,
		"updatedAt":      fs.ServerTimestamp,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to add inventory item")
	}

	return ref.ID, nil
}

func (r *inventoryRepository) Update(ctx context.Context, id string, fields repository.ItemFields) error {
	updates := []fs.Update{
		{Path: "updatedAt", Value: fs.ServerTimestamp},
	}
	if fields.Name != nil {
		updates = append(updates, fs.Update{Path: "name", Value: *fields.Name})
	}
	if fields.SKU != nil {
		updates = append(updates, fs.Update{Path: "sku", Value: *fields.SKU})
	}
	if fields.Category != nil {
		updates = append(updates, fs.Update{Path: "category", Value: *fields.Category})
	}
	if fields.Quantity != nil {
		updates = append(updates, fs.Update{Path: "quantity", Value: *fields.Quantity})
	}
	if fields.MinThreshold != nil {
		updates = append(updates, fs.Update{Path: "minThreshold", Value: *fields.MinThreshold})
	}
	if fields.ImageURL != nil {
		updates = append(updates, fs.Update{Path: "imageUrl", Value: *fields.ImageURL})
	}

	// Field-level merge: concurrent writers only race on the fields they
	// both touch, not on the whole document.
	if _, err := r.items().Doc(id).Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to update inventory item")
	}

	return nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id string) error {
	// Firestore deletes are no-ops for missing documents; the contract wants
	// an error for unknown ids, so check existence first.
	if _, err := r.items().Doc(id).Get(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return repository.ErrItemNotFound
		}

		return errors.Wrap(err, "failed to load inventory item before delete")
	}

	if _, err := r.items().Doc(id).Delete(ctx); err != nil {
		return errors.Wrap(err, "failed to delete inventory item")
	}

	return nil
}

func (r *inventoryRepository) FindByID(ctx context.Context, id string) (*entity.InventoryItem, error) {
	doc, err := r.items().Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrItemNotFound
		}

		return nil, errors.Wrap(err, "failed to get inventory item")
	}

	item := normalizeItem(doc.Ref.ID, doc.Data())

	return &item, nil
}

func (r *inventoryRepository) ListByOrganization(ctx context.Context, organizationID string) ([]entity.InventoryItem, error) {
	docs, err := r.items().Where("organizationId", "==", organizationID).Documents(ctx).GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list inventory items")
	}

	items := make([]entity.InventoryItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, normalizeItem(doc.Ref.ID, doc.Data()))
	}

	return items, nil
}

func (r *inventoryRepository) Watch(ctx context.Context, organizationID string) (repository.ItemSnapshotStream, error) {
	iter := r.items().Where("organizationId", "==", organizationID).Snapshots(ctx)

	return &itemSnapshotStream{iter: iter}, nil
}

// itemSnapshotStream adapts the Firestore snapshot iterator to the domain
// stream contract. The context passed to Watch governs the standing query;
// Next's context only matters to callers that wrap this stream.
type itemSnapshotStream struct {
	iter *fs.QuerySnapshotIterator
}

func (s *itemSnapshotStream) Next(_ context.Context) ([]entity.InventoryItem, error) {
	snap, err := s.iter.Next()
	if err != nil {
		return nil, errors.Wrap(err, "snapshot stream interrupted")
	}

	docs, err := snap.Documents.GetAll()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read snapshot documents")
	}

	// Republish the full result set in store order, re-normalizing every
	// document. Never a delta.
	items := make([]entity.InventoryItem, 0, len(docs))
	for _, doc := range docs {
		items = append(items, normalizeItem(doc.Ref.ID, doc.Data()))
	}

	return items, nil
}

func (s *itemSnapshotStream) Stop() {
	s.iter.Stop()
}
