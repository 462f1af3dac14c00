package usecase

import (
	"context"
	"sync"

	"nexstock/internal/domain/entity"
)

// ItemSubscription is a handle onto the live inventory feed of one
// organization. Snapshots delivers full normalized lists, never deltas; a
// pending undelivered snapshot is replaced when a newer one arrives, so a
// slow consumer always sees the most recent state next. Cancel tears the
// handle down; nothing is delivered afterwards.
type ItemSubscription struct {
	snapshots chan []entity.InventoryItem
	cancel    func()
	once      sync.Once
}

// NewItemSubscription wires a subscription handle around its snapshot
// channel and teardown hook. Intended for use by sync implementations.
func NewItemSubscription(snapshots chan []entity.InventoryItem, cancel func()) *ItemSubscription {
	return &ItemSubscription{snapshots: snapshots, cancel: cancel}
}

// Snapshots returns the channel snapshots are delivered on. It is closed
// after Cancel or when the underlying feed dies.
func (s *ItemSubscription) Snapshots() <-chan []entity.InventoryItem {
	return s.snapshots
}

// Cancel detaches the subscription. Safe to call more than once.
func (s *ItemSubscription) Cancel() {
	s.once.Do(s.cancel)
}

// CollectionSyncUsecase mirrors the store's filtered live query into
// in-memory state. One standing store query exists per organization no
// matter how many subscribers attach; the query is torn down when the last
// subscriber cancels.
type CollectionSyncUsecase interface {
	// Subscribe attaches to the organization's live feed, opening the
	// standing query on first use.
	Subscribe(ctx context.Context, organizationID string) (*ItemSubscription, error)

	// Snapshot returns the most recently delivered list for the
	// organization, falling back to a direct store read when no feed is
	// running.
	Snapshot(ctx context.Context, organizationID string) ([]entity.InventoryItem, error)
}
