package impl

import (
	"context"
	"testing"
	"time"

	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	mockRepo "nexstock/internal/mocks/repository"
	"nexstock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// syncServiceFixtures holds all test dependencies for sync service tests.
type syncServiceFixtures struct {
	service  usecase.CollectionSyncUsecase
	itemRepo *mockRepo.MockInventoryRepository
}

func createTestSyncService(t *testing.T) syncServiceFixtures {
	itemRepo := mockRepo.NewMockInventoryRepository(t)
	svc := NewSyncService(SyncServiceParams{
		ItemRepo: itemRepo,
		Logger:   newTestLogger(),
	})

	return syncServiceFixtures{
		service:  svc,
		itemRepo: itemRepo,
	}
}

// scriptedStream wires a MockItemSnapshotStream to a channel so tests control
// exactly when each snapshot arrives. Next blocks until a snapshot is pushed
// or the feed context is cancelled.
func scriptedStream(t *testing.T) (*mockRepo.MockItemSnapshotStream, chan []entity.InventoryItem) {
	stream := mockRepo.NewMockItemSnapshotStream(t)
	snapshots := make(chan []entity.InventoryItem, 8)

	stream.EXPECT().
		Next(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]entity.InventoryItem, error) {
			select {
			case items := <-snapshots:
				return items, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})

	stream.EXPECT().Stop().Maybe()

	return stream, snapshots
}

// receiveSnapshot reads one delivery or fails the test after a timeout.
func receiveSnapshot(t *testing.T, sub *usecase.ItemSubscription) []entity.InventoryItem {
	t.Helper()

	select {
	case items, ok := <-sub.Snapshots():
		require.True(t, ok, "subscription channel closed unexpectedly")

		return items
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for snapshot")

		return nil
	}
}

// requireClosed waits for the subscription channel to close.
func requireClosed(t *testing.T, sub *usecase.ItemSubscription) {
	t.Helper()

	for {
		select {
		case _, ok := <-sub.Snapshots():
			if !ok {
				return
			}
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for subscription to close")
		}
	}
}

func TestSyncService_Subscribe_DeliversSnapshots(t *testing.T) {
	fx := createTestSyncService(t)

	stream, snapshots := scriptedStream(t)
	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil)

	sub, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer sub.Cancel()

	first := []entity.InventoryItem{newTestItem("item-1", "Widget", 5)}
	snapshots <- first

	got := receiveSnapshot(t, sub)
	assert.Equal(t, first, got)
}

func TestSyncService_Subscribe_SlowConsumerSeesMostRecent(t *testing.T) {
	fx := createTestSyncService(t)

	stream, snapshots := scriptedStream(t)
	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil)
	// Snapshot polls below may race the first broadcast and fall back to a
	// direct read.
	fx.itemRepo.EXPECT().
		ListByOrganization(mock.Anything, "org-1").
		Return(nil, nil).
		Maybe()

	sub, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer sub.Cancel()

	stale := []entity.InventoryItem{newTestItem("item-1", "Widget", 5)}
	fresh := []entity.InventoryItem{newTestItem("item-1", "Widget", 9)}
	snapshots <- stale
	snapshots <- fresh

	// Wait until the second snapshot has been absorbed before reading, so the
	// pending delivery must have been replaced rather than queued.
	require.Eventually(t, func() bool {
		items, snapErr := fx.service.Snapshot(context.Background(), "org-1")

		return snapErr == nil && len(items) == 1 && items[0].Quantity == 9
	}, 2*time.Second, 10*time.Millisecond)

	got := receiveSnapshot(t, sub)
	assert.Equal(t, fresh, got)
}

func TestSyncService_Subscribe_SecondSubscriberPrimedWithLatest(t *testing.T) {
	fx := createTestSyncService(t)

	stream, snapshots := scriptedStream(t)
	// A single standing query serves both subscribers.
	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil).
		Once()

	first, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer first.Cancel()

	items := []entity.InventoryItem{newTestItem("item-1", "Widget", 5)}
	snapshots <- items
	receiveSnapshot(t, first)

	second, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer second.Cancel()

	got := receiveSnapshot(t, second)
	assert.Equal(t, items, got)
}

func TestSyncService_Subscribe_FanOutToAllSubscribers(t *testing.T) {
	fx := createTestSyncService(t)

	stream, snapshots := scriptedStream(t)
	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil).
		Once()

	first, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer first.Cancel()

	second, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)
	defer second.Cancel()

	items := []entity.InventoryItem{newTestItem("item-1", "Widget", 5)}
	snapshots <- items

	assert.Equal(t, items, receiveSnapshot(t, first))
	assert.Equal(t, items, receiveSnapshot(t, second))
}

func TestSyncService_Cancel_LastSubscriberStopsStream(t *testing.T) {
	fx := createTestSyncService(t)

	stream := mockRepo.NewMockItemSnapshotStream(t)
	snapshots := make(chan []entity.InventoryItem, 1)
	stream.EXPECT().
		Next(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]entity.InventoryItem, error) {
			select {
			case items := <-snapshots:
				return items, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	stream.EXPECT().Stop()

	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil)

	sub, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)

	sub.Cancel()

	_, ok := <-sub.Snapshots()
	assert.False(t, ok, "channel should be closed after Cancel")

	// Cancel is idempotent.
	sub.Cancel()
}

func TestSyncService_StreamFailureClosesSubscribers(t *testing.T) {
	fx := createTestSyncService(t)

	stream := mockRepo.NewMockItemSnapshotStream(t)
	failures := make(chan error, 1)
	stream.EXPECT().
		Next(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]entity.InventoryItem, error) {
			select {
			case err := <-failures:
				return nil, err
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		})
	stream.EXPECT().Stop()

	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(stream, nil)

	sub, err := fx.service.Subscribe(context.Background(), "org-1")
	require.NoError(t, err)

	failures <- errors.New("listener detached")

	requireClosed(t, sub)
}

func TestSyncService_Subscribe_WatchError(t *testing.T) {
	fx := createTestSyncService(t)

	fx.itemRepo.EXPECT().
		Watch(mock.Anything, "org-1").
		Return(nil, errors.New("permission denied"))

	sub, err := fx.service.Subscribe(context.Background(), "org-1")
	assert.Nil(t, sub)
	assert.Error(t, err)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrStoreSubscription.ErrorCode(), appErr.ErrorCode())
}

func TestSyncService_Snapshot_FallsBackToDirectRead(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	expected := []entity.InventoryItem{newTestItem("item-1", "Widget", 5)}

	fx.itemRepo.EXPECT().
		ListByOrganization(ctx, "org-1").
		Return(expected, nil)

	items, err := fx.service.Snapshot(ctx, "org-1")
	require.NoError(t, err)
	assert.Equal(t, expected, items)
}

func TestSyncService_Snapshot_ReadError(t *testing.T) {
	fx := createTestSyncService(t)

	ctx := context.Background()
	fx.itemRepo.EXPECT().
		ListByOrganization(ctx, "org-1").
		Return(nil, errors.New("unavailable"))

	items, err := fx.service.Snapshot(ctx, "org-1")
	assert.Nil(t, items)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrStoreRead.ErrorCode(), appErr.ErrorCode())
}
