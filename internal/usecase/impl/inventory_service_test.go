package impl

import (
	"context"
	"testing"

	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/repository"
	"nexstock/internal/domain/service"
	mockRepo "nexstock/internal/mocks/repository"
	mockService "nexstock/internal/mocks/service"
	"nexstock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// inventoryServiceFixtures holds all test dependencies for inventory service tests.
type inventoryServiceFixtures struct {
	service     usecase.InventoryUsecase
	itemRepo    *mockRepo.MockInventoryRepository
	historyRepo *mockRepo.MockStockHistoryRepository
	publisher   *mockService.MockEventPublisher
}

func createTestInventoryService(t *testing.T) inventoryServiceFixtures {
	itemRepo := mockRepo.NewMockInventoryRepository(t)
	historyRepo := mockRepo.NewMockStockHistoryRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewInventoryService(InventoryServiceParams{
		ItemRepo:    itemRepo,
		HistoryRepo: historyRepo,
		Publisher:   publisher,
		Logger:      newTestLogger(),
	})

	return inventoryServiceFixtures{
		service:     svc,
		itemRepo:    itemRepo,
		historyRepo: historyRepo,
		publisher:   publisher,
	}
}

func TestInventoryService_CreateItem_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	input := &usecase.CreateItemInput{
		Name:           "USB-C Cable",
		SKU:            "CAB-001",
		Category:       "Electronics",
		Quantity:       40,
		MinThreshold:   10,
		OrganizationID: "org-1",
	}

	fx.itemRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(item *entity.InventoryItem) bool {
			return item.Name == "USB-C Cable" &&
				item.SKU == "CAB-001" &&
				item.Quantity == 40 &&
				item.OrganizationID == "org-1"
		})).
		Return("item-1", nil)

	id, err := fx.service.CreateItem(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "item-1", id)
}

func TestInventoryService_CreateItem_StoreError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.itemRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.InventoryItem")).
		Return("", errors.New("deadline exceeded"))

	id, err := fx.service.CreateItem(ctx, &usecase.CreateItemInput{Name: "X", OrganizationID: "org-1"})
	assert.Error(t, err)
	assert.Empty(t, id)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrStoreWrite.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "deadline exceeded")
}

func TestInventoryService_UpdateItem_PublishesEventOnQuantityChange(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	before := newTestItem("item-1", "Widget", 5)

	fx.itemRepo.EXPECT().
		FindByID(ctx, "item-1").
		Return(&before, nil)

	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.MatchedBy(func(fields repository.ItemFields) bool {
			return fields.Quantity != nil && *fields.Quantity == 15
		})).
		Return(nil)

	fx.publisher.EXPECT().
		PublishItemChange(ctx, mock.MatchedBy(func(event *service.ItemChangeEvent) bool {
			return event.ItemID == "item-1" &&
				event.OrganizationID == "org-1" &&
				event.PreviousQuantity == 5 &&
				event.NewQuantity == 15 &&
				event.ChangedBy == "user-7" &&
				event.EventID != ""
		})).
		Return(nil)

	err := fx.service.UpdateItem(ctx, "item-1", &usecase.UpdateItemInput{
		Quantity: ptr(15),
		ActedBy:  "user-7",
	})
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_NoEventWhenQuantityUnchanged(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	before := newTestItem("item-1", "Widget", 15)

	fx.itemRepo.EXPECT().
		FindByID(ctx, "item-1").
		Return(&before, nil)

	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("repository.ItemFields")).
		Return(nil)

	// No PublishItemChange expectation: the same quantity is not a transition.
	err := fx.service.UpdateItem(ctx, "item-1", &usecase.UpdateItemInput{Quantity: ptr(15)})
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_NoEventWhenQuantityOmitted(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	before := newTestItem("item-1", "Widget", 15)

	fx.itemRepo.EXPECT().
		FindByID(ctx, "item-1").
		Return(&before, nil)

	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.MatchedBy(func(fields repository.ItemFields) bool {
			return fields.Quantity == nil && fields.Name != nil
		})).
		Return(nil)

	err := fx.service.UpdateItem(ctx, "item-1", &usecase.UpdateItemInput{Name: ptr("Widget v2")})
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_PublishFailureDoesNotFailWrite(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	before := newTestItem("item-1", "Widget", 5)

	fx.itemRepo.EXPECT().
		FindByID(ctx, "item-1").
		Return(&before, nil)

	fx.itemRepo.EXPECT().
		Update(ctx, "item-1", mock.AnythingOfType("repository.ItemFields")).
		Return(nil)

	fx.publisher.EXPECT().
		PublishItemChange(ctx, mock.AnythingOfType("*service.ItemChangeEvent")).
		Return(errors.New("broker unreachable"))

	err := fx.service.UpdateItem(ctx, "item-1", &usecase.UpdateItemInput{Quantity: ptr(3)})
	require.NoError(t, err)
}

func TestInventoryService_UpdateItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.itemRepo.EXPECT().
		FindByID(ctx, "missing").
		Return(nil, repository.ErrItemNotFound)

	err := fx.service.UpdateItem(ctx, "missing", &usecase.UpdateItemInput{Quantity: ptr(1)})
	assert.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestInventoryService_DeleteItem_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.itemRepo.EXPECT().
		Delete(ctx, "item-1").
		Return(nil)

	require.NoError(t, fx.service.DeleteItem(ctx, "item-1"))
}

func TestInventoryService_DeleteItem_NotFound(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.itemRepo.EXPECT().
		Delete(ctx, "missing").
		Return(repository.ErrItemNotFound)

	err := fx.service.DeleteItem(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrItemNotFound)
}

func TestInventoryService_ItemHistory_Success(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	expected := []entity.StockHistory{
		{ID: "h2", ItemID: "item-1", Type: entity.ChangePurchase, PreviousQuantity: 5, NewQuantity: 15},
		{ID: "h1", ItemID: "item-1", Type: entity.ChangeSale, PreviousQuantity: 8, NewQuantity: 5},
	}

	fx.historyRepo.EXPECT().
		ListByItem(ctx, "item-1").
		Return(expected, nil)

	entries, err := fx.service.ItemHistory(ctx, "item-1")
	require.NoError(t, err)
	assert.Equal(t, expected, entries)
}

func TestInventoryService_ItemHistory_StoreError(t *testing.T) {
	fx := createTestInventoryService(t)

	ctx := context.Background()
	fx.historyRepo.EXPECT().
		ListByItem(ctx, "item-1").
		Return(nil, errors.New("unavailable"))

	entries, err := fx.service.ItemHistory(ctx, "item-1")
	assert.Error(t, err)
	assert.Nil(t, entries)

	var appErr *domainerrors.BaseError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrStoreRead.ErrorCode(), appErr.ErrorCode())
}
