// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "nexstock/internal/delivery/context"
	"nexstock/internal/domain/entity"
	domainerrors "nexstock/internal/domain/errors"
	"nexstock/internal/domain/repository"
	"nexstock/internal/domain/service"

	"nexstock/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// inventoryService implements the InventoryUsecase interface.
type inventoryService struct {
	itemRepo    repository.InventoryRepository
	historyRepo repository.StockHistoryRepository
	publisher   service.EventPublisher
	logger      *slog.Logger
}

// InventoryServiceParams holds dependencies for InventoryService, injected by Fx.
type InventoryServiceParams struct {
	fx.In

	ItemRepo    repository.InventoryRepository
	HistoryRepo repository.StockHistoryRepository
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewInventoryService is the constructor for inventoryService. It receives all dependencies as interfaces.
func NewInventoryService(params InventoryServiceParams) usecase.InventoryUsecase {
	return &inventoryService{
		itemRepo:    params.ItemRepo,
		historyRepo: params.HistoryRepo,
		publisher:   params.Publisher,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *inventoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateItem persists a new item with server-assigned timestamps.
func (srv *inventoryService) CreateItem(ctx context.Context, input *usecase.CreateItemInput) (string, error) {
	srv.log(ctx).Info("Creating inventory item",
		slog.String("sku", input.SKU),
		slog.String("organizationID", input.OrganizationID),
	)

	id, err := srv.itemRepo.Create(ctx, &entity.InventoryItem{
		Name:           input.Name,
		SKU:            input.SKU,
		Category:       input.Category,
		Quantity:       input.Quantity,
		MinThreshold:   input.MinThreshold,
		ImageURL:       input.ImageURL,
		OrganizationID: input.OrganizationID,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create inventory item", slog.String("sku", input.SKU), slog.Any("error", err))

		return "", domainerrors.ErrStoreWrite.WithDetails(err.Error())
	}

	return id, nil
}

// UpdateItem merges partial fields. A quantity transition emits an item
// change event for the audit worker after the primary write succeeds.
func (srv *inventoryService) UpdateItem(ctx context.Context, id string, input *usecase.UpdateItemInput) error {
	srv.log(ctx).Info("Updating inventory item", slog.String("itemID", id))

	// Pre-image for the audit event. The read and the write are not atomic;
	// concurrent writers race at last-write-wins granularity, softened by
	// the field-level merge below.
	before, err := srv.itemRepo.FindByID(ctx, id)
	if err != nil {
		return srv.mapStoreError(ctx, id, err)
	}

	if err := srv.itemRepo.Update(ctx, id, repository.ItemFields{
		Name:         input.Name,
		SKU:          input.SKU,
		Category:     input.Category,
		Quantity:     input.Quantity,
		MinThreshold: input.MinThreshold,
		ImageURL:     input.ImageURL,
	}); err != nil {
		return srv.mapStoreError(ctx, id, err)
	}

	if input.Quantity != nil && *input.Quantity != before.Quantity {
		srv.publishChange(ctx, before, *input.Quantity, input.ActedBy)
	}

	return nil
}

// DeleteItem removes the item unconditionally. No history entry is emitted.
func (srv *inventoryService) DeleteItem(ctx context.Context, id string) error {
	srv.log(ctx).Info("Deleting inventory item", slog.String("itemID", id))

	if err := srv.itemRepo.Delete(ctx, id); err != nil {
		return srv.mapStoreError(ctx, id, err)
	}

	return nil
}

func (srv *inventoryService) ItemHistory(ctx context.Context, itemID string) ([]entity.StockHistory, error) {
	entries, err := srv.historyRepo.ListByItem(ctx, itemID)
	if err != nil {
		srv.log(ctx).Error("Failed to list stock history", slog.String("itemID", itemID), slog.Any("error", err))

		return nil, domainerrors.ErrStoreRead.WithDetails(err.Error())
	}

	return entries, nil
}

// publishChange hands the quantity transition to the audit worker. Failures
// are logged and dropped: the audit trail may lose entries, the primary
// write never rolls back.
func (srv *inventoryService) publishChange(ctx context.Context, before *entity.InventoryItem, newQuantity int, actedBy string) {
	event := &service.ItemChangeEvent{
		RequestID:        deliverycontext.GetRequestIDFromContext(ctx),
		EventID:          uuid.New().String(),
		ItemID:           before.ID,
		OrganizationID:   before.OrganizationID,
		PreviousQuantity: before.Quantity,
		NewQuantity:      newQuantity,
		ChangedBy:        actedBy,
	}

	if err := srv.publisher.PublishItemChange(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish item change event",
			slog.String("itemID", before.ID),
			slog.String("eventID", event.EventID),
			slog.Any("error", err),
		)
	}
}

func (srv *inventoryService) mapStoreError(ctx context.Context, id string, err error) error {
	if errors.Is(err, repository.ErrItemNotFound) {
		return domainerrors.ErrItemNotFound.WrapMessage("item " + id)
	}

	srv.log(ctx).Error("Inventory store write failed", slog.String("itemID", id), slog.Any("error", err))

	return domainerrors.ErrStoreWrite.WithDetails(err.Error())
}
