package impl

import (
	"context"
	"log/slog"

	deliverycontext "nexstock/internal/delivery/context"
	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/repository"
	"nexstock/internal/domain/service"
	"nexstock/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// auditService implements the AuditUsecase interface.
type auditService struct {
	historyRepo repository.StockHistoryRepository
	logger      *slog.Logger
}

// AuditServiceParams holds dependencies for AuditService, injected by Fx.
type AuditServiceParams struct {
	fx.In

	HistoryRepo repository.StockHistoryRepository
	Logger      *slog.Logger
}

// NewAuditService is the constructor for auditService.
func NewAuditService(params AuditServiceParams) usecase.AuditUsecase {
	return &auditService{
		historyRepo: params.HistoryRepo,
		logger:      params.Logger,
	}
}

func (srv *auditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RecordItemChange appends one history entry per quantity transition.
// Unchanged quantities are a no-op. Append failures are logged and
// swallowed: the audit trail trades completeness for never blocking or
// retrying against the primary write path.
func (srv *auditService) RecordItemChange(ctx context.Context, event *service.ItemChangeEvent) error {
	if event.PreviousQuantity == event.NewQuantity {
		srv.log(ctx).Debug("Quantity unchanged, skipping history entry",
			slog.String("itemID", event.ItemID),
		)

		return nil
	}

	changedBy := event.ChangedBy
	if changedBy == "" {
		changedBy = entity.SystemActor
	}

	// The event id doubles as the document id so a redelivered event
	// rewrites the same entry instead of appending a duplicate.
	entryID := event.EventID
	if entryID == "" {
		entryID = uuid.New().String()
	}

	entry := &entity.StockHistory{
		ItemID:           event.ItemID,
		Type:             entity.ClassifyChange(event.PreviousQuantity, event.NewQuantity),
		PreviousQuantity: event.PreviousQuantity,
		NewQuantity:      event.NewQuantity,
		ChangedBy:        changedBy,
	}

	if err := srv.historyRepo.Append(ctx, entryID, entry); err != nil {
		srv.log(ctx).Error("Failed to append stock history",
			slog.String("itemID", event.ItemID),
			slog.String("entryID", entryID),
			slog.Any("error", err),
		)

		return nil
	}

	srv.log(ctx).Info("Stock history logged",
		slog.String("itemID", event.ItemID),
		slog.Any("type", entry.Type),
		slog.Int("previousQuantity", entry.PreviousQuantity),
		slog.Int("newQuantity", entry.NewQuantity),
	)

	return nil
}
