package usecase

import (
	"context"

	"nexstock/internal/domain/service"
)

// AuditUsecase is the change audit emitter. It reacts to item change events
// with exactly two outcomes: quantity unchanged (no-op) or quantity changed
// (one history entry). History write failures are logged and swallowed so
// the audit trail can lose entries without ever affecting the primary
// write; redelivered events rewrite the same entry instead of duplicating
// it.
type AuditUsecase interface {
	RecordItemChange(ctx context.Context, event *service.ItemChangeEvent) error
}
