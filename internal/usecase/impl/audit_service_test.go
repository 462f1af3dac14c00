package impl

import (
	"context"
	"testing"

	"nexstock/internal/domain/entity"
	"nexstock/internal/domain/service"
	mockRepo "nexstock/internal/mocks/repository"
	"nexstock/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// auditServiceFixtures holds all test dependencies for audit service tests.
type auditServiceFixtures struct {
	service     usecase.AuditUsecase
	historyRepo *mockRepo.MockStockHistoryRepository
}

func createTestAuditService(t *testing.T) auditServiceFixtures {
	historyRepo := mockRepo.NewMockStockHistoryRepository(t)
	svc := NewAuditService(AuditServiceParams{
		HistoryRepo: historyRepo,
		Logger:      newTestLogger(),
	})

	return auditServiceFixtures{
		service:     svc,
		historyRepo: historyRepo,
	}
}

func TestAuditService_RecordItemChange_IncreaseIsPurchase(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		EventID:          "evt-1",
		ItemID:           "item-1",
		OrganizationID:   "org-1",
		PreviousQuantity: 5,
		NewQuantity:      15,
		ChangedBy:        "user-7",
	}

	fx.historyRepo.EXPECT().
		Append(ctx, "evt-1", mock.MatchedBy(func(entry *entity.StockHistory) bool {
			return entry.ItemID == "item-1" &&
				entry.Type == entity.ChangePurchase &&
				entry.PreviousQuantity == 5 &&
				entry.NewQuantity == 15 &&
				entry.ChangedBy == "user-7"
		})).
		Return(nil)

	require.NoError(t, fx.service.RecordItemChange(ctx, event))
}

func TestAuditService_RecordItemChange_DecreaseIsSale(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		EventID:          "evt-2",
		ItemID:           "item-1",
		PreviousQuantity: 15,
		NewQuantity:      4,
		ChangedBy:        "user-7",
	}

	fx.historyRepo.EXPECT().
		Append(ctx, "evt-2", mock.MatchedBy(func(entry *entity.StockHistory) bool {
			return entry.Type == entity.ChangeSale
		})).
		Return(nil)

	require.NoError(t, fx.service.RecordItemChange(ctx, event))
}

func TestAuditService_RecordItemChange_NoOpOnEqualQuantity(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		EventID:          "evt-3",
		ItemID:           "item-1",
		PreviousQuantity: 8,
		NewQuantity:      8,
	}

	// No Append expectation: an unchanged quantity must not write an entry.
	require.NoError(t, fx.service.RecordItemChange(ctx, event))
}

func TestAuditService_RecordItemChange_UnknownActorRecordedAsSystem(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		EventID:          "evt-4",
		ItemID:           "item-1",
		PreviousQuantity: 0,
		NewQuantity:      10,
	}

	fx.historyRepo.EXPECT().
		Append(ctx, "evt-4", mock.MatchedBy(func(entry *entity.StockHistory) bool {
			return entry.ChangedBy == entity.SystemActor
		})).
		Return(nil)

	require.NoError(t, fx.service.RecordItemChange(ctx, event))
}

func TestAuditService_RecordItemChange_GeneratesIDWhenEventIDMissing(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		ItemID:           "item-1",
		PreviousQuantity: 2,
		NewQuantity:      6,
		ChangedBy:        "user-7",
	}

	fx.historyRepo.EXPECT().
		Append(ctx, mock.MatchedBy(func(id string) bool { return id != "" }), mock.AnythingOfType("*entity.StockHistory")).
		Return(nil)

	require.NoError(t, fx.service.RecordItemChange(ctx, event))
}

func TestAuditService_RecordItemChange_AppendFailureIsSwallowed(t *testing.T) {
	fx := createTestAuditService(t)

	ctx := context.Background()
	event := &service.ItemChangeEvent{
		EventID:          "evt-5",
		ItemID:           "item-1",
		PreviousQuantity: 5,
		NewQuantity:      9,
	}

	fx.historyRepo.EXPECT().
		Append(ctx, "evt-5", mock.AnythingOfType("*entity.StockHistory")).
		Return(errors.New("unavailable"))

	// Audit writes must never surface an error to the delivery layer.
	assert.NoError(t, fx.service.RecordItemChange(ctx, event))
}
