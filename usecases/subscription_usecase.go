package usecases

import (
	"context"
	"sync"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/utils"
)

// SubscriptionUsecase owns the live queries of one UI session. It enforces
// the one-items-subscription rule: switching lists tears down the previous
// listener before starting the new one, so a stale snapshot can never race a
// fresher one into the UI. It also hooks the backfill engine onto delivered
// snapshots, repairing legacy records as they are observed.
type SubscriptionUsecase struct {
	listRepository repositories.ListRepository
	itemRepository repositories.ItemRepository
	backfill       *BackfillUsecase

	mu          sync.Mutex
	cancelItems func()
}

func NewSubscriptionUsecase(
	listRepository repositories.ListRepository,
	itemRepository repositories.ItemRepository,
	backfill *BackfillUsecase,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		listRepository: listRepository,
		itemRepository: itemRepository,
		backfill:       backfill,
	}
}

// SubscribeLists starts the lists live query. The returned cancel function
// must be called exactly once by the session; calling it again is a no-op.
func (uc *SubscriptionUsecase) SubscribeLists(ctx context.Context, onChange func([]models.List)) func() {
	authenticated := uc.isAuthenticated(ctx)
	return uc.listRepository.SubscribeLists(ctx, func(lists []models.List) {
		onChange(lists)
		if authenticated && anyListMissingOrder(lists) {
			go uc.runListBackfill(ctx)
		}
	})
}

// SwitchItems replaces the session's items subscription with one for listId.
func (uc *SubscriptionUsecase) SwitchItems(ctx context.Context, listId string, onChange func([]models.Item)) func() {
	uc.mu.Lock()
	if uc.cancelItems != nil {
		uc.cancelItems()
		uc.cancelItems = nil
	}

	authenticated := uc.isAuthenticated(ctx)
	cancel := uc.itemRepository.SubscribeItems(ctx, listId, func(items []models.Item) {
		onChange(items)
		if authenticated && anyItemMissingFields(items) {
			go uc.runItemBackfill(ctx, listId)
		}
	})
	uc.cancelItems = cancel
	uc.mu.Unlock()
	return cancel
}

// UnsubscribeItems tears down the current items subscription, if any.
func (uc *SubscriptionUsecase) UnsubscribeItems() {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.cancelItems != nil {
		uc.cancelItems()
		uc.cancelItems = nil
	}
}

func (uc *SubscriptionUsecase) isAuthenticated(ctx context.Context) bool {
	_, found := utils.CredentialsFromCtx(ctx)
	return found
}

func (uc *SubscriptionUsecase) runListBackfill(ctx context.Context) {
	if err := uc.backfill.BackfillListOrder(ctx); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "list order backfill failed", "error", err)
	}
}

func (uc *SubscriptionUsecase) runItemBackfill(ctx context.Context, listId string) {
	if err := uc.backfill.BackfillItemOrder(ctx, listId); err != nil {
		utils.LoggerFromContext(ctx).ErrorContext(ctx, "item order backfill failed",
			"listId", listId, "error", err)
	}
}

func anyListMissingOrder(lists []models.List) bool {
	for _, list := range lists {
		if list.OrderMissing {
			return true
		}
	}
	return false
}

func anyItemMissingFields(items []models.Item) bool {
	for _, item := range items {
		if item.OrderMissing || item.QuantityMissing {
			return true
		}
	}
	return false
}
