package usecases

import (
	"context"
	"sort"
	"sync"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/utils"
)

const backfillScopeLists = "lists"

// BackfillUsecase repairs records created before the order and quantity
// fields existed. It runs opportunistically off subscription snapshots and is
// never a prerequisite for reads. Each scope runs at most once concurrently
// in this process; the guard is a local flag, not a distributed lock, so two
// separate sessions may each run the backfill once. That is acceptable: the
// assignment is deterministic and convergent.
type BackfillUsecase struct {
	listRepository repositories.ListRepository
	itemRepository repositories.ItemRepository
	bulkRepository repositories.BulkRepository

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewBackfillUsecase(
	listRepository repositories.ListRepository,
	itemRepository repositories.ItemRepository,
	bulkRepository repositories.BulkRepository,
) *BackfillUsecase {
	return &BackfillUsecase{
		listRepository: listRepository,
		itemRepository: itemRepository,
		bulkRepository: bulkRepository,
		inFlight:       make(map[string]bool),
	}
}

func (uc *BackfillUsecase) tryAcquire(scope string) bool {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.inFlight[scope] {
		return false
	}
	uc.inFlight[scope] = true
	return true
}

// release clears the in-flight flag even on failure, so a later snapshot can
// retry the scope.
func (uc *BackfillUsecase) release(scope string) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	delete(uc.inFlight, scope)
}

// BackfillListOrder assigns a synthetic order to every list missing one:
// createdAt epoch millis plus the record's index within the missing subset
// sorted by createdAt, which keeps existing ordering and strictly separates
// creation-time ties. A second trigger while a run is in flight is a no-op.
func (uc *BackfillUsecase) BackfillListOrder(ctx context.Context) error {
	if !uc.tryAcquire(backfillScopeLists) {
		return nil
	}
	defer uc.release(backfillScopeLists)

	lists, err := uc.listRepository.AllLists(ctx)
	if err != nil {
		return err
	}

	missing := pure_utils.Filter(lists, func(l models.List) bool { return l.OrderMissing })
	if len(missing) == 0 {
		return nil
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].CreatedAt.Before(missing[j].CreatedAt)
	})

	assignments := make([]models.OrderAssignment, len(missing))
	for i, list := range missing {
		assignments[i] = models.OrderAssignment{
			Id:    list.Id,
			Order: float64(list.CreatedAt.UnixMilli() + int64(i)),
		}
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "backfilling list order", "count", len(assignments))
	return uc.bulkRepository.BulkSetListOrders(ctx, assignments)
}

// BackfillItemOrder is the per-list equivalent, additionally assigning
// quantity=1 to items missing it.
func (uc *BackfillUsecase) BackfillItemOrder(ctx context.Context, listId string) error {
	scope := "items:" + listId
	if !uc.tryAcquire(scope) {
		return nil
	}
	defer uc.release(scope)

	items, err := uc.itemRepository.AllItems(ctx, listId)
	if err != nil {
		return err
	}

	missing := pure_utils.Filter(items, func(i models.Item) bool {
		return i.OrderMissing || i.QuantityMissing
	})
	if len(missing) == 0 {
		return nil
	}
	sort.SliceStable(missing, func(i, j int) bool {
		return missing[i].CreatedAt.Before(missing[j].CreatedAt)
	})

	assignments := make([]models.OrderAssignment, 0, len(missing))
	orderIdx := 0
	for _, item := range missing {
		assignment := models.OrderAssignment{Id: item.Id, Order: item.Order}
		if item.OrderMissing {
			assignment.Order = float64(item.CreatedAt.UnixMilli() + int64(orderIdx))
			orderIdx++
		}
		if item.QuantityMissing {
			assignment.SetQuantity = true
			assignment.Quantity = 1
		}
		assignments = append(assignments, assignment)
	}

	utils.LoggerFromContext(ctx).InfoContext(ctx, "backfilling item order",
		"listId", listId, "count", len(assignments))
	return uc.bulkRepository.BulkSetItemOrders(ctx, listId, assignments)
}
