package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/utils"
)

type defaultListResolver interface {
	EnsureDefaultList(ctx context.Context) (models.List, error)
}

type listDeleter interface {
	DeleteList(ctx context.Context, listId string) error
}

// BulkUsecase runs the operations that touch many item documents at once. All
// writes flow through the chunked batch repository: every chunk commits
// atomically, but a failure between chunks leaves earlier chunks committed.
// That partial state is surfaced to the caller, never retried silently.
type BulkUsecase struct {
	itemRepository repositories.ItemRepository
	bulkRepository repositories.BulkRepository
	listRepository listDeleter
	defaultLists   defaultListResolver
}

func NewBulkUsecase(
	itemRepository repositories.ItemRepository,
	bulkRepository repositories.BulkRepository,
	listRepository listDeleter,
	defaultLists defaultListResolver,
) *BulkUsecase {
	return &BulkUsecase{
		itemRepository: itemRepository,
		bulkRepository: bulkRepository,
		listRepository: listRepository,
		defaultLists:   defaultLists,
	}
}

func itemIds(items []models.Item) []string {
	return pure_utils.Map(items, func(item models.Item) string { return item.Id })
}

// UpdateAllItems sets checked on every item of the list.
func (uc *BulkUsecase) UpdateAllItems(ctx context.Context, listId string, checked bool) error {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.UnAuthorizedError
	}
	items, err := uc.itemRepository.AllItems(ctx, listId)
	if err != nil {
		return err
	}
	return uc.bulkRepository.BulkSetItemsChecked(ctx, listId, itemIds(items), checked, creds.ActorIdentity)
}

// ClearCheckedItems deletes every checked item of the list.
func (uc *BulkUsecase) ClearCheckedItems(ctx context.Context, listId string) error {
	items, err := uc.itemRepository.CheckedItems(ctx, listId)
	if err != nil {
		return err
	}
	return uc.bulkRepository.BulkDeleteItems(ctx, listId, itemIds(items))
}

// ClearAllItems deletes every item of the list.
func (uc *BulkUsecase) ClearAllItems(ctx context.Context, listId string) error {
	items, err := uc.itemRepository.AllItems(ctx, listId)
	if err != nil {
		return err
	}
	return uc.bulkRepository.BulkDeleteItems(ctx, listId, itemIds(items))
}

// DeleteListWithItems removes a list. With keepItems the items are first
// copied to the default list (content, order and creation metadata preserved)
// and then deleted from the source; without it they are simply deleted. In
// both cases the list document itself is only deleted after every item
// operation has committed, so a list is never removed while orphaned items
// could still reference it.
func (uc *BulkUsecase) DeleteListWithItems(ctx context.Context, listId string, keepItems bool) error {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.UnAuthorizedError
	}

	items, err := uc.itemRepository.AllItems(ctx, listId)
	if err != nil {
		return err
	}

	if keepItems {
		defaultList, err := uc.defaultLists.EnsureDefaultList(ctx)
		if err != nil {
			return errors.Wrap(err, "could not resolve the default list")
		}
		if defaultList.Id == listId {
			return models.ErrDefaultListOnly
		}
		if err := uc.bulkRepository.BulkCopyItems(ctx, defaultList.Id, items, creds.ActorIdentity); err != nil {
			return err
		}
	}

	if err := uc.bulkRepository.BulkDeleteItems(ctx, listId, itemIds(items)); err != nil {
		return err
	}
	return uc.listRepository.DeleteList(ctx, listId)
}
