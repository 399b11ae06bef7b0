package usecases

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/usecases/ordering"
	"github.com/cartfulapp/cartful-backend/utils"
)

type ItemUsecase struct {
	itemRepository repositories.ItemRepository
	orderKeys      *ordering.Generator
}

func NewItemUsecase(itemRepository repositories.ItemRepository, orderKeys *ordering.Generator) *ItemUsecase {
	return &ItemUsecase{
		itemRepository: itemRepository,
		orderKeys:      orderKeys,
	}
}

func (uc *ItemUsecase) GetItems(ctx context.Context, listId string) ([]models.Item, error) {
	if listId == "" {
		return nil, models.ErrNoListSelected
	}
	return uc.itemRepository.AllItems(ctx, listId)
}

func (uc *ItemUsecase) GetItemById(ctx context.Context, listId, itemId string) (models.Item, error) {
	return uc.itemRepository.GetItemById(ctx, listId, itemId)
}

func (uc *ItemUsecase) CreateItem(ctx context.Context, listId string, input models.CreateItemInput) (string, error) {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return "", models.UnAuthorizedError
	}
	if listId == "" {
		return "", models.ErrNoListSelected
	}
	input.Text = strings.TrimSpace(input.Text)
	if input.Text == "" {
		return "", models.ErrEmptyItemText
	}

	newItemId := uuid.NewString()
	err := uc.itemRepository.CreateItem(ctx, listId, input, creds.ActorIdentity, newItemId, uc.orderKeys.Next())
	if err != nil {
		return "", err
	}
	return newItemId, nil
}

func (uc *ItemUsecase) UpdateItem(ctx context.Context, input models.UpdateItemInput) error {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.UnAuthorizedError
	}
	return uc.itemRepository.UpdateItem(ctx, input, creds.ActorIdentity)
}

func (uc *ItemUsecase) SetItemChecked(ctx context.Context, listId, itemId string, checked bool) error {
	return uc.UpdateItem(ctx, models.UpdateItemInput{ListId: listId, Id: itemId, Checked: &checked})
}

func (uc *ItemUsecase) DeleteItem(ctx context.Context, listId, itemId string) error {
	return uc.itemRepository.DeleteItem(ctx, listId, itemId)
}

// MoveItem swaps the item with its immediate neighbor in sorted order,
// persisting both resulting order keys. It returns false without error when
// the item is already at the edge the move points past.
func (uc *ItemUsecase) MoveItem(ctx context.Context, listId, itemId string, direction models.MoveDirection) (bool, error) {
	items, err := uc.itemRepository.AllItems(ctx, listId)
	if err != nil {
		return false, err
	}

	idx := -1
	for i, item := range items {
		if item.Id == itemId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, models.ErrItemNotFound
	}

	neighbor := idx - 1
	if direction == models.MoveDirectionDown {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(items) {
		return false, nil
	}

	swapped := ordering.SwapOrders(items[idx].Order, items[neighbor].Order, direction)
	if err := uc.UpdateItem(ctx, models.UpdateItemInput{
		ListId: listId, Id: items[idx].Id, Order: &swapped.Current,
	}); err != nil {
		return false, err
	}
	if err := uc.UpdateItem(ctx, models.UpdateItemInput{
		ListId: listId, Id: items[neighbor].Id, Order: &swapped.Target,
	}); err != nil {
		return false, err
	}
	return true, nil
}
