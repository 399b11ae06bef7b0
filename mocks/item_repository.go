package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type ItemRepository struct {
	mock.Mock
}

func (i *ItemRepository) AllItems(ctx context.Context, listId string) ([]models.Item, error) {
	args := i.Called(ctx, listId)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (i *ItemRepository) CheckedItems(ctx context.Context, listId string) ([]models.Item, error) {
	args := i.Called(ctx, listId)
	return args.Get(0).([]models.Item), args.Error(1)
}

func (i *ItemRepository) GetItemById(ctx context.Context, listId, itemId string) (models.Item, error) {
	args := i.Called(ctx, listId, itemId)
	return args.Get(0).(models.Item), args.Error(1)
}

func (i *ItemRepository) CreateItem(ctx context.Context, listId string, input models.CreateItemInput,
	creator models.Identity, newItemId string, order float64,
) error {
	args := i.Called(ctx, listId, input, creator, newItemId, order)
	return args.Error(0)
}

func (i *ItemRepository) UpdateItem(ctx context.Context, input models.UpdateItemInput, updater models.Identity) error {
	args := i.Called(ctx, input, updater)
	return args.Error(0)
}

func (i *ItemRepository) DeleteItem(ctx context.Context, listId, itemId string) error {
	args := i.Called(ctx, listId, itemId)
	return args.Error(0)
}

func (i *ItemRepository) SubscribeItems(ctx context.Context, listId string, onChange func([]models.Item)) func() {
	args := i.Called(ctx, listId, onChange)
	return args.Get(0).(func())
}
