package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type BulkRepository struct {
	mock.Mock
}

func (b *BulkRepository) BulkSetItemsChecked(ctx context.Context, listId string, itemIds []string,
	checked bool, updater models.Identity,
) error {
	args := b.Called(ctx, listId, itemIds, checked, updater)
	return args.Error(0)
}

func (b *BulkRepository) BulkDeleteItems(ctx context.Context, listId string, itemIds []string) error {
	args := b.Called(ctx, listId, itemIds)
	return args.Error(0)
}

func (b *BulkRepository) BulkCopyItems(ctx context.Context, targetListId string, items []models.Item,
	updater models.Identity,
) error {
	args := b.Called(ctx, targetListId, items, updater)
	return args.Error(0)
}

func (b *BulkRepository) BulkSetListOrders(ctx context.Context, assignments []models.OrderAssignment) error {
	args := b.Called(ctx, assignments)
	return args.Error(0)
}

func (b *BulkRepository) BulkSetItemOrders(ctx context.Context, listId string, assignments []models.OrderAssignment) error {
	args := b.Called(ctx, listId, assignments)
	return args.Error(0)
}
