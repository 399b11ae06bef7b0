package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type ListRepository struct {
	mock.Mock
}

func (l *ListRepository) AllLists(ctx context.Context) ([]models.List, error) {
	args := l.Called(ctx)
	return args.Get(0).([]models.List), args.Error(1)
}

func (l *ListRepository) GetListById(ctx context.Context, listId string) (models.List, error) {
	args := l.Called(ctx, listId)
	return args.Get(0).(models.List), args.Error(1)
}

func (l *ListRepository) CreateList(ctx context.Context, input models.CreateListInput, creator models.Identity,
	newListId string, order float64,
) error {
	args := l.Called(ctx, input, creator, newListId, order)
	return args.Error(0)
}

func (l *ListRepository) UpdateList(ctx context.Context, input models.UpdateListInput, updater models.Identity) error {
	args := l.Called(ctx, input, updater)
	return args.Error(0)
}

func (l *ListRepository) DeleteList(ctx context.Context, listId string) error {
	args := l.Called(ctx, listId)
	return args.Error(0)
}

func (l *ListRepository) SubscribeLists(ctx context.Context, onChange func([]models.List)) func() {
	args := l.Called(ctx, onChange)
	return args.Get(0).(func())
}
