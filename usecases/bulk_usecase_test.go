package usecases

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cartfulapp/cartful-backend/mocks"
	"github.com/cartfulapp/cartful-backend/models"
)

type defaultListResolverMock struct {
	mock.Mock
}

func (m *defaultListResolverMock) EnsureDefaultList(ctx context.Context) (models.List, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.List), args.Error(1)
}

type bulkHarness struct {
	itemRepo     *mocks.ItemRepository
	bulkRepo     *mocks.BulkRepository
	listRepo     *mocks.ListRepository
	defaultLists *defaultListResolverMock
	usecase      *BulkUsecase
}

func newBulkHarness() bulkHarness {
	h := bulkHarness{
		itemRepo:     new(mocks.ItemRepository),
		bulkRepo:     new(mocks.BulkRepository),
		listRepo:     new(mocks.ListRepository),
		defaultLists: new(defaultListResolverMock),
	}
	h.usecase = NewBulkUsecase(h.itemRepo, h.bulkRepo, h.listRepo, h.defaultLists)
	return h
}

func TestUpdateAllItemsChecksEveryItem(t *testing.T) {
	h := newBulkHarness()
	h.itemRepo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{
		{Id: "item-1"}, {Id: "item-2"},
	}, nil)
	h.bulkRepo.On("BulkSetItemsChecked", mock.Anything, "list-1",
		[]string{"item-1", "item-2"}, true, testIdentity).Return(nil)

	err := h.usecase.UpdateAllItems(authenticatedContext(t), "list-1", true)

	require.NoError(t, err)
	h.bulkRepo.AssertExpectations(t)
}

func TestClearCheckedItemsOnlyTargetsCheckedOnes(t *testing.T) {
	h := newBulkHarness()
	h.itemRepo.On("CheckedItems", mock.Anything, "list-1").Return([]models.Item{
		{Id: "item-2", Checked: true},
	}, nil)
	h.bulkRepo.On("BulkDeleteItems", mock.Anything, "list-1", []string{"item-2"}).Return(nil)

	err := h.usecase.ClearCheckedItems(authenticatedContext(t), "list-1")

	require.NoError(t, err)
	h.bulkRepo.AssertExpectations(t)
	h.itemRepo.AssertNotCalled(t, "AllItems", mock.Anything, mock.Anything)
}

func TestDeleteListWithItemsDeletesListLast(t *testing.T) {
	h := newBulkHarness()
	items := []models.Item{{Id: "item-1"}, {Id: "item-2"}}
	h.itemRepo.On("AllItems", mock.Anything, "list-1").Return(items, nil)

	itemsDeleted := false
	h.bulkRepo.On("BulkDeleteItems", mock.Anything, "list-1", []string{"item-1", "item-2"}).
		Run(func(mock.Arguments) { itemsDeleted = true }).
		Return(nil)
	h.listRepo.On("DeleteList", mock.Anything, "list-1").
		Run(func(mock.Arguments) {
			assert.True(t, itemsDeleted, "the list document must only go after its items")
		}).
		Return(nil)

	err := h.usecase.DeleteListWithItems(authenticatedContext(t), "list-1", false)

	require.NoError(t, err)
	h.listRepo.AssertExpectations(t)
	h.defaultLists.AssertNotCalled(t, "EnsureDefaultList", mock.Anything)
}

func TestDeleteListKeepingItemsCopiesToDefaultFirst(t *testing.T) {
	h := newBulkHarness()
	items := []models.Item{{Id: "item-1", Text: "milk"}}
	h.itemRepo.On("AllItems", mock.Anything, "list-2").Return(items, nil)
	h.defaultLists.On("EnsureDefaultList", mock.Anything).
		Return(models.List{Id: "list-default"}, nil)

	copied := false
	h.bulkRepo.On("BulkCopyItems", mock.Anything, "list-default", items, testIdentity).
		Run(func(mock.Arguments) { copied = true }).
		Return(nil)
	h.bulkRepo.On("BulkDeleteItems", mock.Anything, "list-2", []string{"item-1"}).
		Run(func(mock.Arguments) {
			assert.True(t, copied, "items must be copied before the source copies are deleted")
		}).
		Return(nil)
	h.listRepo.On("DeleteList", mock.Anything, "list-2").Return(nil)

	err := h.usecase.DeleteListWithItems(authenticatedContext(t), "list-2", true)

	require.NoError(t, err)
	h.bulkRepo.AssertExpectations(t)
}

func TestDeleteListKeepingItemsRefusesTheDefaultList(t *testing.T) {
	h := newBulkHarness()
	h.itemRepo.On("AllItems", mock.Anything, "list-default").Return([]models.Item{}, nil)
	h.defaultLists.On("EnsureDefaultList", mock.Anything).
		Return(models.List{Id: "list-default"}, nil)

	err := h.usecase.DeleteListWithItems(authenticatedContext(t), "list-default", true)

	assert.ErrorIs(t, err, models.ErrDefaultListOnly)
	h.bulkRepo.AssertNotCalled(t, "BulkDeleteItems", mock.Anything, mock.Anything, mock.Anything)
	h.listRepo.AssertNotCalled(t, "DeleteList", mock.Anything, mock.Anything)
}

func TestDeleteListSurfacesPartialFailure(t *testing.T) {
	h := newBulkHarness()
	h.itemRepo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{{Id: "item-1"}}, nil)
	h.bulkRepo.On("BulkDeleteItems", mock.Anything, "list-1", []string{"item-1"}).
		Return(errors.New("commit failed after chunk 0"))

	err := h.usecase.DeleteListWithItems(authenticatedContext(t), "list-1", false)

	assert.Error(t, err)
	h.listRepo.AssertNotCalled(t, "DeleteList", mock.Anything, mock.Anything)
}

func TestBulkOperationsRequireAuthentication(t *testing.T) {
	h := newBulkHarness()

	err := h.usecase.UpdateAllItems(t.Context(), "list-1", true)
	assert.ErrorIs(t, err, models.UnAuthorizedError)

	err = h.usecase.DeleteListWithItems(t.Context(), "list-1", false)
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}
