package usecases

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cartfulapp/cartful-backend/mocks"
	"github.com/cartfulapp/cartful-backend/models"
)

func TestGetItemsRequiresSelectedList(t *testing.T) {
	repo := new(mocks.ItemRepository)
	uc := NewItemUsecase(repo, newTestGenerator())

	_, err := uc.GetItems(t.Context(), "")

	assert.ErrorIs(t, err, models.ErrNoListSelected)
	repo.AssertNotCalled(t, "AllItems", mock.Anything, mock.Anything)
}

func TestCreateItemRejectsBlankText(t *testing.T) {
	repo := new(mocks.ItemRepository)
	uc := NewItemUsecase(repo, newTestGenerator())

	_, err := uc.CreateItem(authenticatedContext(t), "list-1", models.CreateItemInput{Text: "  "})

	assert.ErrorIs(t, err, models.ErrEmptyItemText)
}

func TestCreateItemTrimsTextAndStampsCreator(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("CreateItem", mock.Anything, "list-1",
		models.CreateItemInput{Text: "milk", Quantity: 2, Unit: "L"}, testIdentity,
		mock.AnythingOfType("string"), mock.AnythingOfType("float64")).
		Return(nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	itemId, err := uc.CreateItem(authenticatedContext(t), "list-1",
		models.CreateItemInput{Text: "  milk  ", Quantity: 2, Unit: "L"})

	require.NoError(t, err)
	assert.NotEmpty(t, itemId)
	repo.AssertExpectations(t)
}

func TestMoveItemDownSwapsOrders(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{
		{Id: "item-1", Order: 3},
		{Id: "item-2", Order: 7},
	}, nil)
	repo.On("UpdateItem", mock.Anything,
		mock.MatchedBy(func(input models.UpdateItemInput) bool {
			return input.Id == "item-1" && input.Order != nil && *input.Order == 7
		}), testIdentity).Return(nil)
	repo.On("UpdateItem", mock.Anything,
		mock.MatchedBy(func(input models.UpdateItemInput) bool {
			return input.Id == "item-2" && input.Order != nil && *input.Order == 3
		}), testIdentity).Return(nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	moved, err := uc.MoveItem(authenticatedContext(t), "list-1", "item-1", models.MoveDirectionDown)

	require.NoError(t, err)
	assert.True(t, moved)
	repo.AssertExpectations(t)
}

func TestMoveItemWithEqualOrdersBreaksTheTie(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{
		{Id: "item-1", Order: 5},
		{Id: "item-2", Order: 5},
	}, nil)
	repo.On("UpdateItem", mock.Anything,
		mock.MatchedBy(func(input models.UpdateItemInput) bool {
			return input.Id == "item-2" && input.Order != nil && *input.Order == 5-0.0001
		}), testIdentity).Return(nil)
	repo.On("UpdateItem", mock.Anything,
		mock.MatchedBy(func(input models.UpdateItemInput) bool {
			return input.Id == "item-1" && input.Order != nil && *input.Order == 5+0.0001
		}), testIdentity).Return(nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	moved, err := uc.MoveItem(authenticatedContext(t), "list-1", "item-2", models.MoveDirectionUp)

	require.NoError(t, err)
	assert.True(t, moved)
	repo.AssertExpectations(t)
}

func TestMoveItemAtBottomEdgeIsNoop(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{
		{Id: "item-1", Order: 3},
		{Id: "item-2", Order: 7},
	}, nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	moved, err := uc.MoveItem(authenticatedContext(t), "list-1", "item-2", models.MoveDirectionDown)

	require.NoError(t, err)
	assert.False(t, moved)
	repo.AssertNotCalled(t, "UpdateItem", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveItemUnknownItem(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("AllItems", mock.Anything, "list-1").Return([]models.Item{}, nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	_, err := uc.MoveItem(authenticatedContext(t), "list-1", "item-9", models.MoveDirectionUp)

	assert.ErrorIs(t, err, models.ErrItemNotFound)
}

func TestSetItemCheckedPatchesOnlyChecked(t *testing.T) {
	repo := new(mocks.ItemRepository)
	repo.On("UpdateItem", mock.Anything,
		mock.MatchedBy(func(input models.UpdateItemInput) bool {
			return input.ListId == "list-1" && input.Id == "item-1" &&
				input.Checked != nil && *input.Checked &&
				input.Text == nil && input.Quantity == nil && input.Order == nil
		}), testIdentity).Return(nil)
	uc := NewItemUsecase(repo, newTestGenerator())

	err := uc.SetItemChecked(authenticatedContext(t), "list-1", "item-1", true)

	require.NoError(t, err)
	repo.AssertExpectations(t)
}
