package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cartfulapp/cartful-backend/mocks"
	"github.com/cartfulapp/cartful-backend/models"
)

type subscriptionHarness struct {
	listRepo *mocks.ListRepository
	itemRepo *mocks.ItemRepository
	bulkRepo *mocks.BulkRepository
	usecase  *SubscriptionUsecase
}

func newSubscriptionHarness() subscriptionHarness {
	h := subscriptionHarness{
		listRepo: new(mocks.ListRepository),
		itemRepo: new(mocks.ItemRepository),
		bulkRepo: new(mocks.BulkRepository),
	}
	backfill := NewBackfillUsecase(h.listRepo, h.itemRepo, h.bulkRepo)
	h.usecase = NewSubscriptionUsecase(h.listRepo, h.itemRepo, backfill)
	return h
}

func TestSwitchItemsTearsDownThePreviousSubscription(t *testing.T) {
	h := newSubscriptionHarness()

	firstCancelled := false
	h.itemRepo.On("SubscribeItems", mock.Anything, "list-1", mock.Anything).
		Return(func() { firstCancelled = true }).Once()
	h.itemRepo.On("SubscribeItems", mock.Anything, "list-2", mock.Anything).
		Return(func() {}).Once()

	h.usecase.SwitchItems(t.Context(), "list-1", func([]models.Item) {})
	assert.False(t, firstCancelled)

	h.usecase.SwitchItems(t.Context(), "list-2", func([]models.Item) {})
	assert.True(t, firstCancelled, "switching lists must cancel the previous listener")

	h.itemRepo.AssertExpectations(t)
}

func TestUnsubscribeItemsIsIdempotent(t *testing.T) {
	h := newSubscriptionHarness()

	cancelled := 0
	h.itemRepo.On("SubscribeItems", mock.Anything, "list-1", mock.Anything).
		Return(func() { cancelled++ }).Once()

	h.usecase.SwitchItems(t.Context(), "list-1", func([]models.Item) {})
	h.usecase.UnsubscribeItems()
	h.usecase.UnsubscribeItems()

	assert.Equal(t, 1, cancelled)
}

func TestSubscribeListsForwardsSnapshots(t *testing.T) {
	h := newSubscriptionHarness()

	var captured func([]models.List)
	h.listRepo.On("SubscribeLists", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(func([]models.List))
		}).
		Return(func() {})

	var received []models.List
	h.usecase.SubscribeLists(t.Context(), func(lists []models.List) { received = lists })

	require.NotNil(t, captured)
	captured([]models.List{{Id: "list-1", Order: 1}})

	assert.Len(t, received, 1)
}

func TestSubscribeListsTriggersBackfillForLegacySnapshots(t *testing.T) {
	h := newSubscriptionHarness()

	var captured func([]models.List)
	h.listRepo.On("SubscribeLists", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(func([]models.List))
		}).
		Return(func() {})

	legacy := models.List{Id: "list-1", CreatedAt: time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), OrderMissing: true}
	h.listRepo.On("AllLists", mock.Anything).Return([]models.List{legacy}, nil)

	done := make(chan struct{})
	h.bulkRepo.On("BulkSetListOrders", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { close(done) }).
		Return(nil)

	h.usecase.SubscribeLists(authenticatedContext(t), func([]models.List) {})
	require.NotNil(t, captured)
	captured([]models.List{legacy})

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("expected the legacy snapshot to trigger a list order backfill")
	}
}

func TestSubscribeListsSkipsBackfillWhenUnauthenticated(t *testing.T) {
	h := newSubscriptionHarness()

	var captured func([]models.List)
	h.listRepo.On("SubscribeLists", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).(func([]models.List))
		}).
		Return(func() {})

	h.usecase.SubscribeLists(t.Context(), func([]models.List) {})
	require.NotNil(t, captured)
	captured([]models.List{{Id: "list-1", OrderMissing: true}})

	time.Sleep(50 * time.Millisecond)
	h.listRepo.AssertNotCalled(t, "AllLists", mock.Anything)
}
