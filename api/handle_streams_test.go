package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cartfulapp/cartful-backend/mocks"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/usecases"
)

func streamTestUsecases(listRepo *mocks.ListRepository, itemRepo *mocks.ItemRepository) usecases.Usecases {
	bulkRepo := new(mocks.BulkRepository)
	return usecases.Usecases{
		Repositories: repositories.Repositories{
			ListRepository: listRepo,
			ItemRepository: itemRepo,
			BulkRepository: bulkRepo,
		},
		BackfillUsecase: usecases.NewBackfillUsecase(listRepo, itemRepo, bulkRepo),
	}
}

func TestStreamListsDeliversSnapshots(t *testing.T) {
	listRepo := new(mocks.ListRepository)
	itemRepo := new(mocks.ItemRepository)

	subscribed := make(chan func([]models.List), 1)
	canceled := make(chan struct{})
	listRepo.On("SubscribeLists", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			subscribed <- args.Get(1).(func([]models.List))
		}).
		Return(func() { close(canceled) })

	gin.SetMode(gin.ReleaseMode)
	w := httptest.NewRecorder()
	_, e := gin.CreateTestContext(w)
	e.GET("/lists/subscribe", handleStreamLists(streamTestUsecases(listRepo, itemRepo)))

	ctx, cancelRequest := context.WithCancel(context.Background())
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/lists/subscribe", nil)

	done := make(chan struct{})
	go func() {
		e.ServeHTTP(w, req)
		close(done)
	}()

	var onChange func([]models.List)
	select {
	case onChange = <-subscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was never started")
	}

	onChange([]models.List{{Id: "list-1", Name: "Groceries", Order: 1}})
	time.Sleep(50 * time.Millisecond)
	cancelRequest()
	<-done

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "event:snapshot")
	assert.Contains(t, w.Body.String(), "Groceries")

	select {
	case <-canceled:
	default:
		t.Fatal("listener was not released on disconnect")
	}
}

func TestStreamItemsSubscribesToTheRequestedList(t *testing.T) {
	listRepo := new(mocks.ListRepository)
	itemRepo := new(mocks.ItemRepository)

	subscribed := make(chan func([]models.Item), 1)
	canceled := make(chan struct{})
	itemRepo.On("SubscribeItems", mock.Anything, "list-1", mock.Anything).
		Run(func(args mock.Arguments) {
			subscribed <- args.Get(2).(func([]models.Item))
		}).
		Return(func() { close(canceled) })

	gin.SetMode(gin.ReleaseMode)
	w := httptest.NewRecorder()
	_, e := gin.CreateTestContext(w)
	e.GET("/lists/:list_id/items/subscribe", handleStreamItems(streamTestUsecases(listRepo, itemRepo)))

	ctx, cancelRequest := context.WithCancel(context.Background())
	req, _ := http.NewRequestWithContext(ctx, http.MethodGet, "/lists/list-1/items/subscribe", nil)

	done := make(chan struct{})
	go func() {
		e.ServeHTTP(w, req)
		close(done)
	}()

	var onChange func([]models.Item)
	select {
	case onChange = <-subscribed:
	case <-time.After(2 * time.Second):
		t.Fatal("subscription was never started")
	}

	onChange([]models.Item{{Id: "item-1", Text: "milk", Quantity: 2, Unit: "L"}})
	time.Sleep(50 * time.Millisecond)
	cancelRequest()
	<-done

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "milk")

	select {
	case <-canceled:
	default:
		t.Fatal("listener was not released on disconnect")
	}
}
