package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/dto"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/usecases"
)

// Live queries are exposed as server-sent events: one "snapshot" event per
// delivery, each superseding the previous one. A slow consumer only ever
// misses intermediate snapshots, never the latest.

func handleStreamLists(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		snapshots := make(chan []dto.List, 1)
		cancel := uc.NewSessionSubscription().SubscribeLists(c.Request.Context(), func(lists []models.List) {
			offerLatest(snapshots, pure_utils.Map(lists, dto.AdaptListDto))
		})
		defer cancel()

		streamSnapshots(c, snapshots)
	}
}

func handleStreamItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		listId := c.Param("list_id")

		snapshots := make(chan []dto.Item, 1)
		session := uc.NewSessionSubscription()
		session.SwitchItems(c.Request.Context(), listId, func(items []models.Item) {
			offerLatest(snapshots, pure_utils.Map(items, dto.AdaptItemDto))
		})
		defer session.UnsubscribeItems()

		streamSnapshots(c, snapshots)
	}
}

func streamSnapshots[T any](c *gin.Context, snapshots <-chan []T) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.WriteHeader(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case payload := <-snapshots:
			c.SSEvent("snapshot", payload)
			c.Writer.Flush()
		}
	}
}

// offerLatest replaces a pending snapshot instead of blocking the listener
// goroutine behind a slow consumer.
func offerLatest[T any](ch chan []T, payload []T) {
	for {
		select {
		case ch <- payload:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
