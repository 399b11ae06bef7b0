package api

import (
	limits "github.com/gin-contrib/size"
	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/usecases"
)

// Voice clips arrive base64-encoded in the JSON body; 10MB covers about a
// minute of webm audio with encoding overhead.
const maxVoiceRequestSize = 10 * 1024 * 1024

func addRoutes(r *gin.Engine, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe())

	router := r.Use(auth.Middleware)

	router.GET("/lists", handleListLists(uc))
	router.POST("/lists", handlePostList(uc))
	router.GET("/lists/subscribe", handleStreamLists(uc))
	router.POST("/lists/default", handleEnsureDefaultList(uc))
	router.POST("/lists/backfill-order", handleBackfillListOrder(uc))
	router.GET("/lists/:list_id", handleGetList(uc))
	router.PATCH("/lists/:list_id", handlePatchList(uc))
	router.DELETE("/lists/:list_id", handleDeleteList(uc))
	router.POST("/lists/:list_id/move", handleMoveList(uc))

	router.GET("/lists/:list_id/items", handleListItems(uc))
	router.POST("/lists/:list_id/items", handlePostItem(uc))
	router.GET("/lists/:list_id/items/subscribe", handleStreamItems(uc))
	router.POST("/lists/:list_id/items/check-all", handleCheckAllItems(uc))
	router.POST("/lists/:list_id/items/clear-checked", handleClearCheckedItems(uc))
	router.POST("/lists/:list_id/items/clear-all", handleClearAllItems(uc))
	router.POST("/lists/:list_id/items/backfill-order", handleBackfillItemOrder(uc))
	router.PATCH("/lists/:list_id/items/:item_id", handlePatchItem(uc))
	router.DELETE("/lists/:list_id/items/:item_id", handleDeleteItem(uc))
	router.POST("/lists/:list_id/items/:item_id/move", handleMoveItem(uc))
	router.POST("/lists/:list_id/items/:item_id/check", handleCheckItem(uc))

	router.POST("/voice/command", limits.RequestSizeLimiter(maxVoiceRequestSize), handleVoiceCommand(uc))
	router.POST("/voice/speak", handleSpeakText(uc))
}
