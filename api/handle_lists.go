package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/dto"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/usecases"
)

func handleListLists(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		lists, err := uc.ListUsecase.GetLists(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"lists": pure_utils.Map(lists, dto.AdaptListDto)})
	}
}

func handleGetList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		list, err := uc.ListUsecase.GetListById(c.Request.Context(), c.Param("list_id"))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": dto.AdaptListDto(list)})
	}
}

func handlePostList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.CreateListBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		listId, err := uc.ListUsecase.CreateList(c.Request.Context(), models.CreateListInput{
			Name:      body.Name,
			IsDefault: body.IsDefault,
		})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": listId})
	}
}

func handlePatchList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.UpdateListBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		err := uc.ListUsecase.UpdateList(c.Request.Context(),
			dto.AdaptUpdateListInput(c.Param("list_id"), body))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleMoveList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body struct {
			Direction string `json:"direction" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}
		direction, ok := models.MoveDirectionFrom(body.Direction)
		if !ok {
			presentError(c, errors.Wrap(models.BadParameterError, "direction must be up or down"))
			return
		}

		moved, err := uc.ListUsecase.MoveList(c.Request.Context(), c.Param("list_id"), direction)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"moved": moved})
	}
}

// handleDeleteList removes the list and its items. With ?keepItems=true the
// items are migrated to the default list first.
func handleDeleteList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		keepItems := c.Query("keepItems") == "true"

		err := uc.BulkUsecase.DeleteListWithItems(c.Request.Context(), c.Param("list_id"), keepItems)
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleEnsureDefaultList(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		list, err := uc.ListUsecase.EnsureDefaultList(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"list": dto.AdaptListDto(list)})
	}
}

func handleBackfillListOrder(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := uc.BackfillUsecase.BackfillListOrder(c.Request.Context())
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
