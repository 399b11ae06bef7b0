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

func handleListItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		items, err := uc.ItemUsecase.GetItems(c.Request.Context(), c.Param("list_id"))
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": pure_utils.Map(items, dto.AdaptItemDto)})
	}
}

func handlePostItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.CreateItemBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		itemId, err := uc.ItemUsecase.CreateItem(c.Request.Context(), c.Param("list_id"),
			models.CreateItemInput{
				Text:     body.Text,
				Quantity: body.Quantity,
				Unit:     body.Unit,
			})
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"id": itemId})
	}
}

func handlePatchItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body dto.UpdateItemBody
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		err := uc.ItemUsecase.UpdateItem(c.Request.Context(),
			dto.AdaptUpdateItemInput(c.Param("list_id"), c.Param("item_id"), body))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleDeleteItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := uc.ItemUsecase.DeleteItem(c.Request.Context(), c.Param("list_id"), c.Param("item_id"))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleMoveItem(uc usecases.Usecases) func(c *gin.Context) {
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

		moved, err := uc.ItemUsecase.MoveItem(c.Request.Context(),
			c.Param("list_id"), c.Param("item_id"), direction)
		if presentError(c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"moved": moved})
	}
}

func handleCheckItem(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body struct {
			Checked *bool `json:"checked" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		err := uc.ItemUsecase.SetItemChecked(c.Request.Context(),
			c.Param("list_id"), c.Param("item_id"), *body.Checked)
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleCheckAllItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		var body struct {
			Checked *bool `json:"checked" binding:"required"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			presentError(c, errors.Wrap(models.BadParameterError, err.Error()))
			return
		}

		err := uc.BulkUsecase.UpdateAllItems(c.Request.Context(), c.Param("list_id"), *body.Checked)
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleClearCheckedItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := uc.BulkUsecase.ClearCheckedItems(c.Request.Context(), c.Param("list_id"))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleClearAllItems(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := uc.BulkUsecase.ClearAllItems(c.Request.Context(), c.Param("list_id"))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleBackfillItemOrder(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		err := uc.BackfillUsecase.BackfillItemOrder(c.Request.Context(), c.Param("list_id"))
		if presentError(c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}
