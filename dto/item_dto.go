package dto

import (
	"time"

	"github.com/cartfulapp/cartful-backend/models"
)

type Item struct {
	Id            string    `json:"id"`
	Text          string    `json:"text"`
	Checked       bool      `json:"checked"`
	Quantity      float64   `json:"quantity"`
	Unit          string    `json:"unit,omitempty"`
	Order         float64   `json:"order"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	CreatedByName string    `json:"createdByName,omitempty"`
	UpdatedByName string    `json:"updatedByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func AdaptItemDto(item models.Item) Item {
	return Item{
		Id:            item.Id,
		Text:          item.Text,
		Checked:       item.Checked,
		Quantity:      item.Quantity,
		Unit:          item.Unit,
		Order:         item.Order,
		CreatedBy:     item.CreatedBy,
		CreatedByName: item.CreatedByName,
		UpdatedByName: item.UpdatedByName,
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
	}
}

type CreateItemBody struct {
	Text     string  `json:"text" binding:"required"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
}

type UpdateItemBody struct {
	Text     *string  `json:"text"`
	Checked  *bool    `json:"checked"`
	Quantity *float64 `json:"quantity"`
	Unit     *string  `json:"unit"`
	Order    *float64 `json:"order"`
}

func AdaptUpdateItemInput(listId, itemId string, body UpdateItemBody) models.UpdateItemInput {
	return models.UpdateItemInput{
		ListId:   listId,
		Id:       itemId,
		Text:     body.Text,
		Checked:  body.Checked,
		Quantity: body.Quantity,
		Unit:     body.Unit,
		Order:    body.Order,
	}
}
