package dto

import (
	"time"

	"github.com/cartfulapp/cartful-backend/models"
)

type List struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Order         float64   `json:"order"`
	IsDefault     bool      `json:"isDefault"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	CreatedByName string    `json:"createdByName,omitempty"`
	UpdatedByName string    `json:"updatedByName,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func AdaptListDto(list models.List) List {
	return List{
		Id:            list.Id,
		Name:          list.Name,
		Order:         list.Order,
		IsDefault:     list.IsDefault,
		CreatedBy:     list.CreatedBy,
		CreatedByName: list.CreatedByName,
		UpdatedByName: list.UpdatedByName,
		CreatedAt:     list.CreatedAt,
		UpdatedAt:     list.UpdatedAt,
	}
}

type CreateListBody struct {
	Name      string `json:"name" binding:"required"`
	IsDefault bool   `json:"isDefault"`
}

type UpdateListBody struct {
	Name      *string  `json:"name"`
	Order     *float64 `json:"order"`
	IsDefault *bool    `json:"isDefault"`
}

func AdaptUpdateListInput(listId string, body UpdateListBody) models.UpdateListInput {
	return models.UpdateListInput{
		Id:        listId,
		Name:      body.Name,
		Order:     body.Order,
		IsDefault: body.IsDefault,
	}
}
