package fsmodels

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cartfulapp/cartful-backend/models"
)

func TestAdaptList(t *testing.T) {
	createdAt := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("complete document decodes without flags", func(t *testing.T) {
		list := AdaptList("list-1", map[string]any{
			"name":          "Groceries",
			"order":         42.5,
			"isDefault":     true,
			"createdBy":     "user-1",
			"createdByName": "Ada",
			"updatedByName": "Ada",
			"createdAt":     createdAt,
			"updatedAt":     createdAt,
		})

		assert.Equal(t, "list-1", list.Id)
		assert.Equal(t, "Groceries", list.Name)
		assert.Equal(t, 42.5, list.Order)
		assert.True(t, list.IsDefault)
		assert.False(t, list.OrderMissing)
	})

	t.Run("missing order synthesizes from createdAt and flags the record", func(t *testing.T) {
		list := AdaptList("list-2", map[string]any{
			"name":      "Legacy",
			"createdAt": createdAt,
		})

		assert.Equal(t, float64(createdAt.UnixMilli()), list.Order)
		assert.True(t, list.OrderMissing)
	})

	t.Run("integer order coerces to float", func(t *testing.T) {
		list := AdaptList("list-3", map[string]any{
			"name":  "Ints",
			"order": int64(7),
		})

		assert.Equal(t, 7.0, list.Order)
		assert.False(t, list.OrderMissing)
	})
}

func TestAdaptItem(t *testing.T) {
	createdAt := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("missing quantity defaults to 1 and flags the record", func(t *testing.T) {
		item := AdaptItem("item-1", map[string]any{
			"text":      "milk",
			"checked":   false,
			"order":     3.0,
			"createdAt": createdAt,
		})

		assert.Equal(t, 1.0, item.Quantity)
		assert.True(t, item.QuantityMissing)
		assert.False(t, item.OrderMissing)
	})

	t.Run("missing order and quantity flag both", func(t *testing.T) {
		item := AdaptItem("item-2", map[string]any{
			"text":      "bread",
			"createdAt": createdAt,
		})

		assert.Equal(t, float64(createdAt.UnixMilli()), item.Order)
		assert.True(t, item.OrderMissing)
		assert.True(t, item.QuantityMissing)
	})
}

func TestEncodeNewItem(t *testing.T) {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	creator := models.Identity{UserId: "user-1", DisplayName: "Ada"}

	t.Run("non-positive quantity normalizes to 1", func(t *testing.T) {
		doc := EncodeNewItem(models.CreateItemInput{Text: "milk"}, creator, 10, now)

		assert.Equal(t, 1.0, doc["quantity"])
		assert.Equal(t, false, doc["checked"])
		assert.Equal(t, "Ada", doc["createdByName"])
	})

	t.Run("decode flags never round-trip into documents", func(t *testing.T) {
		doc := EncodeNewItem(models.CreateItemInput{Text: "milk", Quantity: 2}, creator, 10, now)

		assert.NotContains(t, doc, "orderMissing")
		assert.NotContains(t, doc, "quantityMissing")
	})
}

func TestEncodeMigratedItem(t *testing.T) {
	createdAt := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	item := models.Item{
		Id:            "item-1",
		Text:          "rice",
		Checked:       true,
		Quantity:      2,
		Unit:          "kg",
		Order:         5.5,
		CreatedBy:     "user-1",
		CreatedByName: "Ada",
		CreatedAt:     createdAt,
	}

	doc := EncodeMigratedItem(item, models.Identity{UserId: "user-2", DisplayName: "Grace"}, now)

	assert.Equal(t, "rice", doc["text"])
	assert.Equal(t, true, doc["checked"])
	assert.Equal(t, 2.0, doc["quantity"])
	assert.Equal(t, 5.5, doc["order"])
	assert.Equal(t, createdAt, doc["createdAt"])
	assert.Equal(t, "user-1", doc["createdBy"])
	assert.Equal(t, "Grace", doc["updatedByName"])
	assert.Equal(t, now, doc["updatedAt"])
}
