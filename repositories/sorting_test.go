package repositories

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories/fsmodels"
)

func TestSortListsByOrder(t *testing.T) {
	t.Run("legacy lists without an order field sort on their synthesized key", func(t *testing.T) {
		early := time.Date(2021, 5, 1, 8, 0, 0, 0, time.UTC)
		late := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)

		lists := []models.List{
			fsmodels.AdaptList("list-modern", map[string]any{
				"name":      "Modern",
				"order":     float64(late.UnixMilli()) + 0.5,
				"createdAt": late,
			}),
			fsmodels.AdaptList("list-legacy", map[string]any{
				"name":      "Legacy",
				"createdAt": early,
			}),
		}
		sortListsByOrder(lists)

		assert.Equal(t, "list-legacy", lists[0].Id)
		assert.True(t, lists[0].OrderMissing)
		assert.Equal(t, "list-modern", lists[1].Id)
	})

	t.Run("equal keys tie-break on the document id", func(t *testing.T) {
		lists := []models.List{
			{Id: "list-b", Order: 3},
			{Id: "list-a", Order: 3},
		}
		sortListsByOrder(lists)

		assert.Equal(t, "list-a", lists[0].Id)
		assert.Equal(t, "list-b", lists[1].Id)
	})
}

func TestSortItemsByOrder(t *testing.T) {
	createdAt := time.Date(2022, 6, 1, 10, 0, 0, 0, time.UTC)

	items := []models.Item{
		fsmodels.AdaptItem("item-new", map[string]any{
			"text":      "bread",
			"order":     float64(createdAt.UnixMilli()) + 100,
			"createdAt": createdAt.Add(time.Hour),
		}),
		fsmodels.AdaptItem("item-legacy", map[string]any{
			"text":      "milk",
			"createdAt": createdAt,
		}),
	}
	sortItemsByOrder(items)

	assert.Equal(t, "item-legacy", items[0].Id)
	assert.True(t, items[0].OrderMissing)
	assert.True(t, items[0].QuantityMissing)
	assert.Equal(t, "item-new", items[1].Id)
}
