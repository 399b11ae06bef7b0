package repositories

import (
	"cmp"
	"slices"

	"github.com/cartfulapp/cartful-backend/models"
)

// Reads and subscriptions never use a Firestore order-by clause: ordering on
// a field also filters on its existence, so documents still missing `order`
// (the legacy records the backfill repairs) would never come back. Sorting
// happens here instead, on the decoded key the adapt layer synthesizes for
// those records. Equal keys fall back to the document id so the result is
// deterministic.
func sortListsByOrder(lists []models.List) {
	slices.SortStableFunc(lists, func(a, b models.List) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Id, b.Id)
	})
}

func sortItemsByOrder(items []models.Item) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.Id, b.Id)
	})
}
