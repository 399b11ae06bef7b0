package fsmodels

import (
	"time"

	"github.com/cartfulapp/cartful-backend/models"
)

// AdaptItem decodes a stored item document. Records missing order or quantity
// (pre-migration data) decode with synthesized defaults plus the matching
// *Missing flag for the backfill engine.
func AdaptItem(id string, data map[string]any) models.Item {
	createdAt := fieldTime(data, FieldCreatedAt)

	order, hasOrder := fieldFloat(data, FieldOrder)
	if !hasOrder {
		order = float64(createdAt.UnixMilli())
	}

	quantity, hasQuantity := fieldFloat(data, FieldQuantity)
	if !hasQuantity {
		quantity = 1
	}

	return models.Item{
		Id:              id,
		Text:            fieldString(data, FieldText),
		Checked:         fieldBool(data, FieldChecked),
		Quantity:        quantity,
		Unit:            fieldString(data, FieldUnit),
		Order:           order,
		CreatedBy:       fieldString(data, FieldCreatedBy),
		CreatedByName:   fieldString(data, FieldCreatedByName),
		UpdatedByName:   fieldString(data, FieldUpdatedByName),
		CreatedAt:       createdAt,
		UpdatedAt:       fieldTime(data, FieldUpdatedAt),
		OrderMissing:    !hasOrder,
		QuantityMissing: !hasQuantity,
	}
}

// EncodeNewItem builds the full document for a freshly created item.
func EncodeNewItem(input models.CreateItemInput, creator models.Identity, order float64, now time.Time) map[string]any {
	quantity := input.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	return map[string]any{
		FieldText:          input.Text,
		FieldChecked:       false,
		FieldQuantity:      quantity,
		FieldUnit:          input.Unit,
		FieldOrder:         order,
		FieldCreatedBy:     creator.UserId,
		FieldCreatedByName: creator.Name(),
		FieldUpdatedByName: creator.Name(),
		FieldCreatedAt:     now,
		FieldUpdatedAt:     now,
	}
}

// EncodeMigratedItem builds the copy of an item moved to another list during a
// delete-with-migration: text, checked state, quantity, unit, order and the
// original creation metadata are preserved, only the updater stamps change.
func EncodeMigratedItem(item models.Item, updater models.Identity, now time.Time) map[string]any {
	return map[string]any{
		FieldText:          item.Text,
		FieldChecked:       item.Checked,
		FieldQuantity:      item.Quantity,
		FieldUnit:          item.Unit,
		FieldOrder:         item.Order,
		FieldCreatedBy:     item.CreatedBy,
		FieldCreatedByName: item.CreatedByName,
		FieldUpdatedByName: updater.Name(),
		FieldCreatedAt:     item.CreatedAt,
		FieldUpdatedAt:     now,
	}
}
