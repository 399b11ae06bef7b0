package fsmodels

import (
	"time"

	"github.com/cartfulapp/cartful-backend/models"
)

const (
	FieldName          = "name"
	FieldOrder         = "order"
	FieldIsDefault     = "isDefault"
	FieldChecked       = "checked"
	FieldText          = "text"
	FieldQuantity      = "quantity"
	FieldUnit          = "unit"
	FieldCreatedBy     = "createdBy"
	FieldCreatedByName = "createdByName"
	FieldUpdatedByName = "updatedByName"
	FieldCreatedAt     = "createdAt"
	FieldUpdatedAt     = "updatedAt"
)

// AdaptList decodes a stored list document. A document missing the order
// field decodes with an order synthesized from createdAt and OrderMissing set,
// so legacy records keep a stable position until the backfill engine assigns
// them a real key.
func AdaptList(id string, data map[string]any) models.List {
	createdAt := fieldTime(data, FieldCreatedAt)

	order, hasOrder := fieldFloat(data, FieldOrder)
	if !hasOrder {
		order = float64(createdAt.UnixMilli())
	}

	return models.List{
		Id:            id,
		Name:          fieldString(data, FieldName),
		Order:         order,
		IsDefault:     fieldBool(data, FieldIsDefault),
		CreatedBy:     fieldString(data, FieldCreatedBy),
		CreatedByName: fieldString(data, FieldCreatedByName),
		UpdatedByName: fieldString(data, FieldUpdatedByName),
		CreatedAt:     createdAt,
		UpdatedAt:     fieldTime(data, FieldUpdatedAt),
		OrderMissing:  !hasOrder,
	}
}

// EncodeNewList builds the full document for a freshly created list. The
// decode-only flags never appear here.
func EncodeNewList(input models.CreateListInput, creator models.Identity, order float64, now time.Time) map[string]any {
	return map[string]any{
		FieldName:          input.Name,
		FieldOrder:         order,
		FieldIsDefault:     input.IsDefault,
		FieldCreatedBy:     creator.UserId,
		FieldCreatedByName: creator.Name(),
		FieldUpdatedByName: creator.Name(),
		FieldCreatedAt:     now,
		FieldUpdatedAt:     now,
	}
}
