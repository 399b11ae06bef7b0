package models

import "time"

// Item is a checkable, quantified line of a list. An item belongs to exactly
// one list at a time: item documents live in the owning list's subcollection.
type Item struct {
	Id            string
	Text          string
	Checked       bool
	Quantity      float64
	Unit          string
	Order         float64
	CreatedBy     string
	CreatedByName string
	UpdatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Decode-only signals for the backfill engine, never persisted.
	OrderMissing    bool
	QuantityMissing bool
}

type CreateItemInput struct {
	Text     string
	Quantity float64
	Unit     string
}

// UpdateItemInput is a partial patch: nil fields are left untouched in the
// stored document.
type UpdateItemInput struct {
	ListId   string
	Id       string
	Text     *string
	Checked  *bool
	Quantity *float64
	Unit     *string
	Order    *float64
}

// OrderAssignment is one backfill write: the record with Id receives Order,
// and for items missing a quantity, Quantity=1 as well.
type OrderAssignment struct {
	Id          string
	Order       float64
	SetQuantity bool
	Quantity    float64
}
