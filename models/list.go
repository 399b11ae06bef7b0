package models

import "time"

// List is an ordered, shareable collection of items. Exactly one list should
// carry IsDefault in steady state: it is the "Inbox" fallback that receives
// migrated items when another list is deleted with its items kept.
type List struct {
	Id            string
	Name          string
	Order         float64
	IsDefault     bool
	CreatedBy     string
	CreatedByName string
	UpdatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// OrderMissing is set by the decode step when the stored document predates
	// the order field. It is a signal to the backfill engine and is never
	// persisted.
	OrderMissing bool
}

type CreateListInput struct {
	Name      string
	IsDefault bool
}

// UpdateListInput is a partial patch: nil fields are left untouched in the
// stored document.
type UpdateListInput struct {
	Id        string
	Name      *string
	Order     *float64
	IsDefault *bool
}

type MoveDirection string

const (
	MoveDirectionUp   MoveDirection = "up"
	MoveDirectionDown MoveDirection = "down"
)

func MoveDirectionFrom(s string) (MoveDirection, bool) {
	switch MoveDirection(s) {
	case MoveDirectionUp, MoveDirectionDown:
		return MoveDirection(s), true
	}
	return "", false
}
