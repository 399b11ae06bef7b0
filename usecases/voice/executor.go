package voice

import (
	"context"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/utils"
)

const (
	msgActionFailed   = "Sorry, I couldn't do that."
	msgItemNotFound   = "I couldn't find that item."
	msgListNotFound   = "I couldn't find that list."
	msgListIsDefault  = "I can't delete the default list."
	msgNoListSelected = "Select a list first."
)

type listOperations interface {
	CreateList(ctx context.Context, input models.CreateListInput) (string, error)
	RenameList(ctx context.Context, listId, name string) error
	MoveList(ctx context.Context, listId string, direction models.MoveDirection) (bool, error)
}

type itemOperations interface {
	GetItems(ctx context.Context, listId string) ([]models.Item, error)
	CreateItem(ctx context.Context, listId string, input models.CreateItemInput) (string, error)
	UpdateItem(ctx context.Context, input models.UpdateItemInput) error
	SetItemChecked(ctx context.Context, listId, itemId string, checked bool) error
	DeleteItem(ctx context.Context, listId, itemId string) error
	MoveItem(ctx context.Context, listId, itemId string, direction models.MoveDirection) (bool, error)
}

type bulkOperations interface {
	UpdateAllItems(ctx context.Context, listId string, checked bool) error
	ClearCheckedItems(ctx context.Context, listId string) error
	ClearAllItems(ctx context.Context, listId string) error
	DeleteListWithItems(ctx context.Context, listId string, keepItems bool) error
}

// Executor applies a validated intent to the lists. It never returns an
// error: every failure is downgraded to a spoken response, logged, and the
// intent returned so the client can still act on resolved ids (selection in
// particular lives client side).
type Executor struct {
	listUsecase listOperations
	itemUsecase itemOperations
	bulkUsecase bulkOperations
}

func NewExecutor(listUsecase listOperations, itemUsecase itemOperations, bulkUsecase bulkOperations) *Executor {
	return &Executor{
		listUsecase: listUsecase,
		itemUsecase: itemUsecase,
		bulkUsecase: bulkUsecase,
	}
}

func (e *Executor) Execute(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) (models.VoiceIntent, string) {
	switch intent.Type {
	case models.IntentAddItem:
		return intent, e.addItem(ctx, intent, voiceCtx)
	case models.IntentAddItemsBulk:
		return intent, e.addItemsBulk(ctx, intent, voiceCtx)
	case models.IntentEditItemText:
		return intent, e.itemUpdate(ctx, intent, voiceCtx,
			models.UpdateItemInput{Text: &intent.Text},
			fmt.Sprintf("Renamed to %s.", intent.Text))
	case models.IntentSetQuantity:
		return intent, e.itemUpdate(ctx, intent, voiceCtx,
			models.UpdateItemInput{Quantity: intent.Quantity},
			fmt.Sprintf("Set quantity to %g.", *intent.Quantity))
	case models.IntentSetUnit:
		return intent, e.itemUpdate(ctx, intent, voiceCtx,
			models.UpdateItemInput{Unit: &intent.Unit},
			fmt.Sprintf("Set unit to %s.", intent.Unit))
	case models.IntentCheckItem:
		return intent, e.setChecked(ctx, intent, voiceCtx, true, "Checked.")
	case models.IntentUncheckItem:
		return intent, e.setChecked(ctx, intent, voiceCtx, false, "Unchecked.")
	case models.IntentDeleteItem:
		return intent, e.deleteItem(ctx, intent, voiceCtx)
	case models.IntentMoveItem:
		return intent, e.moveItem(ctx, intent, voiceCtx)
	case models.IntentCheckAll:
		return intent, e.bulk(ctx, func(listId string) error {
			return e.bulkUsecase.UpdateAllItems(ctx, listId, true)
		}, intent, voiceCtx, "Checked everything.")
	case models.IntentUncheckAll:
		return intent, e.bulk(ctx, func(listId string) error {
			return e.bulkUsecase.UpdateAllItems(ctx, listId, false)
		}, intent, voiceCtx, "Unchecked everything.")
	case models.IntentClearChecked:
		return intent, e.bulk(ctx, func(listId string) error {
			return e.bulkUsecase.ClearCheckedItems(ctx, listId)
		}, intent, voiceCtx, "Cleared the checked items.")
	case models.IntentClearAll:
		return intent, e.bulk(ctx, func(listId string) error {
			return e.bulkUsecase.ClearAllItems(ctx, listId)
		}, intent, voiceCtx, "Cleared the list.")
	case models.IntentCreateList:
		return e.createList(ctx, intent)
	case models.IntentSelectList:
		return e.selectList(ctx, intent, voiceCtx)
	case models.IntentRenameList:
		return intent, e.renameList(ctx, intent, voiceCtx)
	case models.IntentDeleteList:
		return intent, e.deleteList(ctx, intent, voiceCtx)
	case models.IntentMoveList:
		return intent, e.moveList(ctx, intent, voiceCtx)
	case models.IntentReadItems:
		return intent, e.readItems(ctx, intent, voiceCtx)
	case models.IntentClarify:
		return intent, intent.Question
	default:
		return intent, msgUnknownCommand
	}
}

// targetListId resolves the list an item intent applies to: an explicit id
// wins, then a name match against the known lists, then the current
// selection. The resolution can come up empty when nothing is selected, so
// every store-facing caller goes through targetList instead.
func (e *Executor) targetListId(intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	if intent.ListId != "" {
		return intent.ListId
	}
	if intent.ListName != "" {
		if list, found := findListByName(voiceCtx.Lists, intent.ListName); found {
			return list.Id
		}
	}
	return voiceCtx.SelectedListId
}

// targetList resolves the target list and refuses to hit the store with an
// empty list id.
func (e *Executor) targetList(intent models.VoiceIntent, voiceCtx models.VoiceContext, op func(listId string) string) string {
	listId := e.targetListId(intent, voiceCtx)
	if listId == "" {
		return msgNoListSelected
	}
	return op(listId)
}

func findListByName(lists []models.List, name string) (models.List, bool) {
	for _, list := range lists {
		if strings.EqualFold(strings.TrimSpace(list.Name), strings.TrimSpace(name)) {
			return list, true
		}
	}
	return models.List{}, false
}

func (e *Executor) addItem(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		input := models.CreateItemInput{Text: intent.Text, Unit: intent.Unit}
		if intent.Quantity != nil {
			input.Quantity = *intent.Quantity
		}
		if _, err := e.itemUsecase.CreateItem(ctx, listId, input); err != nil {
			return e.failure(ctx, "add item", err)
		}
		return fmt.Sprintf("Added %s.", intent.Text)
	})
}

func (e *Executor) addItemsBulk(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		added := 0
		for _, entry := range intent.Items {
			input := models.CreateItemInput{Text: entry.Text, Quantity: entry.Quantity, Unit: entry.Unit}
			if _, err := e.itemUsecase.CreateItem(ctx, listId, input); err != nil {
				utils.LoggerFromContext(ctx).ErrorContext(ctx, "voice bulk add failed",
					"text", entry.Text, "error", err)
				continue
			}
			added++
		}
		switch added {
		case 0:
			return msgActionFailed
		case 1:
			return "Added 1 item."
		default:
			return fmt.Sprintf("Added %d items.", added)
		}
	})
}

func (e *Executor) itemUpdate(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext, patch models.UpdateItemInput, done string) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		patch.ListId = listId
		patch.Id = intent.ItemId
		if err := e.itemUsecase.UpdateItem(ctx, patch); err != nil {
			return e.itemFailure(ctx, "update item", err)
		}
		return done
	})
}

func (e *Executor) setChecked(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext, checked bool, done string) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		if err := e.itemUsecase.SetItemChecked(ctx, listId, intent.ItemId, checked); err != nil {
			return e.itemFailure(ctx, "set item checked", err)
		}
		return done
	})
}

func (e *Executor) deleteItem(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		if err := e.itemUsecase.DeleteItem(ctx, listId, intent.ItemId); err != nil {
			return e.itemFailure(ctx, "delete item", err)
		}
		return "Deleted."
	})
}

func (e *Executor) moveItem(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		moved, err := e.itemUsecase.MoveItem(ctx, listId, intent.ItemId, intent.Direction)
		if err != nil {
			return e.itemFailure(ctx, "move item", err)
		}
		if !moved {
			if intent.Direction == models.MoveDirectionUp {
				return "It's already at the top."
			}
			return "It's already at the bottom."
		}
		return "Moved."
	})
}

func (e *Executor) bulk(ctx context.Context, op func(listId string) error, intent models.VoiceIntent, voiceCtx models.VoiceContext, done string) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		if err := op(listId); err != nil {
			return e.failure(ctx, "bulk operation", err)
		}
		return done
	})
}

func (e *Executor) createList(ctx context.Context, intent models.VoiceIntent) (models.VoiceIntent, string) {
	newListId, err := e.listUsecase.CreateList(ctx, models.CreateListInput{Name: intent.ListName})
	if err != nil {
		return intent, e.failure(ctx, "create list", err)
	}
	intent.ListId = newListId
	return intent, fmt.Sprintf("Created %s.", intent.ListName)
}

// selectList only resolves the name to an id; the selection itself is client
// state, carried back through the intent.
func (e *Executor) selectList(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) (models.VoiceIntent, string) {
	if intent.ListId == "" {
		list, found := findListByName(voiceCtx.Lists, intent.ListName)
		if !found {
			return intent, msgListNotFound
		}
		intent.ListId = list.Id
		intent.ListName = list.Name
	}
	return intent, fmt.Sprintf("Switched to %s.", intent.ListName)
}

func (e *Executor) renameList(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	listId := intent.ListId
	if listId == "" {
		listId = voiceCtx.SelectedListId
	}
	if listId == "" {
		return msgNoListSelected
	}
	if err := e.listUsecase.RenameList(ctx, listId, intent.ListName); err != nil {
		return e.listFailure(ctx, "rename list", err)
	}
	return fmt.Sprintf("Renamed the list to %s.", intent.ListName)
}

func (e *Executor) deleteList(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	listId := intent.ListId
	name := intent.ListName
	if listId == "" {
		list, found := findListByName(voiceCtx.Lists, intent.ListName)
		if !found {
			return msgListNotFound
		}
		listId = list.Id
		name = list.Name
	}
	keepItems := intent.KeepItems != nil && *intent.KeepItems

	if err := e.bulkUsecase.DeleteListWithItems(ctx, listId, keepItems); err != nil {
		if errors.Is(err, models.ErrDefaultListOnly) {
			return msgListIsDefault
		}
		return e.listFailure(ctx, "delete list", err)
	}
	if name == "" {
		return "Deleted the list."
	}
	return fmt.Sprintf("Deleted %s.", name)
}

func (e *Executor) moveList(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	listId := intent.ListId
	if listId == "" {
		if list, found := findListByName(voiceCtx.Lists, intent.ListName); found {
			listId = list.Id
		} else {
			listId = voiceCtx.SelectedListId
		}
	}
	if listId == "" {
		return msgNoListSelected
	}
	moved, err := e.listUsecase.MoveList(ctx, listId, intent.Direction)
	if err != nil {
		return e.listFailure(ctx, "move list", err)
	}
	if !moved {
		if intent.Direction == models.MoveDirectionUp {
			return "It's already at the top."
		}
		return "It's already at the bottom."
	}
	return "Moved."
}

func (e *Executor) readItems(ctx context.Context, intent models.VoiceIntent, voiceCtx models.VoiceContext) string {
	return e.targetList(intent, voiceCtx, func(listId string) string {
		items, err := e.itemUsecase.GetItems(ctx, listId)
		if err != nil {
			return e.listFailure(ctx, "read items", err)
		}
		if len(items) == 0 {
			return "The list is empty."
		}

		spoken := make([]string, 0, len(items))
		for _, item := range items {
			entry := item.Text
			if item.Quantity > 1 || item.Unit != "" {
				entry = fmt.Sprintf("%g %s %s", item.Quantity, item.Unit, item.Text)
				entry = strings.Join(strings.Fields(entry), " ")
			}
			spoken = append(spoken, entry)
		}
		return fmt.Sprintf("You have %d items: %s.", len(items), strings.Join(spoken, ", "))
	})
}

func (e *Executor) failure(ctx context.Context, operation string, err error) string {
	utils.LoggerFromContext(ctx).ErrorContext(ctx, "voice command failed",
		"operation", operation, "error", err)
	return msgActionFailed
}

func (e *Executor) itemFailure(ctx context.Context, operation string, err error) string {
	if errors.Is(err, models.ErrItemNotFound) {
		return msgItemNotFound
	}
	return e.failure(ctx, operation, err)
}

func (e *Executor) listFailure(ctx context.Context, operation string, err error) string {
	if errors.Is(err, models.ErrListNotFound) || errors.Is(err, models.ErrNoListSelected) {
		return msgListNotFound
	}
	return e.failure(ctx, operation, err)
}
