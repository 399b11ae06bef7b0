package voice

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cartfulapp/cartful-backend/models"
)

// User-facing failure strings for intents missing required fields. These are
// spoken back to the user; a failed intent is never executed.
const (
	msgUnknownCommand   = "Sorry, I didn't understand that."
	msgNeedItem         = "I need an item."
	msgNeedItemAndDir   = "I need item and direction."
	msgNeedItemAndText  = "I need item and text."
	msgNeedQuantity     = "I need item and quantity."
	msgNeedListName     = "I need a list name."
	msgNeedListAndDir   = "I need list and direction."
	msgNothingToAdd     = "I didn't catch what to add."
	msgNeedClarifyQuery = "I'm not sure what to ask."
)

// ValidateIntent turns the interpreter's raw JSON into a typed intent. Every
// field is independently type-checked before it is trusted: wrong-typed or
// unrecognized values are dropped, an unusable type tag collapses the whole
// intent to unknown. The second return is a user-facing failure message,
// empty when the intent may be executed.
func ValidateIntent(raw string) (models.VoiceIntent, string) {
	if !gjson.Valid(raw) {
		return models.VoiceIntent{Type: models.IntentUnknown}, msgUnknownCommand
	}
	parsed := gjson.Parse(raw)

	intentType, ok := models.IntentTypeFrom(stringField(parsed, "type"))
	if !ok {
		return models.VoiceIntent{Type: models.IntentUnknown}, msgUnknownCommand
	}

	intent := models.VoiceIntent{
		Type:     intentType,
		ItemId:   stringField(parsed, "itemId"),
		ListId:   stringField(parsed, "listId"),
		ListName: stringField(parsed, "listName"),
		Text:     strings.TrimSpace(stringField(parsed, "text")),
		Unit:     NormalizeUnit(stringField(parsed, "unit")),
		Question: stringField(parsed, "question"),
		Options:  stringSliceField(parsed, "options"),
		Items:    bulkItemsField(parsed),
	}
	if quantity := parsed.Get("quantity"); quantity.Type == gjson.Number {
		value := quantity.Num
		intent.Quantity = &value
	}
	if keep := parsed.Get("keepItems"); keep.IsBool() {
		value := keep.Bool()
		intent.KeepItems = &value
	}
	if direction, ok := models.MoveDirectionFrom(stringField(parsed, "direction")); ok {
		intent.Direction = direction
	}

	return intent, requiredFieldsFailure(intent)
}

func requiredFieldsFailure(intent models.VoiceIntent) string {
	switch intent.Type {
	case models.IntentUnknown:
		return msgUnknownCommand
	case models.IntentAddItem:
		if intent.Text == "" {
			return msgNothingToAdd
		}
	case models.IntentAddItemsBulk:
		if len(intent.Items) == 0 {
			return msgNothingToAdd
		}
	case models.IntentEditItemText:
		if intent.ItemId == "" || intent.Text == "" {
			return msgNeedItemAndText
		}
	case models.IntentSetQuantity:
		if intent.ItemId == "" || intent.Quantity == nil || *intent.Quantity <= 0 {
			return msgNeedQuantity
		}
	case models.IntentSetUnit, models.IntentCheckItem, models.IntentUncheckItem, models.IntentDeleteItem:
		if intent.ItemId == "" {
			return msgNeedItem
		}
	case models.IntentMoveItem:
		if intent.ItemId == "" || intent.Direction == "" {
			return msgNeedItemAndDir
		}
	case models.IntentCreateList, models.IntentSelectList, models.IntentRenameList:
		if intent.ListName == "" {
			return msgNeedListName
		}
	case models.IntentDeleteList:
		if intent.ListId == "" && intent.ListName == "" {
			return msgNeedListName
		}
	case models.IntentMoveList:
		if (intent.ListId == "" && intent.ListName == "") || intent.Direction == "" {
			return msgNeedListAndDir
		}
	case models.IntentClarify:
		if intent.Question == "" {
			return msgNeedClarifyQuery
		}
	}
	return ""
}

func stringField(parsed gjson.Result, key string) string {
	if value := parsed.Get(key); value.Type == gjson.String {
		return value.Str
	}
	return ""
}

func stringSliceField(parsed gjson.Result, key string) []string {
	value := parsed.Get(key)
	if !value.IsArray() {
		return nil
	}
	var out []string
	for _, element := range value.Array() {
		if element.Type == gjson.String && element.Str != "" {
			out = append(out, element.Str)
		}
	}
	return out
}

func bulkItemsField(parsed gjson.Result) []models.BulkItemEntry {
	value := parsed.Get("items")
	if !value.IsArray() {
		return nil
	}
	var entries []models.BulkItemEntry
	for _, element := range value.Array() {
		text := strings.TrimSpace(stringField(element, "text"))
		if text == "" {
			continue
		}
		entry := models.BulkItemEntry{Text: text, Quantity: 1}
		if quantity := element.Get("quantity"); quantity.Type == gjson.Number && quantity.Num > 0 {
			entry.Quantity = quantity.Num
		}
		entry.Unit = NormalizeUnit(stringField(element, "unit"))
		entries = append(entries, entry)
	}
	return entries
}
