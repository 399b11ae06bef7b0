package models

// IntentType tags a validated voice command. Anything outside the enumeration
// collapses to IntentUnknown during validation.
type IntentType string

const (
	IntentAddItem      IntentType = "add_item"
	IntentAddItemsBulk IntentType = "add_items_bulk"
	IntentEditItemText IntentType = "edit_item_text"
	IntentSetQuantity  IntentType = "set_quantity"
	IntentSetUnit      IntentType = "set_unit"
	IntentCheckItem    IntentType = "check_item"
	IntentUncheckItem  IntentType = "uncheck_item"
	IntentDeleteItem   IntentType = "delete_item"
	IntentMoveItem     IntentType = "move_item"
	IntentCheckAll     IntentType = "check_all"
	IntentUncheckAll   IntentType = "uncheck_all"
	IntentClearChecked IntentType = "clear_checked"
	IntentClearAll     IntentType = "clear_all"
	IntentCreateList   IntentType = "create_list"
	IntentSelectList   IntentType = "select_list"
	IntentRenameList   IntentType = "rename_list"
	IntentDeleteList   IntentType = "delete_list"
	IntentMoveList     IntentType = "move_list"
	IntentReadItems    IntentType = "read_items"
	IntentClarify      IntentType = "clarify"
	IntentUnknown      IntentType = "unknown"
)

func IntentTypeFrom(s string) (IntentType, bool) {
	switch t := IntentType(s); t {
	case IntentAddItem, IntentAddItemsBulk, IntentEditItemText, IntentSetQuantity,
		IntentSetUnit, IntentCheckItem, IntentUncheckItem, IntentDeleteItem,
		IntentMoveItem, IntentCheckAll, IntentUncheckAll, IntentClearChecked,
		IntentClearAll, IntentCreateList, IntentSelectList, IntentRenameList,
		IntentDeleteList, IntentMoveList, IntentReadItems, IntentClarify,
		IntentUnknown:
		return t, true
	}
	return IntentUnknown, false
}

// BulkItemEntry is one entry of an add_items_bulk intent.
type BulkItemEntry struct {
	Text     string
	Quantity float64
	Unit     string
}

// VoiceIntent is the transient, validated representation of a voice command.
// It is consumed exactly once by the executor and never persisted.
type VoiceIntent struct {
	Type      IntentType
	ItemId    string
	ListId    string
	ListName  string
	Text      string
	Quantity  *float64
	Unit      string
	Direction MoveDirection
	KeepItems *bool
	Items     []BulkItemEntry

	// Clarification fields, set when Type is IntentClarify.
	Question string
	Options  []string
}

// Context snapshot bounds, capping the interpreter prompt size.
const (
	VoiceContextMaxLists = 100
	VoiceContextMaxItems = 200
)

// VoiceContext is the snapshot of current state handed to the interpreter so
// it can resolve names against real records.
type VoiceContext struct {
	Lists          []List
	Items          []Item
	SelectedListId string
}

// Bounded returns a copy of the context truncated to the prompt size caps.
func (c VoiceContext) Bounded() VoiceContext {
	if len(c.Lists) > VoiceContextMaxLists {
		c.Lists = c.Lists[:VoiceContextMaxLists]
	}
	if len(c.Items) > VoiceContextMaxItems {
		c.Items = c.Items[:VoiceContextMaxItems]
	}
	return c
}

// PendingClarification carries the question asked on the previous turn so the
// interpreter can resolve the user's answer against it.
type PendingClarification struct {
	Question string
	Options  []string
}

type VoiceCommandRequest struct {
	AudioBase64          string
	MimeType             string
	Context              VoiceContext
	PendingClarification *PendingClarification
	ForceBulk            bool
}

type VoiceCommandResult struct {
	Transcript   string
	Intent       VoiceIntent
	ResponseText string
}
