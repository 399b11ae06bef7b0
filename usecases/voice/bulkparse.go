package voice

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cartfulapp/cartful-backend/models"
)

// Segment separators of a multi-item utterance: commas and the conjunction
// "and", both of which speech produces between enumerated items.
var segmentSeparator = regexp.MustCompile(`,|\band\b`)

// ParseBulkEntries splits a transcript into candidate item entries. Each
// segment is parsed as "[quantity] [unit] text" or "text [quantity] [unit]";
// segments with no text left after parsing are dropped. Quantity defaults
// to 1.
func ParseBulkEntries(transcript string) []models.BulkItemEntry {
	segments := segmentSeparator.Split(transcript, -1)

	var entries []models.BulkItemEntry
	for _, segment := range segments {
		if entry, ok := parseEntry(segment); ok {
			entries = append(entries, entry)
		}
	}
	return entries
}

func parseEntry(segment string) (models.BulkItemEntry, bool) {
	tokens := strings.Fields(segment)
	if len(tokens) == 0 {
		return models.BulkItemEntry{}, false
	}

	entry := models.BulkItemEntry{Quantity: 1}

	// Leading "[quantity] [unit]" prefix.
	if quantity, ok := parseQuantity(tokens[0]); ok {
		entry.Quantity = quantity
		tokens = tokens[1:]
		if len(tokens) > 0 && isKnownUnit(tokens[0]) {
			entry.Unit = NormalizeUnit(tokens[0])
			tokens = tokens[1:]
		}
	} else if len(tokens) >= 2 {
		// Trailing "[quantity] [unit]" or bare trailing quantity.
		last := len(tokens) - 1
		if isKnownUnit(tokens[last]) && len(tokens) >= 3 {
			if quantity, ok := parseQuantity(tokens[last-1]); ok {
				entry.Quantity = quantity
				entry.Unit = NormalizeUnit(tokens[last])
				tokens = tokens[:last-1]
			}
		} else if quantity, ok := parseQuantity(tokens[last]); ok {
			entry.Quantity = quantity
			tokens = tokens[:last]
		}
	}

	entry.Text = strings.TrimSpace(strings.Join(tokens, " "))
	if entry.Text == "" {
		return models.BulkItemEntry{}, false
	}
	return entry, true
}

func parseQuantity(token string) (float64, bool) {
	quantity, err := strconv.ParseFloat(token, 64)
	if err != nil || quantity <= 0 {
		return 0, false
	}
	return quantity, true
}

// MaybeOverrideBulk compensates for the upstream interpreter collapsing a
// multi-item utterance into a single add_item: when the transcript splits
// into at least two valid entries, the intent is overridden to
// add_items_bulk with the heuristic split. With forceBulk the override also
// re-splits a bulk intent the interpreter under-segmented.
func MaybeOverrideBulk(intent models.VoiceIntent, transcript string, forceBulk bool) models.VoiceIntent {
	applies := intent.Type == models.IntentAddItem ||
		(forceBulk && intent.Type == models.IntentAddItemsBulk && len(intent.Items) <= 1)
	if !applies {
		return intent
	}

	entries := ParseBulkEntries(transcript)
	if len(entries) < 2 {
		return intent
	}

	intent.Type = models.IntentAddItemsBulk
	intent.Items = entries
	intent.Text = ""
	return intent
}
