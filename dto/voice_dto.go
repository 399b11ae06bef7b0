package dto

import (
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
)

type VoiceListContext struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

type VoiceItemContext struct {
	Id       string  `json:"id"`
	Text     string  `json:"text"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Checked  bool    `json:"checked"`
}

// VoiceContext is the client's snapshot of its current state, used by the
// interpreter to resolve spoken names against real record ids.
type VoiceContext struct {
	Lists          []VoiceListContext `json:"lists"`
	Items          []VoiceItemContext `json:"items"`
	SelectedListId string             `json:"selectedListId"`
}

type PendingClarification struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type VoiceCommandBody struct {
	Audio                string                `json:"audio" binding:"required"`
	MimeType             string                `json:"mimeType" binding:"required"`
	Context              VoiceContext          `json:"context"`
	PendingClarification *PendingClarification `json:"pendingClarification"`
	ForceBulk            bool                  `json:"forceBulk"`
}

func AdaptVoiceCommandRequest(body VoiceCommandBody) models.VoiceCommandRequest {
	req := models.VoiceCommandRequest{
		AudioBase64: body.Audio,
		MimeType:    body.MimeType,
		ForceBulk:   body.ForceBulk,
		Context: models.VoiceContext{
			Lists: pure_utils.Map(body.Context.Lists, func(l VoiceListContext) models.List {
				return models.List{Id: l.Id, Name: l.Name}
			}),
			Items: pure_utils.Map(body.Context.Items, func(i VoiceItemContext) models.Item {
				return models.Item{
					Id:       i.Id,
					Text:     i.Text,
					Quantity: i.Quantity,
					Unit:     i.Unit,
					Checked:  i.Checked,
				}
			}),
			SelectedListId: body.Context.SelectedListId,
		},
	}
	if body.PendingClarification != nil {
		req.PendingClarification = &models.PendingClarification{
			Question: body.PendingClarification.Question,
			Options:  body.PendingClarification.Options,
		}
	}
	return req
}

type BulkItemEntry struct {
	Text     string  `json:"text"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit,omitempty"`
}

type VoiceIntent struct {
	Type      string          `json:"type"`
	ItemId    string          `json:"itemId,omitempty"`
	ListId    string          `json:"listId,omitempty"`
	ListName  string          `json:"listName,omitempty"`
	Text      string          `json:"text,omitempty"`
	Quantity  *float64        `json:"quantity,omitempty"`
	Unit      string          `json:"unit,omitempty"`
	Direction string          `json:"direction,omitempty"`
	KeepItems *bool           `json:"keepItems,omitempty"`
	Items     []BulkItemEntry `json:"items,omitempty"`
	Question  string          `json:"question,omitempty"`
	Options   []string        `json:"options,omitempty"`
}

func AdaptVoiceIntentDto(intent models.VoiceIntent) VoiceIntent {
	return VoiceIntent{
		Type:      string(intent.Type),
		ItemId:    intent.ItemId,
		ListId:    intent.ListId,
		ListName:  intent.ListName,
		Text:      intent.Text,
		Quantity:  intent.Quantity,
		Unit:      intent.Unit,
		Direction: string(intent.Direction),
		KeepItems: intent.KeepItems,
		Items: pure_utils.Map(intent.Items, func(e models.BulkItemEntry) BulkItemEntry {
			return BulkItemEntry{Text: e.Text, Quantity: e.Quantity, Unit: e.Unit}
		}),
		Question: intent.Question,
		Options:  intent.Options,
	}
}

type VoiceCommandResponse struct {
	Transcript   string      `json:"transcript"`
	Intent       VoiceIntent `json:"intent"`
	ResponseText string      `json:"responseText"`
}

func AdaptVoiceCommandResponse(result models.VoiceCommandResult) VoiceCommandResponse {
	return VoiceCommandResponse{
		Transcript:   result.Transcript,
		Intent:       AdaptVoiceIntentDto(result.Intent),
		ResponseText: result.ResponseText,
	}
}

type SpeakBody struct {
	Text string `json:"text" binding:"required"`
}

type SpeakResponse struct {
	Audio    string `json:"audio"`
	MimeType string `json:"mimeType"`
}
