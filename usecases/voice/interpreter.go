package voice

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/checkmarble/llmberjack"
	"github.com/checkmarble/llmberjack/llms/aistudio"
	"github.com/checkmarble/llmberjack/llms/openai"
	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/infra"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/utils"
)

const interpreterInstruction = `You translate a transcribed voice command for a shared shopping-list app into one JSON object.
Reply with JSON only, no prose and no code fences. Shape:
{"type": "<intent>", "itemId": "", "listId": "", "listName": "", "text": "", "quantity": 0, "unit": "", "direction": "up|down", "keepItems": false, "items": [{"text": "", "quantity": 0, "unit": ""}], "question": "", "options": []}
Valid intents: add_item, add_items_bulk, edit_item_text, set_quantity, set_unit, check_item, uncheck_item, delete_item, move_item, check_all, uncheck_all, clear_checked, clear_all, create_list, select_list, rename_list, delete_list, move_list, read_items, clarify, unknown.
Omit fields that do not apply. Resolve item and list references against the provided context and use their ids. If the command is ambiguous, use "clarify" with a question and options. If it is not a list command at all, use "unknown".`

// Interpreter turns a transcript plus the current state snapshot into the raw
// JSON of a candidate intent. The output is untrusted until it passes
// ValidateIntent.
type Interpreter interface {
	Interpret(ctx context.Context, transcript string, voiceCtx models.VoiceContext,
		pending *models.PendingClarification, forceBulk bool) (string, error)
}

type LlmInterpreter struct {
	config infra.VoiceAgentConfiguration

	mu      sync.Mutex
	adapter *llmberjack.Llmberjack
}

func NewLlmInterpreter(config infra.VoiceAgentConfiguration) *LlmInterpreter {
	return &LlmInterpreter{config: config}
}

func (i *LlmInterpreter) getAdapter() (*llmberjack.Llmberjack, error) {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.adapter != nil {
		return i.adapter, nil
	}
	if !i.config.HasCredential() {
		return nil, models.ErrMissingSpeechCredential
	}

	var provider llmberjack.Llm
	var err error
	switch i.config.ProviderType {
	case infra.LlmProviderTypeOpenAI:
		provider, err = i.createOpenAIProvider()
	case infra.LlmProviderTypeAIStudio:
		provider, err = i.createAIStudioProvider()
	default:
		return nil, errors.Errorf("unsupported provider type: %s", i.config.ProviderType)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LLM provider")
	}

	adapter, err := llmberjack.New(
		llmberjack.WithProvider("voice", provider),
		llmberjack.WithDefaultModel(i.config.IntentModel),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create LLM adapter")
	}

	i.adapter = adapter
	return i.adapter, nil
}

func (i *LlmInterpreter) createOpenAIProvider() (llmberjack.Llm, error) {
	opts := []openai.Opt{}
	if i.config.URL != "" {
		opts = append(opts, openai.WithBaseUrl(i.config.URL))
	}
	if i.config.APIKey != "" {
		opts = append(opts, openai.WithApiKey(i.config.APIKey))
	}
	return openai.New(opts...)
}

func (i *LlmInterpreter) createAIStudioProvider() (llmberjack.Llm, error) {
	opts := []aistudio.Opt{
		aistudio.WithBackend(i.config.ResolvedBackend()),
	}
	if i.config.APIKey != "" {
		opts = append(opts, aistudio.WithApiKey(i.config.APIKey))
	}
	if i.config.Project != "" {
		opts = append(opts, aistudio.WithProject(i.config.Project))
	}
	if i.config.Location != "" {
		opts = append(opts, aistudio.WithLocation(i.config.Location))
	}
	return aistudio.New(opts...)
}

func (i *LlmInterpreter) Interpret(
	ctx context.Context,
	transcript string,
	voiceCtx models.VoiceContext,
	pending *models.PendingClarification,
	forceBulk bool,
) (string, error) {
	adapter, err := i.getAdapter()
	if err != nil {
		return "", err
	}

	prompt := buildInterpreterPrompt(transcript, voiceCtx.Bounded(), pending, forceBulk)
	logger := utils.LoggerFromContext(ctx)
	logger.DebugContext(ctx, "voice interpretation", "prompt", prompt)

	response, err := llmberjack.NewUntypedRequest().
		WithInstruction(interpreterInstruction).
		WithText(llmberjack.RoleUser, prompt).
		Do(ctx, adapter)
	if err != nil {
		return "", errors.Wrap(err, "intent interpretation request failed")
	}

	raw, err := response.Get(0)
	if err != nil {
		return "", errors.Wrap(err, "intent interpretation returned no candidate")
	}
	logger.DebugContext(ctx, "voice interpretation", "response", raw)

	return stripCodeFences(raw), nil
}

func buildInterpreterPrompt(
	transcript string,
	voiceCtx models.VoiceContext,
	pending *models.PendingClarification,
	forceBulk bool,
) string {
	var b strings.Builder

	b.WriteString("Lists:\n")
	for _, list := range voiceCtx.Lists {
		marker := ""
		if list.Id == voiceCtx.SelectedListId {
			marker = " (selected)"
		}
		fmt.Fprintf(&b, "- id=%s name=%q%s\n", list.Id, list.Name, marker)
	}

	b.WriteString("Items of the selected list:\n")
	for _, item := range voiceCtx.Items {
		fmt.Fprintf(&b, "- id=%s text=%q quantity=%g unit=%q checked=%t\n",
			item.Id, item.Text, item.Quantity, item.Unit, item.Checked)
	}

	if pending != nil {
		fmt.Fprintf(&b, "\nYou previously asked: %q", pending.Question)
		if len(pending.Options) > 0 {
			fmt.Fprintf(&b, " with options %q", strings.Join(pending.Options, ", "))
		}
		b.WriteString(". The command below answers that question.\n")
	}
	if forceBulk {
		b.WriteString("\nThe user indicated this command adds several items at once; prefer add_items_bulk.\n")
	}

	fmt.Fprintf(&b, "\nCommand: %q\n", transcript)
	return b.String()
}

// stripCodeFences removes a markdown fence the model may wrap around the JSON
// despite instructions.
func stripCodeFences(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(trimmed, "```")
	return strings.TrimSpace(trimmed)
}
