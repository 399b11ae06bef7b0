package infra

import "google.golang.org/genai"

type LlmProviderType string

const (
	LlmProviderTypeOpenAI   LlmProviderType = "openai"
	LlmProviderTypeAIStudio LlmProviderType = "aistudio"
)

// VoiceAgentConfiguration configures the LLM provider used to turn transcripts
// into structured intents, and the speech models wrapped around it.
type VoiceAgentConfiguration struct {
	ProviderType LlmProviderType
	URL          string
	APIKey       string
	Backend      genai.Backend
	Project      string
	Location     string

	IntentModel        string
	TranscriptionModel string
	TTSModel           string
	TTSVoice           string
}

func (c VoiceAgentConfiguration) HasCredential() bool {
	switch c.ProviderType {
	case LlmProviderTypeAIStudio:
		return c.APIKey != "" || c.Project != ""
	default:
		return c.APIKey != ""
	}
}

// HasSpeechCredential reports whether the Gemini client used for
// transcription and synthesis can authenticate: an API key for the public
// API, or a project for Vertex.
func (c VoiceAgentConfiguration) HasSpeechCredential() bool {
	return c.APIKey != "" || c.Project != ""
}

// ResolvedBackend picks Vertex when a project is configured and the public
// Gemini API otherwise. An explicitly configured backend wins.
func (c VoiceAgentConfiguration) ResolvedBackend() genai.Backend {
	if c.Backend != genai.BackendUnspecified {
		return c.Backend
	}
	if c.Project != "" {
		return genai.BackendVertexAI
	}
	return genai.BackendGeminiAPI
}
