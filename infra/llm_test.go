package infra

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/genai"
)

func TestResolvedBackend(t *testing.T) {
	t.Run("defaults to the public Gemini API", func(t *testing.T) {
		config := VoiceAgentConfiguration{APIKey: "key"}
		assert.Equal(t, genai.BackendGeminiAPI, config.ResolvedBackend())
	})

	t.Run("a configured project selects Vertex", func(t *testing.T) {
		config := VoiceAgentConfiguration{Project: "my-project", Location: "europe-west1"}
		assert.Equal(t, genai.BackendVertexAI, config.ResolvedBackend())
	})

	t.Run("an explicit backend wins over the project heuristic", func(t *testing.T) {
		config := VoiceAgentConfiguration{Project: "my-project", Backend: genai.BackendGeminiAPI}
		assert.Equal(t, genai.BackendGeminiAPI, config.ResolvedBackend())
	})
}

func TestHasSpeechCredential(t *testing.T) {
	assert.False(t, VoiceAgentConfiguration{}.HasSpeechCredential())
	assert.True(t, VoiceAgentConfiguration{APIKey: "key"}.HasSpeechCredential())
	assert.True(t, VoiceAgentConfiguration{Project: "my-project"}.HasSpeechCredential())
}

func TestInitializeGenaiClientWithoutCredential(t *testing.T) {
	assert.Nil(t, InitializeGenaiClient(context.Background(), VoiceAgentConfiguration{}))
}
