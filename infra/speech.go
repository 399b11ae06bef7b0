package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"
)

// InitializeGenaiClient builds the Gemini client used for transcription and
// speech synthesis, against the public API or Vertex depending on the
// configuration. With no credential configured it returns nil: the speech
// repository reports the missing credential as a typed error at call time
// instead of failing startup.
func InitializeGenaiClient(ctx context.Context, config VoiceAgentConfiguration) *genai.Client {
	if !config.HasSpeechCredential() {
		return nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:   config.APIKey,
		Backend:  config.ResolvedBackend(),
		Project:  config.Project,
		Location: config.Location,
	})
	if err != nil {
		panic(errors.Wrap(err, "error initializing genai client"))
	}
	return client
}
