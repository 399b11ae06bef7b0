package repositories

import (
	"context"

	"github.com/cockroachdb/errors"
	"google.golang.org/genai"

	"github.com/cartfulapp/cartful-backend/models"
)

const transcriptionPrompt = "Transcribe this audio clip verbatim. " +
	"Reply with the transcript only, no commentary."

type SpeechRepository interface {
	Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error)
	Synthesize(ctx context.Context, text string) (models.SpeechAudio, error)
}

// SpeechRepositoryGenai transcribes and synthesizes speech through the Gemini
// API. Both calls are remote suspension points; failures are returned to the
// caller, which decides whether a local fallback applies.
type SpeechRepositoryGenai struct {
	client             *genai.Client
	transcriptionModel string
	ttsModel           string
	voiceName          string
}

func NewSpeechRepositoryGenai(client *genai.Client, transcriptionModel, ttsModel, voiceName string) *SpeechRepositoryGenai {
	return &SpeechRepositoryGenai{
		client:             client,
		transcriptionModel: transcriptionModel,
		ttsModel:           ttsModel,
		voiceName:          voiceName,
	}
}

func (repo *SpeechRepositoryGenai) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	if repo.client == nil {
		return "", models.ErrMissingSpeechCredential
	}

	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromText(transcriptionPrompt),
			genai.NewPartFromBytes(audio, mimeType),
		}, genai.RoleUser),
	}

	resp, err := repo.client.Models.GenerateContent(ctx, repo.transcriptionModel, contents, nil)
	if err != nil {
		return "", errors.Wrap(err, "transcription request failed")
	}
	transcript := resp.Text()
	if transcript == "" {
		return "", models.ErrEmptyTranscript
	}
	return transcript, nil
}

func (repo *SpeechRepositoryGenai) Synthesize(ctx context.Context, text string) (models.SpeechAudio, error) {
	if repo.client == nil {
		return models.SpeechAudio{}, models.ErrMissingSpeechCredential
	}

	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"AUDIO"},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: repo.voiceName},
			},
		},
	}

	resp, err := repo.client.Models.GenerateContent(ctx, repo.ttsModel, genai.Text(text), config)
	if err != nil {
		return models.SpeechAudio{}, errors.Wrap(err, "speech synthesis request failed")
	}

	for _, candidate := range resp.Candidates {
		if candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				return models.SpeechAudio{
					Data:     part.InlineData.Data,
					MimeType: part.InlineData.MIMEType,
				}, nil
			}
		}
	}
	return models.SpeechAudio{}, errors.New("speech synthesis returned no audio")
}
