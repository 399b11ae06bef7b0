package voice

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/utils"
)

const msgTranscriptionFailed = "Sorry, I couldn't hear that."

// VoiceUsecase runs the full voice pipeline: decode, transcribe, interpret,
// validate, heuristic bulk override, execute. External-service failures
// downstream of decoding are spoken back as fallback responses instead of
// failing the request; a missing credential is the exception, because the
// deployment is misconfigured rather than the utterance unusable.
type VoiceUsecase struct {
	speechRepository repositories.SpeechRepository
	interpreter      Interpreter
	executor         *Executor
}

func NewVoiceUsecase(
	speechRepository repositories.SpeechRepository,
	interpreter Interpreter,
	executor *Executor,
) *VoiceUsecase {
	return &VoiceUsecase{
		speechRepository: speechRepository,
		interpreter:      interpreter,
		executor:         executor,
	}
}

func (uc *VoiceUsecase) ParseVoiceCommand(ctx context.Context, req models.VoiceCommandRequest) (models.VoiceCommandResult, error) {
	logger := utils.LoggerFromContext(ctx)

	audio, err := base64.StdEncoding.DecodeString(req.AudioBase64)
	if err != nil {
		return models.VoiceCommandResult{},
			errors.Wrap(models.BadParameterError, "audio is not valid base64")
	}
	if len(audio) == 0 {
		return models.VoiceCommandResult{},
			errors.Wrap(models.BadParameterError, "audio is empty")
	}

	transcript, err := uc.transcribe(ctx, audio, req.MimeType)
	if err != nil {
		if errors.Is(err, models.ErrMissingSpeechCredential) {
			return models.VoiceCommandResult{}, err
		}
		logger.ErrorContext(ctx, "transcription failed", "error", err)
		return models.VoiceCommandResult{
			Intent:       models.VoiceIntent{Type: models.IntentUnknown},
			ResponseText: msgTranscriptionFailed,
		}, nil
	}

	raw, err := uc.interpreter.Interpret(ctx, transcript, req.Context, req.PendingClarification, req.ForceBulk)
	if err != nil {
		if errors.Is(err, models.ErrMissingSpeechCredential) {
			return models.VoiceCommandResult{}, err
		}
		logger.ErrorContext(ctx, "intent interpretation failed", "error", err)
		return models.VoiceCommandResult{
			Transcript:   transcript,
			Intent:       models.VoiceIntent{Type: models.IntentUnknown},
			ResponseText: msgUnknownCommand,
		}, nil
	}

	intent, failure := ValidateIntent(raw)
	if failure != "" {
		return models.VoiceCommandResult{
			Transcript:   transcript,
			Intent:       intent,
			ResponseText: failure,
		}, nil
	}

	intent = MaybeOverrideBulk(intent, transcript, req.ForceBulk)

	intent, responseText := uc.executor.Execute(ctx, intent, req.Context)
	return models.VoiceCommandResult{
		Transcript:   transcript,
		Intent:       intent,
		ResponseText: responseText,
	}, nil
}

// transcribe retries a failed transcription once. A missing credential is
// permanent and not retried.
func (uc *VoiceUsecase) transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	return retry.DoWithData(
		func() (string, error) {
			return uc.speechRepository.Transcribe(ctx, audio, mimeType)
		},
		retry.Context(ctx),
		retry.Attempts(2),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return !errors.Is(err, models.ErrMissingSpeechCredential)
		}),
	)
}

// SpeakText synthesizes the given text, truncated to the server-side length
// ceiling so a runaway response cannot produce minutes of audio.
func (uc *VoiceUsecase) SpeakText(ctx context.Context, text string) (models.SpeechAudio, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.SpeechAudio{}, errors.Wrap(models.BadParameterError, "text is empty")
	}
	if runes := []rune(text); len(runes) > models.SpeakTextMaxChars {
		text = string(runes[:models.SpeakTextMaxChars])
	}
	return uc.speechRepository.Synthesize(ctx, text)
}
