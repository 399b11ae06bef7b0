package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type SpeechRepository struct {
	mock.Mock
}

func (s *SpeechRepository) Transcribe(ctx context.Context, audio []byte, mimeType string) (string, error) {
	args := s.Called(ctx, audio, mimeType)
	return args.String(0), args.Error(1)
}

func (s *SpeechRepository) Synthesize(ctx context.Context, text string) (models.SpeechAudio, error) {
	args := s.Called(ctx, text)
	return args.Get(0).(models.SpeechAudio), args.Error(1)
}
