package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type VoiceInterpreter struct {
	mock.Mock
}

func (v *VoiceInterpreter) Interpret(ctx context.Context, transcript string, voiceCtx models.VoiceContext,
	pending *models.PendingClarification, forceBulk bool,
) (string, error) {
	args := v.Called(ctx, transcript, voiceCtx, pending, forceBulk)
	return args.String(0), args.Error(1)
}
