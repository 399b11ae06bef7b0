package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/cartfulapp/cartful-backend/models"
)

type FirebaseTokenVerifier struct {
	mock.Mock
}

func (m *FirebaseTokenVerifier) VerifyFirebaseIDToken(ctx context.Context, idToken string) (models.Identity, error) {
	args := m.Called(ctx, idToken)
	return args.Get(0).(models.Identity), args.Error(1)
}
