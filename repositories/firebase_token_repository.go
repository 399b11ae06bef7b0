package repositories

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/cockroachdb/errors"

	"github.com/cartfulapp/cartful-backend/models"
)

type FirebaseTokenRepository struct {
	firebaseClient *auth.Client
}

func NewFirebaseTokenRepository(firebaseClient *auth.Client) *FirebaseTokenRepository {
	return &FirebaseTokenRepository{firebaseClient: firebaseClient}
}

// VerifyFirebaseIDToken verifies a federated sign-in token and extracts the
// stable user id plus the optional display name and email the provider
// exposes.
func (repo *FirebaseTokenRepository) VerifyFirebaseIDToken(ctx context.Context, idToken string) (models.Identity, error) {
	token, err := repo.firebaseClient.VerifyIDToken(ctx, idToken)
	if err != nil {
		return models.Identity{}, errors.Wrap(models.UnAuthorizedError, err.Error())
	}

	identity := models.Identity{UserId: token.Subject}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if identity.UserId == "" {
		return models.Identity{}, errors.Wrap(models.UnAuthorizedError, "token has no subject")
	}
	return identity, nil
}
