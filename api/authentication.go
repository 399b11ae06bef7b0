package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/utils"
)

type firebaseTokenVerifier interface {
	VerifyFirebaseIDToken(ctx context.Context, idToken string) (models.Identity, error)
}

type Authentication struct {
	verifier firebaseTokenVerifier
}

func NewAuthentication(verifier firebaseTokenVerifier) Authentication {
	return Authentication{verifier: verifier}
}

// Middleware verifies the bearer token and stores the caller's credentials in
// the request context. Every route behind it can assume an authenticated
// actor identity.
func (a Authentication) Middleware(c *gin.Context) {
	idToken, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing bearer token"})
		return
	}

	identity, err := a.verifier.VerifyFirebaseIDToken(c.Request.Context(), idToken)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid token"})
		return
	}

	creds := models.Credentials{ActorIdentity: identity}
	ctx := context.WithValue(c.Request.Context(), utils.ContextKeyCredentials, creds)
	c.Request = c.Request.WithContext(ctx)
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, prefix))
	return token, token != ""
}
