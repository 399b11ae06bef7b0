package infra

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/cockroachdb/errors"
)

func InitializeFirestore(ctx context.Context, projectId string) *firestore.Client {
	client, err := firestore.NewClient(ctx, projectId)
	if err != nil {
		panic(errors.Wrap(err, "error initializing firestore client"))
	}
	return client
}
