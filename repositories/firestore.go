package repositories

import (
	"cloud.google.com/go/firestore"
	"github.com/cockroachdb/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Collection layout: lists/{listId} with items nested under
// lists/{listId}/items/{itemId}, so item ids are scoped to their owning list.
const (
	CollectionLists = "lists"
	CollectionItems = "items"
)

func listsCol(client *firestore.Client) *firestore.CollectionRef {
	return client.Collection(CollectionLists)
}

func listDoc(client *firestore.Client, listId string) *firestore.DocumentRef {
	return listsCol(client).Doc(listId)
}

func itemsCol(client *firestore.Client, listId string) *firestore.CollectionRef {
	return listDoc(client, listId).Collection(CollectionItems)
}

func itemDoc(client *firestore.Client, listId, itemId string) *firestore.DocumentRef {
	return itemsCol(client, listId).Doc(itemId)
}

// adaptFirestoreError maps the store's not-found code onto the models error
// taxonomy and leaves every other store error untouched for the caller.
func adaptFirestoreError(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return errors.WithDetail(notFound, err.Error())
	}
	return err
}
