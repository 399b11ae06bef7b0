package repositories

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/cockroachdb/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories/clock"
	"github.com/cartfulapp/cartful-backend/repositories/fsmodels"
	"github.com/cartfulapp/cartful-backend/utils"
)

type ListRepository interface {
	AllLists(ctx context.Context) ([]models.List, error)
	GetListById(ctx context.Context, listId string) (models.List, error)
	CreateList(ctx context.Context, input models.CreateListInput, creator models.Identity,
		newListId string, order float64) error
	UpdateList(ctx context.Context, input models.UpdateListInput, updater models.Identity) error
	DeleteList(ctx context.Context, listId string) error
	SubscribeLists(ctx context.Context, onChange func([]models.List)) func()
}

type ListRepositoryFirestore struct {
	client *firestore.Client
	clock  clock.Clock
}

func NewListRepositoryFirestore(client *firestore.Client, c clock.Clock) *ListRepositoryFirestore {
	return &ListRepositoryFirestore{client: client, clock: c}
}

func (repo *ListRepositoryFirestore) AllLists(ctx context.Context) ([]models.List, error) {
	lists, err := collectLists(listsCol(repo.client).Documents(ctx))
	if err != nil {
		return nil, err
	}
	sortListsByOrder(lists)
	return lists, nil
}

func (repo *ListRepositoryFirestore) GetListById(ctx context.Context, listId string) (models.List, error) {
	doc, err := listDoc(repo.client, listId).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.List{}, errors.WithDetail(models.ErrListNotFound, listId)
	}
	if err != nil {
		return models.List{}, err
	}
	return fsmodels.AdaptList(doc.Ref.ID, doc.Data()), nil
}

func (repo *ListRepositoryFirestore) CreateList(
	ctx context.Context,
	input models.CreateListInput,
	creator models.Identity,
	newListId string,
	order float64,
) error {
	_, err := listDoc(repo.client, newListId).
		Create(ctx, fsmodels.EncodeNewList(input, creator, order, repo.clock.Now()))
	return err
}

// UpdateList applies a partial patch: only the provided fields are written, so
// a patch never clobbers fields the caller did not intend to change. The
// updater stamps are always refreshed.
func (repo *ListRepositoryFirestore) UpdateList(
	ctx context.Context,
	input models.UpdateListInput,
	updater models.Identity,
) error {
	updates := make([]firestore.Update, 0, 5)
	if input.Name != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldName, Value: *input.Name})
	}
	if input.Order != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldOrder, Value: *input.Order})
	}
	if input.IsDefault != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldIsDefault, Value: *input.IsDefault})
	}
	updates = append(updates,
		firestore.Update{Path: fsmodels.FieldUpdatedByName, Value: updater.Name()},
		firestore.Update{Path: fsmodels.FieldUpdatedAt, Value: repo.clock.Now()},
	)

	_, err := listDoc(repo.client, input.Id).Update(ctx, updates)
	return adaptFirestoreError(err, models.ErrListNotFound)
}

func (repo *ListRepositoryFirestore) DeleteList(ctx context.Context, listId string) error {
	_, err := listDoc(repo.client, listId).Delete(ctx)
	return err
}

// SubscribeLists registers a live query over all lists ordered by ascending
// order key. onChange fires with the initial snapshot and on every subsequent
// change, in commit order for this client. The returned cancel function
// releases the listener and is safe to call more than once.
func (repo *ListRepositoryFirestore) SubscribeLists(ctx context.Context, onChange func([]models.List)) func() {
	ctx, cancel := context.WithCancel(ctx)
	snapshots := listsCol(repo.client).Snapshots(ctx)

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					utils.LoggerFromContext(ctx).ErrorContext(ctx, "lists subscription terminated", "error", err)
				}
				return
			}
			lists, err := collectLists(snap.Documents)
			if err != nil {
				utils.LoggerFromContext(ctx).ErrorContext(ctx, "could not decode lists snapshot", "error", err)
				continue
			}
			sortListsByOrder(lists)
			onChange(lists)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

func collectLists(iter *firestore.DocumentIterator) ([]models.List, error) {
	defer iter.Stop()

	var lists []models.List
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return lists, nil
		}
		if err != nil {
			return nil, err
		}
		lists = append(lists, fsmodels.AdaptList(doc.Ref.ID, doc.Data()))
	}
}
