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

type ItemRepository interface {
	AllItems(ctx context.Context, listId string) ([]models.Item, error)
	CheckedItems(ctx context.Context, listId string) ([]models.Item, error)
	GetItemById(ctx context.Context, listId, itemId string) (models.Item, error)
	CreateItem(ctx context.Context, listId string, input models.CreateItemInput,
		creator models.Identity, newItemId string, order float64) error
	UpdateItem(ctx context.Context, input models.UpdateItemInput, updater models.Identity) error
	DeleteItem(ctx context.Context, listId, itemId string) error
	SubscribeItems(ctx context.Context, listId string, onChange func([]models.Item)) func()
}

type ItemRepositoryFirestore struct {
	client *firestore.Client
	clock  clock.Clock
}

func NewItemRepositoryFirestore(client *firestore.Client, c clock.Clock) *ItemRepositoryFirestore {
	return &ItemRepositoryFirestore{client: client, clock: c}
}

func (repo *ItemRepositoryFirestore) AllItems(ctx context.Context, listId string) ([]models.Item, error) {
	items, err := collectItems(itemsCol(repo.client, listId).Documents(ctx))
	if err != nil {
		return nil, err
	}
	sortItemsByOrder(items)
	return items, nil
}

func (repo *ItemRepositoryFirestore) CheckedItems(ctx context.Context, listId string) ([]models.Item, error) {
	return collectItems(itemsCol(repo.client, listId).
		Where(fsmodels.FieldChecked, "==", true).
		Documents(ctx))
}

func (repo *ItemRepositoryFirestore) GetItemById(ctx context.Context, listId, itemId string) (models.Item, error) {
	doc, err := itemDoc(repo.client, listId, itemId).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return models.Item{}, errors.WithDetail(models.ErrItemNotFound, itemId)
	}
	if err != nil {
		return models.Item{}, err
	}
	return fsmodels.AdaptItem(doc.Ref.ID, doc.Data()), nil
}

func (repo *ItemRepositoryFirestore) CreateItem(
	ctx context.Context,
	listId string,
	input models.CreateItemInput,
	creator models.Identity,
	newItemId string,
	order float64,
) error {
	_, err := itemDoc(repo.client, listId, newItemId).
		Create(ctx, fsmodels.EncodeNewItem(input, creator, order, repo.clock.Now()))
	return err
}

// UpdateItem applies a partial patch built from the provided fields only,
// always refreshing the updater stamps.
func (repo *ItemRepositoryFirestore) UpdateItem(
	ctx context.Context,
	input models.UpdateItemInput,
	updater models.Identity,
) error {
	updates := make([]firestore.Update, 0, 7)
	if input.Text != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldText, Value: *input.Text})
	}
	if input.Checked != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldChecked, Value: *input.Checked})
	}
	if input.Quantity != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldQuantity, Value: *input.Quantity})
	}
	if input.Unit != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldUnit, Value: *input.Unit})
	}
	if input.Order != nil {
		updates = append(updates, firestore.Update{Path: fsmodels.FieldOrder, Value: *input.Order})
	}
	updates = append(updates,
		firestore.Update{Path: fsmodels.FieldUpdatedByName, Value: updater.Name()},
		firestore.Update{Path: fsmodels.FieldUpdatedAt, Value: repo.clock.Now()},
	)

	_, err := itemDoc(repo.client, input.ListId, input.Id).Update(ctx, updates)
	return adaptFirestoreError(err, models.ErrItemNotFound)
}

func (repo *ItemRepositoryFirestore) DeleteItem(ctx context.Context, listId, itemId string) error {
	_, err := itemDoc(repo.client, listId, itemId).Delete(ctx)
	return err
}

// SubscribeItems registers a live query over one list's items ordered by
// ascending order key, firing onChange for the initial snapshot and every
// subsequent one. The cancel function releases the listener; repeated calls
// are a no-op.
func (repo *ItemRepositoryFirestore) SubscribeItems(
	ctx context.Context,
	listId string,
	onChange func([]models.Item),
) func() {
	ctx, cancel := context.WithCancel(ctx)
	snapshots := itemsCol(repo.client, listId).Snapshots(ctx)

	go func() {
		defer snapshots.Stop()
		for {
			snap, err := snapshots.Next()
			if err != nil {
				if status.Code(err) != codes.Canceled {
					utils.LoggerFromContext(ctx).ErrorContext(ctx,
						"items subscription terminated", "listId", listId, "error", err)
				}
				return
			}
			items, err := collectItems(snap.Documents)
			if err != nil {
				utils.LoggerFromContext(ctx).ErrorContext(ctx,
					"could not decode items snapshot", "listId", listId, "error", err)
				continue
			}
			sortItemsByOrder(items)
			onChange(items)
		}
	}()

	var once sync.Once
	return func() {
		once.Do(cancel)
	}
}

func collectItems(iter *firestore.DocumentIterator) ([]models.Item, error) {
	defer iter.Stop()

	var items []models.Item
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return items, nil
		}
		if err != nil {
			return nil, err
		}
		items = append(items, fsmodels.AdaptItem(doc.Ref.ID, doc.Data()))
	}
}
