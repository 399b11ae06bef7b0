package repositories

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/repositories/clock"
	"github.com/cartfulapp/cartful-backend/repositories/fsmodels"
)

// MaxBatchOps is the store's ceiling on operations per atomic write batch.
const MaxBatchOps = 400

type BulkRepository interface {
	BulkSetItemsChecked(ctx context.Context, listId string, itemIds []string,
		checked bool, updater models.Identity) error
	BulkDeleteItems(ctx context.Context, listId string, itemIds []string) error
	BulkCopyItems(ctx context.Context, targetListId string, items []models.Item,
		updater models.Identity) error
	BulkSetListOrders(ctx context.Context, assignments []models.OrderAssignment) error
	BulkSetItemOrders(ctx context.Context, listId string, assignments []models.OrderAssignment) error
}

type BulkRepositoryFirestore struct {
	client *firestore.Client
	clock  clock.Clock
}

func NewBulkRepositoryFirestore(client *firestore.Client, c clock.Clock) *BulkRepositoryFirestore {
	return &BulkRepositoryFirestore{client: client, clock: c}
}

type batchOpKind int

const (
	opSet batchOpKind = iota
	opUpdate
	opDelete
)

type batchOp struct {
	kind    batchOpKind
	ref     *firestore.DocumentRef
	data    map[string]any
	updates []firestore.Update
}

// commitChunks splits ops into chunks of at most MaxBatchOps and commits each
// chunk as an independent atomic batch, in order. Chunk N+1 is only attempted
// after chunk N commits; on failure the chunk's error is returned and earlier
// chunks remain committed. Bulk operations are therefore at-least-once and
// not atomic across chunks.
func (repo *BulkRepositoryFirestore) commitChunks(ctx context.Context, ops []batchOp) error {
	for _, chunk := range pure_utils.Chunk(ops, MaxBatchOps) {
		batch := repo.client.Batch()
		for _, op := range chunk {
			switch op.kind {
			case opSet:
				batch.Set(op.ref, op.data)
			case opUpdate:
				batch.Update(op.ref, op.updates)
			case opDelete:
				batch.Delete(op.ref)
			}
		}
		if _, err := batch.Commit(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (repo *BulkRepositoryFirestore) BulkSetItemsChecked(
	ctx context.Context,
	listId string,
	itemIds []string,
	checked bool,
	updater models.Identity,
) error {
	now := repo.clock.Now()
	ops := pure_utils.Map(itemIds, func(itemId string) batchOp {
		return batchOp{
			kind: opUpdate,
			ref:  itemDoc(repo.client, listId, itemId),
			updates: []firestore.Update{
				{Path: fsmodels.FieldChecked, Value: checked},
				{Path: fsmodels.FieldUpdatedByName, Value: updater.Name()},
				{Path: fsmodels.FieldUpdatedAt, Value: now},
			},
		}
	})
	return repo.commitChunks(ctx, ops)
}

func (repo *BulkRepositoryFirestore) BulkDeleteItems(ctx context.Context, listId string, itemIds []string) error {
	ops := pure_utils.Map(itemIds, func(itemId string) batchOp {
		return batchOp{kind: opDelete, ref: itemDoc(repo.client, listId, itemId)}
	})
	return repo.commitChunks(ctx, ops)
}

// BulkCopyItems writes a copy of every item under the target list, preserving
// content, order and creation metadata while re-stamping the updater fields.
// Copies get fresh document ids: item ids are scoped to their list.
func (repo *BulkRepositoryFirestore) BulkCopyItems(
	ctx context.Context,
	targetListId string,
	items []models.Item,
	updater models.Identity,
) error {
	now := repo.clock.Now()
	ops := pure_utils.Map(items, func(item models.Item) batchOp {
		return batchOp{
			kind: opSet,
			ref:  itemDoc(repo.client, targetListId, uuid.NewString()),
			data: fsmodels.EncodeMigratedItem(item, updater, now),
		}
	})
	return repo.commitChunks(ctx, ops)
}

func (repo *BulkRepositoryFirestore) BulkSetListOrders(
	ctx context.Context,
	assignments []models.OrderAssignment,
) error {
	ops := pure_utils.Map(assignments, func(a models.OrderAssignment) batchOp {
		return batchOp{
			kind:    opUpdate,
			ref:     listDoc(repo.client, a.Id),
			updates: []firestore.Update{{Path: fsmodels.FieldOrder, Value: a.Order}},
		}
	})
	return repo.commitChunks(ctx, ops)
}

func (repo *BulkRepositoryFirestore) BulkSetItemOrders(
	ctx context.Context,
	listId string,
	assignments []models.OrderAssignment,
) error {
	ops := pure_utils.Map(assignments, func(a models.OrderAssignment) batchOp {
		updates := []firestore.Update{{Path: fsmodels.FieldOrder, Value: a.Order}}
		if a.SetQuantity {
			updates = append(updates, firestore.Update{Path: fsmodels.FieldQuantity, Value: a.Quantity})
		}
		return batchOp{kind: opUpdate, ref: itemDoc(repo.client, listId, a.Id), updates: updates}
	})
	return repo.commitChunks(ctx, ops)
}
