package usecases

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/pure_utils"
	"github.com/cartfulapp/cartful-backend/repositories"
	"github.com/cartfulapp/cartful-backend/usecases/ordering"
	"github.com/cartfulapp/cartful-backend/utils"
)

// DefaultListName is the name given to the long-lived "Inbox" fallback list
// created when no default list exists yet.
const DefaultListName = "Inbox"

type ListUsecase struct {
	listRepository repositories.ListRepository
	orderKeys      *ordering.Generator

	// Guards default-list creation: process-local, not a distributed lock.
	// Two tabs can still race and both create a default; EnsureDefaultList
	// resolves such transients deterministically by picking the oldest.
	defaultListMu sync.Mutex
}

func NewListUsecase(listRepository repositories.ListRepository, orderKeys *ordering.Generator) *ListUsecase {
	return &ListUsecase{
		listRepository: listRepository,
		orderKeys:      orderKeys,
	}
}

func (uc *ListUsecase) GetLists(ctx context.Context) ([]models.List, error) {
	return uc.listRepository.AllLists(ctx)
}

func (uc *ListUsecase) GetListById(ctx context.Context, listId string) (models.List, error) {
	return uc.listRepository.GetListById(ctx, listId)
}

func (uc *ListUsecase) CreateList(ctx context.Context, input models.CreateListInput) (string, error) {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return "", models.UnAuthorizedError
	}
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return "", models.ErrEmptyListName
	}

	newListId := uuid.NewString()
	err := uc.listRepository.CreateList(ctx, input, creds.ActorIdentity, newListId, uc.orderKeys.Next())
	if err != nil {
		return "", err
	}
	return newListId, nil
}

func (uc *ListUsecase) UpdateList(ctx context.Context, input models.UpdateListInput) error {
	creds, found := utils.CredentialsFromCtx(ctx)
	if !found {
		return models.UnAuthorizedError
	}
	return uc.listRepository.UpdateList(ctx, input, creds.ActorIdentity)
}

func (uc *ListUsecase) RenameList(ctx context.Context, listId, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.ErrEmptyListName
	}
	return uc.UpdateList(ctx, models.UpdateListInput{Id: listId, Name: &name})
}

// MoveList swaps the list with its immediate neighbor in sorted order. It
// returns false without error when the list is already at the edge the move
// points past.
func (uc *ListUsecase) MoveList(ctx context.Context, listId string, direction models.MoveDirection) (bool, error) {
	lists, err := uc.listRepository.AllLists(ctx)
	if err != nil {
		return false, err
	}

	idx := -1
	for i, list := range lists {
		if list.Id == listId {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false, models.ErrListNotFound
	}

	neighbor := idx - 1
	if direction == models.MoveDirectionDown {
		neighbor = idx + 1
	}
	if neighbor < 0 || neighbor >= len(lists) {
		return false, nil
	}

	swapped := ordering.SwapOrders(lists[idx].Order, lists[neighbor].Order, direction)
	if err := uc.UpdateList(ctx, models.UpdateListInput{Id: lists[idx].Id, Order: &swapped.Current}); err != nil {
		return false, err
	}
	if err := uc.UpdateList(ctx, models.UpdateListInput{Id: lists[neighbor].Id, Order: &swapped.Target}); err != nil {
		return false, err
	}
	return true, nil
}

// EnsureDefaultList returns the default "Inbox" list, creating it when none
// exists. During a migration or creation race more than one list may
// transiently carry the default flag; the oldest one wins deterministically
// so every caller converges on the same target.
func (uc *ListUsecase) EnsureDefaultList(ctx context.Context) (models.List, error) {
	uc.defaultListMu.Lock()
	defer uc.defaultListMu.Unlock()

	lists, err := uc.listRepository.AllLists(ctx)
	if err != nil {
		return models.List{}, err
	}

	defaults := pure_utils.Filter(lists, func(l models.List) bool { return l.IsDefault })
	if len(defaults) > 0 {
		sort.SliceStable(defaults, func(i, j int) bool {
			return defaults[i].CreatedAt.Before(defaults[j].CreatedAt)
		})
		return defaults[0], nil
	}

	newListId, err := uc.CreateList(ctx, models.CreateListInput{Name: DefaultListName, IsDefault: true})
	if err != nil {
		return models.List{}, err
	}
	return uc.listRepository.GetListById(ctx, newListId)
}
