package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/cartfulapp/cartful-backend/mocks"
	"github.com/cartfulapp/cartful-backend/models"
	"github.com/cartfulapp/cartful-backend/repositories/clock"
	"github.com/cartfulapp/cartful-backend/usecases/ordering"
	"github.com/cartfulapp/cartful-backend/utils"
)

var testIdentity = models.Identity{
	UserId:      "user-1",
	DisplayName: "Ada",
	Email:       "ada@example.com",
}

func authenticatedContext(t *testing.T) context.Context {
	t.Helper()
	return context.WithValue(t.Context(), utils.ContextKeyCredentials,
		models.Credentials{ActorIdentity: testIdentity})
}

func newTestGenerator() *ordering.Generator {
	return ordering.NewSeededGenerator(
		clock.NewMock(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)),
		func() float64 { return 0.5 },
	)
}

func TestCreateListRequiresAuthentication(t *testing.T) {
	repo := new(mocks.ListRepository)
	uc := NewListUsecase(repo, newTestGenerator())

	_, err := uc.CreateList(t.Context(), models.CreateListInput{Name: "Groceries"})

	assert.ErrorIs(t, err, models.UnAuthorizedError)
	repo.AssertNotCalled(t, "CreateList",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateListRejectsBlankName(t *testing.T) {
	repo := new(mocks.ListRepository)
	uc := NewListUsecase(repo, newTestGenerator())

	_, err := uc.CreateList(authenticatedContext(t), models.CreateListInput{Name: "   "})

	assert.ErrorIs(t, err, models.ErrEmptyListName)
}

func TestCreateListTrimsNameAndStampsCreator(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("CreateList", mock.Anything,
		models.CreateListInput{Name: "Groceries"}, testIdentity,
		mock.AnythingOfType("string"), mock.AnythingOfType("float64")).
		Return(nil)
	uc := NewListUsecase(repo, newTestGenerator())

	listId, err := uc.CreateList(authenticatedContext(t), models.CreateListInput{Name: "  Groceries  "})

	require.NoError(t, err)
	assert.NotEmpty(t, listId)
	repo.AssertExpectations(t)
}

func TestMoveListSwapsWithNeighbor(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List{
		{Id: "list-1", Order: 10},
		{Id: "list-2", Order: 20},
	}, nil)
	repo.On("UpdateList", mock.Anything,
		mock.MatchedBy(func(input models.UpdateListInput) bool {
			return input.Id == "list-2" && input.Order != nil && *input.Order == 10
		}), testIdentity).Return(nil)
	repo.On("UpdateList", mock.Anything,
		mock.MatchedBy(func(input models.UpdateListInput) bool {
			return input.Id == "list-1" && input.Order != nil && *input.Order == 20
		}), testIdentity).Return(nil)
	uc := NewListUsecase(repo, newTestGenerator())

	moved, err := uc.MoveList(authenticatedContext(t), "list-2", models.MoveDirectionUp)

	require.NoError(t, err)
	assert.True(t, moved)
	repo.AssertExpectations(t)
}

func TestMoveListAtEdgeIsNoop(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List{
		{Id: "list-1", Order: 10},
		{Id: "list-2", Order: 20},
	}, nil)
	uc := NewListUsecase(repo, newTestGenerator())

	moved, err := uc.MoveList(authenticatedContext(t), "list-1", models.MoveDirectionUp)

	require.NoError(t, err)
	assert.False(t, moved)
	repo.AssertNotCalled(t, "UpdateList", mock.Anything, mock.Anything, mock.Anything)
}

func TestMoveListUnknownList(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List{}, nil)
	uc := NewListUsecase(repo, newTestGenerator())

	_, err := uc.MoveList(authenticatedContext(t), "list-9", models.MoveDirectionDown)

	assert.ErrorIs(t, err, models.ErrListNotFound)
}

func TestEnsureDefaultListPicksOldestWhenSeveralAreFlagged(t *testing.T) {
	older := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List{
		{Id: "list-new", IsDefault: true, CreatedAt: newer},
		{Id: "list-old", IsDefault: true, CreatedAt: older},
		{Id: "list-other", IsDefault: false, CreatedAt: older},
	}, nil)
	uc := NewListUsecase(repo, newTestGenerator())

	defaultList, err := uc.EnsureDefaultList(authenticatedContext(t))

	require.NoError(t, err)
	assert.Equal(t, "list-old", defaultList.Id)
	repo.AssertNotCalled(t, "CreateList",
		mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEnsureDefaultListCreatesInboxWhenNoneExists(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List{
		{Id: "list-1", IsDefault: false},
	}, nil)
	var createdId string
	repo.On("CreateList", mock.Anything,
		models.CreateListInput{Name: DefaultListName, IsDefault: true}, testIdentity,
		mock.AnythingOfType("string"), mock.AnythingOfType("float64")).
		Run(func(args mock.Arguments) {
			createdId = args.String(3)
		}).
		Return(nil)
	repo.On("GetListById", mock.Anything, mock.AnythingOfType("string")).
		Return(models.List{Name: DefaultListName, IsDefault: true}, nil)
	uc := NewListUsecase(repo, newTestGenerator())

	defaultList, err := uc.EnsureDefaultList(authenticatedContext(t))

	require.NoError(t, err)
	assert.Equal(t, DefaultListName, defaultList.Name)
	assert.NotEmpty(t, createdId)
	repo.AssertExpectations(t)
}

func TestRenameListRejectsBlankName(t *testing.T) {
	repo := new(mocks.ListRepository)
	uc := NewListUsecase(repo, newTestGenerator())

	err := uc.RenameList(authenticatedContext(t), "list-1", "  ")

	assert.ErrorIs(t, err, models.ErrEmptyListName)
}

func TestGetListsPropagatesRepositoryError(t *testing.T) {
	repo := new(mocks.ListRepository)
	repo.On("AllLists", mock.Anything).Return([]models.List(nil), errors.New("backend down"))
	uc := NewListUsecase(repo, newTestGenerator())

	_, err := uc.GetLists(t.Context())

	assert.Error(t, err)
}
