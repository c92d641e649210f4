package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
	"github.com/sali72/expense-tracker/pkg/helpers"
)

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]struct{}
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[uuid.UUID]struct{}{}}
}

func (r *memUserRepo) Create(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; ok {
		return nil, repository.ErrAlreadyExists
	}
	r.users[id] = struct{}{}
	return &entity.User{ID: id, ExpenseIDs: []uuid.UUID{}}, nil
}

func (r *memUserRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return nil, repository.ErrNotFound
	}
	return &entity.User{ID: id, ExpenseIDs: []uuid.UUID{}}, nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.users, id)
	return nil
}

type capturingExpenseRepo struct {
	lastTag  string
	lastDesc *string
}

func (r *capturingExpenseRepo) Create(_ context.Context, ownerID uuid.UUID, amount float64, tag string, description *string) (*entity.Expense, error) {
	r.lastTag = tag
	r.lastDesc = description
	return &entity.Expense{ID: uuid.New(), Amount: amount, Tag: tag, Description: description, UserID: ownerID, CreatedAt: time.Now()}, nil
}

func (r *capturingExpenseRepo) GetByID(context.Context, uuid.UUID, uuid.UUID) (*entity.Expense, error) {
	return nil, repository.ErrNotFound
}

func (r *capturingExpenseRepo) ListByOwner(context.Context, uuid.UUID) ([]entity.Expense, error) {
	return []entity.Expense{}, nil
}

func (r *capturingExpenseRepo) Update(context.Context, uuid.UUID, uuid.UUID, repository.ExpenseUpdate) (*entity.Expense, error) {
	return nil, repository.ErrNotFound
}

func (r *capturingExpenseRepo) Delete(context.Context, uuid.UUID, uuid.UUID) (*entity.Expense, error) {
	return nil, repository.ErrNotFound
}

func TestExpenseCreateTagDefault(t *testing.T) {
	repo := &capturingExpenseRepo{}
	svc := NewExpenseService(repo, nil)

	_, err := svc.Create(context.Background(), uuid.New(), CreateExpenseInput{Amount: 1})
	require.NoError(t, err)
	assert.Equal(t, entity.TagOther, repo.lastTag)

	empty := ""
	_, err = svc.Create(context.Background(), uuid.New(), CreateExpenseInput{Amount: 1, Tag: &empty})
	require.NoError(t, err)
	assert.Equal(t, entity.TagOther, repo.lastTag)
}

func TestExpenseCreateTagPassthrough(t *testing.T) {
	repo := &capturingExpenseRepo{}
	svc := NewExpenseService(repo, nil)

	tag := "food"
	_, err := svc.Create(context.Background(), uuid.New(), CreateExpenseInput{Amount: 1, Tag: &tag})
	require.NoError(t, err)
	assert.Equal(t, "food", repo.lastTag)
}

func TestExpenseCreateArbitraryTagAccepted(t *testing.T) {
	repo := &capturingExpenseRepo{}
	svc := NewExpenseService(repo, nil)

	// Tags outside the suggested set are stored as-is.
	tag := "crypto-losses"
	_, err := svc.Create(context.Background(), uuid.New(), CreateExpenseInput{Amount: 1, Tag: &tag})
	require.NoError(t, err)
	assert.Equal(t, "crypto-losses", repo.lastTag)
}

func TestUserRegisterDuplicate(t *testing.T) {
	repo := newMemUserRepo()
	svc := NewUserService(repo, nil)
	id := uuid.New()

	_, err := svc.Register(context.Background(), id)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), id)
	assert.ErrorIs(t, err, repository.ErrAlreadyExists)
}

func TestAuthIssueToken(t *testing.T) {
	repo := newMemUserRepo()
	jwtMgr := helpers.NewJWTManager("secret", jwt.SigningMethodHS256, time.Hour)
	svc := NewAuthService(repo, jwtMgr, nil)

	id := uuid.New()
	_, err := repo.Create(context.Background(), id)
	require.NoError(t, err)

	token, exp, err := svc.IssueToken(context.Background(), id)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	sub, err := jwtMgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, id, sub)
}

func TestAuthIssueTokenUnknownUser(t *testing.T) {
	repo := newMemUserRepo()
	jwtMgr := helpers.NewJWTManager("secret", jwt.SigningMethodHS256, time.Hour)
	svc := NewAuthService(repo, jwtMgr, nil)

	_, _, err := svc.IssueToken(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthRefreshDelegates(t *testing.T) {
	repo := newMemUserRepo()
	jwtMgr := helpers.NewJWTManager("secret", jwt.SigningMethodHS256, time.Hour)
	svc := NewAuthService(repo, jwtMgr, nil)

	id := uuid.New()
	_, err := repo.Create(context.Background(), id)
	require.NoError(t, err)

	token, _, err := svc.Refresh(context.Background(), id)
	require.NoError(t, err)
	sub, err := jwtMgr.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, id, sub)
}

func TestAuthIssueTokenPropagatesStoreError(t *testing.T) {
	jwtMgr := helpers.NewJWTManager("secret", jwt.SigningMethodHS256, time.Hour)
	svc := NewAuthService(failingUserRepo{}, jwtMgr, nil)

	_, _, err := svc.IssueToken(context.Background(), uuid.New())
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

type failingUserRepo struct{}

var errStore = errors.New("store down")

func (failingUserRepo) Create(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, errStore
}
func (failingUserRepo) GetByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, errStore
}
func (failingUserRepo) Delete(context.Context, uuid.UUID) error { return errStore }
