package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
)

// CreateExpenseInput carries the caller-supplied fields of a new expense.
// Tag and Description are optional; a nil Tag falls back to entity.TagOther.
type CreateExpenseInput struct {
	Amount      float64
	Tag         *string
	Description *string
}

// ExpenseService orchestrates owner-scoped expense CRUD. It adds no policy of
// its own beyond the tag default; ownership enforcement lives in the
// repository queries.
type ExpenseService struct {
	Repo   repository.ExpenseRepository
	Logger *logrus.Logger
}

func NewExpenseService(repo repository.ExpenseRepository, logger *logrus.Logger) *ExpenseService {
	return &ExpenseService{Repo: repo, Logger: logger}
}

func (s *ExpenseService) Create(ctx context.Context, ownerID uuid.UUID, in CreateExpenseInput) (*entity.Expense, error) {
	tag := entity.TagOther
	if in.Tag != nil && *in.Tag != "" {
		tag = *in.Tag
	}
	e, err := s.Repo.Create(ctx, ownerID, in.Amount, tag, in.Description)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", ownerID).Error("create expense failed")
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Get(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error) {
	return s.Repo.GetByID(ctx, id, ownerID)
}

func (s *ExpenseService) List(ctx context.Context, ownerID uuid.UUID) ([]entity.Expense, error) {
	items, err := s.Repo.ListByOwner(ctx, ownerID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", ownerID).Error("list expenses failed")
		}
		return nil, err
	}
	return items, nil
}

func (s *ExpenseService) Update(ctx context.Context, id, ownerID uuid.UUID, upd repository.ExpenseUpdate) (*entity.Expense, error) {
	e, err := s.Repo.Update(ctx, id, ownerID, upd)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("expense_id", id).Error("update expense failed")
		}
		return nil, err
	}
	return e, nil
}

func (s *ExpenseService) Delete(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error) {
	e, err := s.Repo.Delete(ctx, id, ownerID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("expense_id", id).Error("delete expense failed")
		}
		return nil, err
	}
	return e, nil
}
