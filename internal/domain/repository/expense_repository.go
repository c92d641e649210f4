package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sali72/expense-tracker/internal/domain/entity"
)

// ExpenseUpdate carries the fields of a partial update. Nil fields are left
// untouched. ID, CreatedAt and UserID are never updatable.
type ExpenseUpdate struct {
	Amount      *float64
	Tag         *string
	Description *string
}

// ExpenseRepository defines owner-scoped expense persistence. Reads, updates
// and deletes filter on (expense id, owner id): an expense belonging to a
// different owner is indistinguishable from one that does not exist.
type ExpenseRepository interface {
	// Create stores a new expense for ownerID; id and created_at are
	// assigned by the store.
	Create(ctx context.Context, ownerID uuid.UUID, amount float64, tag string, description *string) (*entity.Expense, error)
	GetByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error)
	// ListByOwner returns all expenses of ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Expense, error)
	Update(ctx context.Context, id, ownerID uuid.UUID, upd ExpenseUpdate) (*entity.Expense, error)
	// Delete removes the expense and returns the deleted row for caller echo.
	Delete(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error)
}
