package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/sali72/expense-tracker/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
// Users have no owner, so every operation is keyed solely by id.
type UserRepository interface {
	// Create persists a new user with an empty expense-id list. Returns
	// ErrAlreadyExists when the id is taken.
	Create(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
