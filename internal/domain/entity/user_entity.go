package entity

import (
	"github.com/google/uuid"
)

// User is the aggregate root for the user domain. Registration is id-only:
// the caller supplies the UUID and it is the sole identifying datum.
//
// ExpenseIDs is a denormalized convenience list; ownership truth lives on
// Expense.UserID.
type User struct {
	ID         uuid.UUID
	ExpenseIDs []uuid.UUID
}
