package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
)

// ExpenseRepository persists owner-scoped expenses. Every read, update and
// delete filters on both id and user_id, so a row owned by someone else scans
// the same as a missing row.
type ExpenseRepository struct {
	db *DB
}

func NewExpenseRepository(db *DB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

func (r *ExpenseRepository) Create(ctx context.Context, ownerID uuid.UUID, amount float64, tag string, description *string) (*entity.Expense, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{
		Amount:      amount,
		Tag:         tag,
		Description: description,
		UserID:      ownerID,
	}
	row := pool.QueryRow(ctx, `
		INSERT INTO expenses (user_id, amount, tag, description)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`, ownerID, amount, tag, description)
	if err := row.Scan(&e.ID, &e.CreatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{}
	row := pool.QueryRow(ctx, `
		SELECT id, amount, created_at, tag, description, user_id
		FROM expenses
		WHERE id = $1 AND user_id = $2
	`, id, ownerID)
	if err := row.Scan(&e.ID, &e.Amount, &e.CreatedAt, &e.Tag, &e.Description, &e.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]entity.Expense, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, `
		SELECT id, amount, created_at, tag, description, user_id
		FROM expenses
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]entity.Expense, 0)
	for rows.Next() {
		var e entity.Expense
		if err := rows.Scan(&e.ID, &e.Amount, &e.CreatedAt, &e.Tag, &e.Description, &e.UserID); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *ExpenseRepository) Update(ctx context.Context, id, ownerID uuid.UUID, upd repository.ExpenseUpdate) (*entity.Expense, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{}
	row := pool.QueryRow(ctx, `
		UPDATE expenses
		SET amount      = COALESCE($3, amount),
		    tag         = COALESCE($4, tag),
		    description = COALESCE($5, description)
		WHERE id = $1 AND user_id = $2
		RETURNING id, amount, created_at, tag, description, user_id
	`, id, ownerID, upd.Amount, upd.Tag, upd.Description)
	if err := row.Scan(&e.ID, &e.Amount, &e.CreatedAt, &e.Tag, &e.Description, &e.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *ExpenseRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) (*entity.Expense, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	e := &entity.Expense{}
	row := pool.QueryRow(ctx, `
		DELETE FROM expenses
		WHERE id = $1 AND user_id = $2
		RETURNING id, amount, created_at, tag, description, user_id
	`, id, ownerID)
	if err := row.Scan(&e.ID, &e.Amount, &e.CreatedAt, &e.Tag, &e.Description, &e.UserID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

var _ repository.ExpenseRepository = (*ExpenseRepository)(nil)
