package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db *DB
}

func NewUserRepository(db *DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (id)
		VALUES ($1)
	`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, repository.ErrAlreadyExists
		}
		return nil, err
	}
	return &entity.User{ID: id, ExpenseIDs: []uuid.UUID{}}, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return nil, err
	}
	u := &entity.User{}
	row := pool.QueryRow(ctx, `
		SELECT id, expense_ids
		FROM users
		WHERE id = $1
	`, id)
	if err := row.Scan(&u.ID, &u.ExpenseIDs); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if u.ExpenseIDs == nil {
		u.ExpenseIDs = []uuid.UUID{}
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	pool, err := r.db.Pool(ctx)
	if err != nil {
		return err
	}
	res, err := pool.Exec(ctx, `
		DELETE FROM users
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
