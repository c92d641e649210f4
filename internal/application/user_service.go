package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sali72/expense-tracker/internal/domain/entity"
	"github.com/sali72/expense-tracker/internal/domain/repository"
)

// UserService handles registration and removal of user profiles.
type UserService struct {
	Repo   repository.UserRepository
	Logger *logrus.Logger
}

func NewUserService(repo repository.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: repo, Logger: logger}
}

// Register creates a profile under the caller-supplied id. The id is the
// only identifying datum; uniqueness is enforced by the store.
func (s *UserService) Register(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	u, err := s.Repo.Create(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrAlreadyExists) && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", id).Error("create user failed")
		}
		return nil, err
	}
	return u, nil
}

func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	return s.Repo.GetByID(ctx, id)
}

// Delete removes the profile. Owned expenses are left in place: user deletion
// does not cascade.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	err := s.Repo.Delete(ctx, id)
	if err != nil && !errors.Is(err, repository.ErrNotFound) && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", id).Error("delete user failed")
	}
	return err
}
