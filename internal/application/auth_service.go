package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sali72/expense-tracker/internal/domain/repository"
	"github.com/sali72/expense-tracker/pkg/helpers"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService issues bearer tokens. Possession of a registered user id is the
// whole credential, mirroring the trust model of the external issuer this
// endpoint replaces.
type AuthService struct {
	Users  repository.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

// IssueToken signs a fresh token for an existing user.
func (s *AuthService) IssueToken(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	if _, err := s.Users.GetByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", time.Time{}, ErrInvalidCredentials
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", userID).Error("token issuance lookup failed")
		}
		return "", time.Time{}, err
	}
	return s.JWT.Issue(userID)
}

// Refresh reissues a token for an already-authenticated subject. Single
// reissue: no rotation state is kept, the old token stays valid until its
// own expiry.
func (s *AuthService) Refresh(ctx context.Context, userID uuid.UUID) (string, time.Time, error) {
	return s.IssueToken(ctx, userID)
}
