package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

// TokenIssuer signs bearer tokens for an identity.
type TokenIssuer interface {
	Issue(userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (token string, user *model.User, err error)
}

type authService struct {
	credentials CredentialStore
	tokens      TokenIssuer
	logger      *slog.Logger
}

// NewAuthService creates a new authentication service.
func NewAuthService(credentials CredentialStore, tokens TokenIssuer, logger *slog.Logger) AuthService {
	return &authService{
		credentials: credentials,
		tokens:      tokens,
		logger:      logger,
	}
}

// Register creates a new identity with a hashed password.
func (s *authService) Register(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.credentials.Register(ctx, username, password)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicateIdentity) {
			s.logger.InfoContext(ctx, "registration rejected: username taken", "username", username)
			return nil, err
		}
		return nil, fmt.Errorf("register identity: %w", err)
	}

	s.logger.InfoContext(ctx, "identity registered", "user_id", user.ID, "username", user.Username)
	return user, nil
}

// Login authenticates an identity and returns a signed token.
func (s *authService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	user, found, err := s.credentials.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if !found {
		s.logger.WarnContext(ctx, "login failed: unknown identity", "username", username)
		return "", nil, apperrors.ErrIdentityNotFound
	}

	if !s.credentials.VerifyPassword(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed: bad credential", "user_id", user.ID)
		return "", nil, apperrors.ErrBadCredential
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}
	return token, user, nil
}
