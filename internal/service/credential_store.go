package service

import (
	"context"
	"fmt"

	"contactbook/internal/auth"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// CredentialStore persists identities and checks their passwords.
type CredentialStore interface {
	// Register stores a new identity with a bcrypt hash of password. It fails
	// with errors.ErrDuplicateIdentity when the username is taken.
	Register(ctx context.Context, username, password string) (*model.User, error)
	// FindByUsername reports found=false, with a nil error, for unknown usernames.
	FindByUsername(ctx context.Context, username string) (user *model.User, found bool, err error)
	VerifyPassword(password, storedHash string) bool
}

type credentialStore struct {
	users  repository.UserRepository
	hasher *auth.PasswordHasher
}

// NewCredentialStore creates a credential store over the user repository.
func NewCredentialStore(users repository.UserRepository, hasher *auth.PasswordHasher) CredentialStore {
	return &credentialStore{users: users, hasher: hasher}
}

func (s *credentialStore) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     username,
		PasswordHash: hash,
	}
	// No existence pre-check: the unique index decides, which also covers
	// two registrations racing for the same name.
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *credentialStore) FindByUsername(ctx context.Context, username string) (*model.User, bool, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, false, fmt.Errorf("find identity: %w", err)
	}
	return user, user != nil, nil
}

func (s *credentialStore) VerifyPassword(password, storedHash string) bool {
	return s.hasher.Compare(storedHash, password)
}
