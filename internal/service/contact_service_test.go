package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contact), args.Error(1)
}

func (m *MockContactRepository) Create(ctx context.Context, contact *model.Contact) error {
	args := m.Called(ctx, contact)
	return args.Error(0)
}

func (m *MockContactRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Contact, error) {
	args := m.Called(ctx, ownerID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Contact), args.Error(1)
}

func (m *MockContactRepository) UpdateByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, ownerID, id, fields)
	return args.Error(0)
}

func (m *MockContactRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) error {
	args := m.Called(ctx, ownerID, id)
	return args.Error(0)
}

func strPtr(s string) *string { return &s }

func TestContactService_CreateUsesCallerAsOwner(t *testing.T) {
	repo := new(MockContactRepository)
	owner := uuid.New()
	repo.On("Create", mock.Anything, mock.MatchedBy(func(c *model.Contact) bool {
		return c.OwnerID == owner && c.Name == "Ada" && c.Email == "a@x.com"
	})).Return(nil)

	svc := NewContactService(repo)
	contact, err := svc.Create(context.Background(), owner, ContactInput{Name: "Ada", Email: "a@x.com", Phone: "123", Address: "Street 1"})

	require.NoError(t, err)
	assert.Equal(t, owner, contact.OwnerID)
	repo.AssertExpectations(t)
}

func TestContactService_Get(t *testing.T) {
	owner, id := uuid.New(), uuid.New()

	t.Run("found", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByOwnerAndID", mock.Anything, owner, id).Return(&model.Contact{ID: id, OwnerID: owner, Name: "Ada"}, nil)

		contact, err := NewContactService(repo).Get(context.Background(), owner, id)
		require.NoError(t, err)
		assert.Equal(t, "Ada", contact.Name)
	})

	t.Run("absent or foreign", func(t *testing.T) {
		repo := new(MockContactRepository)
		repo.On("FindByOwnerAndID", mock.Anything, owner, id).Return(nil, nil)

		contact, err := NewContactService(repo).Get(context.Background(), owner, id)
		assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
		assert.Nil(t, contact)
	})
}

func TestContactService_UpdateSendsOnlyProvidedFields(t *testing.T) {
	repo := new(MockContactRepository)
	owner, id := uuid.New(), uuid.New()
	repo.On("UpdateByOwnerAndID", mock.Anything, owner, id, map[string]interface{}{"phone": "999"}).Return(nil)

	err := NewContactService(repo).Update(context.Background(), owner, id, ContactPatch{Phone: strPtr("999")})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContactService_UpdateAllowsClearingOptionalField(t *testing.T) {
	repo := new(MockContactRepository)
	owner, id := uuid.New(), uuid.New()
	repo.On("UpdateByOwnerAndID", mock.Anything, owner, id, map[string]interface{}{"email": "", "name": "Grace"}).Return(nil)

	err := NewContactService(repo).Update(context.Background(), owner, id, ContactPatch{Email: strPtr(""), Name: strPtr("Grace")})

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestContactService_DeletePropagatesNotFound(t *testing.T) {
	repo := new(MockContactRepository)
	owner, id := uuid.New(), uuid.New()
	repo.On("DeleteByOwnerAndID", mock.Anything, owner, id).Return(apperrors.ErrContactNotFound)

	err := NewContactService(repo).Delete(context.Background(), owner, id)

	assert.ErrorIs(t, err, apperrors.ErrContactNotFound)
}

func TestContactService_List(t *testing.T) {
	repo := new(MockContactRepository)
	owner := uuid.New()
	repo.On("ListByOwner", mock.Anything, owner).Return([]model.Contact{{Name: "Ada"}, {Name: "Grace"}}, nil)

	contacts, err := NewContactService(repo).List(context.Background(), owner)

	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
