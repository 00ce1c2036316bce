package service

import (
	"context"

	"github.com/google/uuid"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
	"contactbook/internal/repository"
)

// ContactInput carries the fields of a new contact.
type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Image   string
}

// ContactPatch carries the fields to change; nil fields are left as they are.
type ContactPatch struct {
	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Image   *string
}

// columns maps the set fields to their database columns.
func (p ContactPatch) columns() map[string]interface{} {
	fields := make(map[string]interface{})
	set := func(column string, v *string) {
		if v != nil {
			fields[column] = *v
		}
	}
	set("name", p.Name)
	set("email", p.Email)
	set("phone", p.Phone)
	set("address", p.Address)
	set("image", p.Image)
	return fields
}

// ContactService exposes owner-scoped contact operations. The owner is always
// the verified caller; it is never read from client input.
type ContactService interface {
	List(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error)
	Create(ctx context.Context, ownerID uuid.UUID, in ContactInput) (*model.Contact, error)
	Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Contact, error)
	Update(ctx context.Context, ownerID, id uuid.UUID, patch ContactPatch) error
	Delete(ctx context.Context, ownerID, id uuid.UUID) error
}

type contactService struct {
	repo repository.ContactRepository
}

// NewContactService creates a new contact service.
func NewContactService(repo repository.ContactRepository) ContactService {
	return &contactService{repo: repo}
}

func (s *contactService) List(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

func (s *contactService) Create(ctx context.Context, ownerID uuid.UUID, in ContactInput) (*model.Contact, error) {
	contact := &model.Contact{
		OwnerID: ownerID,
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Address: in.Address,
		Image:   in.Image,
	}
	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

// Get returns errors.ErrContactNotFound for absent and foreign contacts alike.
func (s *contactService) Get(ctx context.Context, ownerID, id uuid.UUID) (*model.Contact, error) {
	contact, err := s.repo.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if contact == nil {
		return nil, apperrors.ErrContactNotFound
	}
	return contact, nil
}

func (s *contactService) Update(ctx context.Context, ownerID, id uuid.UUID, patch ContactPatch) error {
	return s.repo.UpdateByOwnerAndID(ctx, ownerID, id, patch.columns())
}

func (s *contactService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return s.repo.DeleteByOwnerAndID(ctx, ownerID, id)
}
