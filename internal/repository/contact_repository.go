package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "contactbook/internal/errors"
	"contactbook/internal/model"
)

// ownerScope is the only way contacts are ever selected: by id and owner jointly.
const ownerScope = "id = ? AND owner_id = ?"

// ContactRepository defines contact persistence operations. Every method is
// scoped by owner; a contact that belongs to someone else is indistinguishable
// from one that does not exist.
type ContactRepository interface {
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error)
	Create(ctx context.Context, contact *model.Contact) error
	// FindByOwnerAndID returns nil, nil when the contact is absent or foreign.
	FindByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Contact, error)
	// UpdateByOwnerAndID applies only the given columns. Returns
	// errors.ErrContactNotFound when no row matched.
	UpdateByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}) error
	// DeleteByOwnerAndID permanently removes the contact. Returns
	// errors.ErrContactNotFound when no row matched.
	DeleteByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) error
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new contact repository.
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

// ListByOwner lists the owner's contacts in insertion order.
func (r *contactRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Contact, error) {
	contacts := []model.Contact{}
	if err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at").
		Order("id").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Create creates a new contact.
func (r *contactRepository) Create(ctx context.Context, contact *model.Contact) error {
	if err := r.db.WithContext(ctx).Omit("Owner").Create(contact).Error; err != nil {
		return fmt.Errorf("create contact: %w", err)
	}
	return nil
}

// FindByOwnerAndID finds a contact by ID within the owner's address book.
func (r *contactRepository) FindByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) (*model.Contact, error) {
	var contact model.Contact
	err := r.db.WithContext(ctx).Where(ownerScope, id, ownerID).First(&contact).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact: %w", err)
	}
	return &contact, nil
}

// UpdateByOwnerAndID updates the given columns of an owned contact.
func (r *contactRepository) UpdateByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return r.ensureOwned(ctx, ownerID, id)
	}

	res := r.db.WithContext(ctx).Model(&model.Contact{}).
		Where(ownerScope, id, ownerID).
		Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		// MySQL counts changed rows, not matched ones, so a no-op write
		// looks the same as a miss.
		return r.ensureOwned(ctx, ownerID, id)
	}
	return nil
}

func (r *contactRepository) ensureOwned(ctx context.Context, ownerID, id uuid.UUID) error {
	contact, err := r.FindByOwnerAndID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if contact == nil {
		return apperrors.ErrContactNotFound
	}
	return nil
}

// DeleteByOwnerAndID deletes an owned contact.
func (r *contactRepository) DeleteByOwnerAndID(ctx context.Context, ownerID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where(ownerScope, id, ownerID).Delete(&model.Contact{})
	if res.Error != nil {
		return fmt.Errorf("delete contact: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrContactNotFound
	}
	return nil
}
