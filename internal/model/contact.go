package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is an address-book entry owned by exactly one User.
// Deletion is permanent, so there is no DeletedAt column.
type Contact struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	OwnerID   uuid.UUID `json:"owner_id" gorm:"type:char(36);not null;index"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Email     string    `json:"email" gorm:"size:255"`
	Phone     string    `json:"phone" gorm:"size:50"`
	Address   string    `json:"address" gorm:"size:500"`
	Image     string    `json:"image" gorm:"size:2048"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Owner User `json:"-" gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE"`
}

// BeforeCreate sets UUID before creating the record.
func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
