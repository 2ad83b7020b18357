package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Payee is a canonical counterparty. Raw bank strings resolve to payees
// through PayeeAlias rows.
type Payee struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WorkspaceID uuid.UUID      `gorm:"type:uuid;not null;index" json:"workspace_id"`
	Name        string         `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook for Payee
func (p *Payee) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	if p.WorkspaceID == uuid.Nil {
		return errors.New("workspace ID is required")
	}
	if p.Name == "" {
		return errors.New("payee name is required")
	}
	return nil
}

func (p *Payee) TableName() string {
	return "payees"
}
