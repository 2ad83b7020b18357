package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/detection"
)

// Transaction is a ledger entry. Amount is signed: negative for outflows.
// Detection only reads transactions; the one write it performs is linking
// ScheduleID when a pattern is converted.
type Transaction struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AccountID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"account_id"`
	Date       calendar.Date   `gorm:"type:date;not null;index" json:"date"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	PayeeID    *uuid.UUID      `gorm:"type:uuid;index" json:"payee_id,omitempty"`
	CategoryID *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	ScheduleID *uuid.UUID      `gorm:"type:uuid;index" json:"schedule_id,omitempty"`
	IsTransfer bool            `gorm:"not null;default:false" json:"is_transfer"`
	Notes      string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt  time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time       `gorm:"not null" json:"updated_at"`
	DeletedAt  gorm.DeletedAt  `gorm:"index" json:"-"`

	Account Account `gorm:"foreignKey:AccountID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}
	if t.Date.IsZero() {
		return errors.New("transaction date is required")
	}
	return nil
}

func (t *Transaction) TableName() string {
	return "transactions"
}

// ToDetection converts the row into the detector's input record.
func (t *Transaction) ToDetection() detection.Transaction {
	return detection.Transaction{
		ID:         t.ID,
		AccountID:  t.AccountID,
		Date:       t.Date,
		Amount:     t.Amount,
		PayeeID:    t.PayeeID,
		CategoryID: t.CategoryID,
		ScheduleID: t.ScheduleID,
		IsTransfer: t.IsTransfer,
		Deleted:    t.DeletedAt.Valid,
	}
}
