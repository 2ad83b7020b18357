package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/matching"
)

// PayeeAlias maps a raw import string to a canonical payee. Triggers are
// shared with TransferMapping.
type PayeeAlias struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WorkspaceID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_payee_alias_raw;index:idx_payee_alias_normalized" json:"workspace_id"`
	RawString        string         `gorm:"type:varchar(500);not null;index:idx_payee_alias_raw" json:"raw_string"`
	NormalizedString string         `gorm:"type:varchar(500);not null;index:idx_payee_alias_normalized" json:"normalized_string"`
	PayeeID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"payee_id"`
	Trigger          string         `gorm:"type:varchar(30);not null" json:"trigger"`
	Confidence       float64        `gorm:"not null;default:1" json:"confidence"`
	MatchCount       int            `gorm:"not null;default:1" json:"match_count"`
	LastAppliedAt    *time.Time     `json:"last_applied_at,omitempty"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	Payee Payee `gorm:"foreignKey:PayeeID" json:"-"`
}

// BeforeCreate hook for PayeeAlias
func (a *PayeeAlias) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	if a.NormalizedString == "" {
		a.NormalizedString = matching.Normalize(a.RawString)
	}
	if a.Trigger == "" {
		a.Trigger = MappingTriggerManualCreation
	}
	if a.Confidence == 0 {
		a.Confidence = 1
	}
	if a.MatchCount == 0 {
		a.MatchCount = 1
	}

	now := time.Now()
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	if a.UpdatedAt.IsZero() {
		a.UpdatedAt = now
	}

	return a.Validate()
}

func (a *PayeeAlias) Validate() error {
	if a.WorkspaceID == uuid.Nil {
		return errors.New("workspace ID is required")
	}
	if a.RawString == "" {
		return ErrEmptyRawString
	}
	if a.PayeeID == uuid.Nil {
		return errors.New("payee ID is required")
	}
	if !IsValidMappingTrigger(a.Trigger) {
		return ErrInvalidMappingTrigger
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return errors.New("confidence must be between 0 and 1")
	}
	return nil
}

func (a *PayeeAlias) ToCandidate() matching.Candidate {
	return matching.Candidate{
		ID:               a.ID,
		TargetID:         a.PayeeID,
		RawString:        a.RawString,
		NormalizedString: a.NormalizedString,
		Confidence:       a.Confidence,
		MatchCount:       a.MatchCount,
	}
}

func (a *PayeeAlias) TableName() string {
	return "payee_aliases"
}

func (a *PayeeAlias) Workspace() uuid.UUID { return a.WorkspaceID }
func (a *PayeeAlias) AssignWorkspace(id uuid.UUID) { a.WorkspaceID = id }
func (a *PayeeAlias) Raw() string { return a.RawString }
func (a *PayeeAlias) Target() uuid.UUID { return a.PayeeID }

// Source is always nil; aliases are not tied to an account.
func (a *PayeeAlias) Source() *uuid.UUID { return nil }
func (a *PayeeAlias) Renormalize() { a.NormalizedString = matching.Normalize(a.RawString) }

// Reconfirm points the alias at payee after the raw string was confirmed again
func (a *PayeeAlias) Reconfirm(payee uuid.UUID, _ *uuid.UUID) {
	a.PayeeID = payee
	a.MatchCount++
	a.Renormalize()
}
