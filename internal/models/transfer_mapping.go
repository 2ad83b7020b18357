package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/matching"
)

// TransferMapping remembers that a raw import string names a transfer to
// another account in the workspace.
type TransferMapping struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	WorkspaceID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_transfer_mapping_raw;index:idx_transfer_mapping_normalized" json:"workspace_id"`
	RawPayeeString   string         `gorm:"type:varchar(500);not null;index:idx_transfer_mapping_raw" json:"raw_payee_string"`
	NormalizedString string         `gorm:"type:varchar(500);not null;index:idx_transfer_mapping_normalized" json:"normalized_string"`
	TargetAccountID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"target_account_id"`
	SourceAccountID  *uuid.UUID     `gorm:"type:uuid" json:"source_account_id,omitempty"`
	Trigger          string         `gorm:"type:varchar(30);not null" json:"trigger"`
	Confidence       float64        `gorm:"not null;default:1" json:"confidence"`
	MatchCount       int            `gorm:"not null;default:1" json:"match_count"`
	LastAppliedAt    *time.Time     `json:"last_applied_at,omitempty"`
	CreatedAt        time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`

	TargetAccount Account `gorm:"foreignKey:TargetAccountID" json:"-"`
}

// BeforeCreate hook for TransferMapping
func (m *TransferMapping) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	if m.NormalizedString == "" {
		m.NormalizedString = matching.Normalize(m.RawPayeeString)
	}
	if m.Trigger == "" {
		m.Trigger = MappingTriggerManualCreation
	}
	if m.Confidence == 0 {
		m.Confidence = 1
	}
	if m.MatchCount == 0 {
		m.MatchCount = 1
	}

	now := time.Now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	return m.Validate()
}

// Validate validates the mapping fields
func (m *TransferMapping) Validate() error {
	if m.WorkspaceID == uuid.Nil {
		return errors.New("workspace ID is required")
	}
	if m.RawPayeeString == "" {
		return ErrEmptyRawString
	}
	if m.TargetAccountID == uuid.Nil {
		return errors.New("target account ID is required")
	}
	if !IsValidMappingTrigger(m.Trigger) {
		return ErrInvalidMappingTrigger
	}
	if m.Confidence < 0 || m.Confidence > 1 {
		return errors.New("confidence must be between 0 and 1")
	}
	return nil
}

// ToCandidate exposes the mapping to the matching engine.
func (m *TransferMapping) ToCandidate() matching.Candidate {
	return matching.Candidate{
		ID:               m.ID,
		TargetID:         m.TargetAccountID,
		RawString:        m.RawPayeeString,
		NormalizedString: m.NormalizedString,
		Confidence:       m.Confidence,
		MatchCount:       m.MatchCount,
	}
}

func (m *TransferMapping) TableName() string {
	return "transfer_mappings"
}

func (m *TransferMapping) Workspace() uuid.UUID { return m.WorkspaceID }
func (m *TransferMapping) AssignWorkspace(id uuid.UUID) { m.WorkspaceID = id }
func (m *TransferMapping) Raw() string { return m.RawPayeeString }
func (m *TransferMapping) Target() uuid.UUID { return m.TargetAccountID }
func (m *TransferMapping) Source() *uuid.UUID { return m.SourceAccountID }
func (m *TransferMapping) Renormalize() { m.NormalizedString = matching.Normalize(m.RawPayeeString) }

// Reconfirm retargets the mapping after the raw string was confirmed again.
// A nil source keeps the stored one.
func (m *TransferMapping) Reconfirm(target uuid.UUID, source *uuid.UUID) {
	m.TargetAccountID = target
	if source != nil {
		m.SourceAccountID = source
	}
	m.MatchCount++
	m.Renormalize()
}
