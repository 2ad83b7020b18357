package models

import (
	"errors"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/detection"
)

const (
	PatternStatusPending   = "pending"
	PatternStatusAccepted  = "accepted"
	PatternStatusDismissed = "dismissed"
	PatternStatusConverted = "converted"
)

var (
	ErrInvalidPatternStatus     = errors.New("invalid pattern status")
	ErrInvalidPatternType       = errors.New("invalid pattern type")
	ErrInvalidPatternTransition = errors.New("invalid pattern status transition")
)

// DetectedPattern is a persisted detection result awaiting review.
// (AccountID, PayeeID, CategoryID, PatternType) identifies the series; a
// re-run refreshes the row instead of adding a second one.
type DetectedPattern struct {
	ID                      uuid.UUID               `gorm:"type:uuid;primary_key" json:"id"`
	WorkspaceID             uuid.UUID               `gorm:"type:uuid;not null;index" json:"workspace_id"`
	AccountID               uuid.UUID               `gorm:"type:uuid;not null;index:idx_pattern_identity" json:"account_id"`
	PatternType             string                  `gorm:"type:varchar(20);not null;index:idx_pattern_identity" json:"pattern_type"`
	ConfidenceScore         int                     `gorm:"not null" json:"confidence_score"`
	SampleTransactionIDs    UUIDList                `gorm:"type:text" json:"sample_transaction_ids"`
	PayeeID                 *uuid.UUID              `gorm:"type:uuid;index:idx_pattern_identity" json:"payee_id,omitempty"`
	CategoryID              *uuid.UUID              `gorm:"type:uuid;index:idx_pattern_identity" json:"category_id,omitempty"`
	AmountMin               decimal.Decimal         `gorm:"type:decimal(15,2);not null" json:"amount_min"`
	AmountMax               decimal.Decimal         `gorm:"type:decimal(15,2);not null" json:"amount_max"`
	AmountAvg               decimal.Decimal         `gorm:"type:decimal(15,2);not null" json:"amount_avg"`
	IntervalDays            int                     `gorm:"not null" json:"interval_days"`
	FirstOccurrence         calendar.Date           `gorm:"type:date" json:"first_occurrence"`
	LastOccurrence          calendar.Date           `gorm:"type:date;not null" json:"last_occurrence"`
	NextExpected            calendar.Date           `gorm:"type:date" json:"next_expected"`
	OccurrenceCount         int                     `gorm:"not null" json:"occurrence_count"`
	SuggestedScheduleConfig SuggestedScheduleConfig `gorm:"type:text" json:"suggested_schedule_config"`
	Status                  string                  `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	ScheduleID              *uuid.UUID              `gorm:"type:uuid;index" json:"schedule_id,omitempty"`
	CreatedAt               time.Time               `gorm:"not null;index" json:"created_at"`
	UpdatedAt               time.Time               `gorm:"not null" json:"updated_at"`

	Account  Account   `gorm:"foreignKey:AccountID" json:"-"`
	Schedule *Schedule `gorm:"foreignKey:ScheduleID" json:"-"`
}

// NewDetectedPattern builds a pending row from a detector result.
func NewDetectedPattern(workspaceID uuid.UUID, p detection.Pattern) *DetectedPattern {
	dp := &DetectedPattern{
		WorkspaceID: workspaceID,
		AccountID:   p.AccountID,
		PatternType: string(p.PatternType),
		PayeeID:     p.PayeeID,
		CategoryID:  p.CategoryID,
		Status:      PatternStatusPending,
	}
	dp.Refresh(p)
	return dp
}

// Refresh overwrites the measured fields with a newer detector result.
// Identity, status and schedule link are left alone.
func (dp *DetectedPattern) Refresh(p detection.Pattern) {
	dp.ConfidenceScore = p.ConfidenceScore
	dp.SampleTransactionIDs = UUIDList(p.SampleTransactionIDs)
	dp.AmountMin = p.AmountMin
	dp.AmountMax = p.AmountMax
	dp.AmountAvg = p.AmountAvg
	dp.IntervalDays = p.IntervalDays
	dp.FirstOccurrence = p.FirstOccurrence
	dp.LastOccurrence = p.LastOccurrence
	dp.NextExpected = p.NextExpected
	dp.OccurrenceCount = p.OccurrenceCount
	dp.SuggestedScheduleConfig = SuggestedScheduleConfig(p.ScheduleConfig)
}

// ScheduleConfig returns the suggested schedule in detector form.
func (dp *DetectedPattern) ScheduleConfig() detection.ScheduleConfig {
	return detection.ScheduleConfig(dp.SuggestedScheduleConfig)
}

// BeforeCreate hook for DetectedPattern
func (dp *DetectedPattern) BeforeCreate(tx *gorm.DB) error {
	if dp.ID == uuid.Nil {
		dp.ID = uuid.New()
	}

	if dp.Status == "" {
		dp.Status = PatternStatusPending
	}

	if dp.SampleTransactionIDs == nil {
		dp.SampleTransactionIDs = UUIDList{}
	}

	now := time.Now()
	if dp.CreatedAt.IsZero() {
		dp.CreatedAt = now
	}
	if dp.UpdatedAt.IsZero() {
		dp.UpdatedAt = now
	}

	return dp.Validate()
}

// Validate validates the pattern fields
func (dp *DetectedPattern) Validate() error {
	if dp.WorkspaceID == uuid.Nil {
		return errors.New("workspace ID is required")
	}

	if dp.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if !detection.IsValidPatternType(detection.PatternType(dp.PatternType)) {
		return ErrInvalidPatternType
	}

	if dp.ConfidenceScore < 0 || dp.ConfidenceScore > 100 {
		return errors.New("confidence score must be between 0 and 100")
	}

	if dp.IntervalDays < 1 {
		return errors.New("interval days must be at least 1")
	}

	if dp.LastOccurrence.IsZero() {
		return errors.New("last occurrence is required")
	}

	if !IsValidPatternStatus(dp.Status) {
		return ErrInvalidPatternStatus
	}

	return nil
}

func (dp *DetectedPattern) IsConverted() bool {
	return dp.Status == PatternStatusConverted
}

// CanTransitionTo checks if a pattern can move to a new review status
func (dp *DetectedPattern) CanTransitionTo(newStatus string) bool {
	validTransitions := map[string][]string{
		PatternStatusPending:   {PatternStatusAccepted, PatternStatusDismissed, PatternStatusConverted},
		PatternStatusAccepted:  {PatternStatusDismissed, PatternStatusConverted},
		PatternStatusDismissed: {},
		PatternStatusConverted: {PatternStatusDismissed},
	}

	allowedStatuses, exists := validTransitions[dp.Status]
	if !exists {
		return false
	}

	return slices.Contains(allowedStatuses, newStatus)
}

// TransitionTo changes the status or returns ErrInvalidPatternTransition.
func (dp *DetectedPattern) TransitionTo(newStatus string) error {
	if !dp.CanTransitionTo(newStatus) {
		return ErrInvalidPatternTransition
	}
	dp.Status = newStatus
	return nil
}

func (dp *DetectedPattern) TableName() string {
	return "detected_patterns"
}

// IsValidPatternStatus checks if the review status is valid
func IsValidPatternStatus(status string) bool {
	switch status {
	case PatternStatusPending, PatternStatusAccepted, PatternStatusDismissed, PatternStatusConverted:
		return true
	default:
		return false
	}
}
