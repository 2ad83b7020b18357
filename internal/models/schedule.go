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

const (
	ScheduleStatusActive = "active"
	ScheduleStatusPaused = "paused"
)

var ErrInvalidScheduleStatus = errors.New("invalid schedule status")

// Schedule is an expected recurring transaction. Its recurrence rule lives
// in ScheduleDate rows.
type Schedule struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	WorkspaceID uuid.UUID        `gorm:"type:uuid;not null;index" json:"workspace_id"`
	AccountID   uuid.UUID        `gorm:"type:uuid;not null;index" json:"account_id"`
	PayeeID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"payee_id"`
	CategoryID  *uuid.UUID       `gorm:"type:uuid" json:"category_id,omitempty"`
	Name        string           `gorm:"type:varchar(255);not null" json:"name"`
	AmountType  string           `gorm:"type:varchar(20);not null" json:"amount_type"`
	Amount      decimal.Decimal  `gorm:"type:decimal(15,2);not null" json:"amount"`
	Amount2     *decimal.Decimal `gorm:"type:decimal(15,2)" json:"amount_2,omitempty"`
	Recurring   bool             `gorm:"not null" json:"recurring"`
	AutoAdd     bool             `gorm:"not null;default:false" json:"auto_add"`
	Status      string           `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt   time.Time        `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time        `gorm:"not null" json:"updated_at"`

	Dates []ScheduleDate `gorm:"foreignKey:ScheduleID;constraint:OnDelete:CASCADE" json:"dates,omitempty"`
}

// ScheduleDate is the recurrence rule of a schedule.
type ScheduleDate struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ScheduleID uuid.UUID      `gorm:"type:uuid;not null;index" json:"schedule_id"`
	Frequency  string         `gorm:"type:varchar(20);not null" json:"frequency"`
	Interval   int            `gorm:"column:interval_count;not null;default:1" json:"interval"`
	StartDate  calendar.Date  `gorm:"type:date;not null" json:"start_date"`
	EndDate    *calendar.Date `gorm:"type:date" json:"end_date,omitempty"`
	CreatedAt  time.Time      `gorm:"not null" json:"created_at"`
}

// NewScheduleFromConfig builds an active schedule from a pattern's suggested
// configuration. Recurring configs get a single open-ended date rule.
func NewScheduleFromConfig(workspaceID, accountID, payeeID uuid.UUID, categoryID *uuid.UUID, cfg detection.ScheduleConfig) *Schedule {
	s := &Schedule{
		WorkspaceID: workspaceID,
		AccountID:   accountID,
		PayeeID:     payeeID,
		CategoryID:  categoryID,
		Name:        cfg.Name,
		AmountType:  string(cfg.AmountType),
		Amount:      cfg.Amount,
		Amount2:     cfg.Amount2,
		Recurring:   cfg.Recurring,
		AutoAdd:     cfg.AutoAdd,
		Status:      ScheduleStatusActive,
	}
	if cfg.Recurring {
		s.Dates = []ScheduleDate{{
			Frequency: string(cfg.Frequency),
			Interval:  cfg.Interval,
			StartDate: cfg.StartDate,
		}}
	}
	return s
}

// BeforeCreate hook for Schedule
func (s *Schedule) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}

	if s.Status == "" {
		s.Status = ScheduleStatusActive
	}

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	return s.Validate()
}

// Validate validates the schedule fields
func (s *Schedule) Validate() error {
	if s.WorkspaceID == uuid.Nil {
		return errors.New("workspace ID is required")
	}

	if s.AccountID == uuid.Nil {
		return errors.New("account ID is required")
	}

	if s.PayeeID == uuid.Nil {
		return errors.New("payee ID is required")
	}

	if s.Name == "" {
		return errors.New("schedule name is required")
	}

	switch detection.AmountType(s.AmountType) {
	case detection.AmountTypeExact, detection.AmountTypeApproximate:
	case detection.AmountTypeRange:
		if s.Amount2 == nil {
			return errors.New("range schedules require a second amount")
		}
	default:
		return errors.New("invalid amount type")
	}

	if s.Status != ScheduleStatusActive && s.Status != ScheduleStatusPaused {
		return ErrInvalidScheduleStatus
	}

	return nil
}

func (s *Schedule) TableName() string {
	return "schedules"
}

// BeforeCreate hook for ScheduleDate
func (sd *ScheduleDate) BeforeCreate(tx *gorm.DB) error {
	if sd.ID == uuid.Nil {
		sd.ID = uuid.New()
	}

	if sd.Interval < 1 {
		sd.Interval = 1
	}

	if sd.CreatedAt.IsZero() {
		sd.CreatedAt = time.Now()
	}

	if !detection.IsValidPatternType(detection.PatternType(sd.Frequency)) {
		return errors.New("invalid schedule frequency")
	}
	if sd.StartDate.IsZero() {
		return errors.New("schedule start date is required")
	}
	return nil
}

func (sd *ScheduleDate) TableName() string {
	return "schedule_dates"
}
