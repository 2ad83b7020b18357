package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/models"
)

var (
	ErrPatternNotFound   = errors.New("detected pattern not found")
	ErrPatternNotPending = errors.New("detected pattern is no longer open for conversion")
)

// Statuses a re-detected pattern is merged into. Accepted and converted rows
// are left alone.
var dedupStatuses = []string{models.PatternStatusPending, models.PatternStatusDismissed}

// patternRepository implements PatternRepositoryInterface
type patternRepository struct {
	db *gorm.DB
}

// NewPatternRepository creates a new detected pattern repository
func NewPatternRepository(db *gorm.DB) PatternRepositoryInterface {
	return &patternRepository{db: db}
}

// GetByID retrieves a pattern within a workspace
func (r *patternRepository) GetByID(workspaceID, id uuid.UUID) (*models.DetectedPattern, error) {
	var pattern models.DetectedPattern
	if err := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&pattern).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get detected pattern: %w", err)
	}
	return &pattern, nil
}

// List retrieves patterns with filtering options, most confident first
func (r *patternRepository) List(workspaceID uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error) {
	var patterns []models.DetectedPattern
	var total int64

	query := r.db.Model(&models.DetectedPattern{}).Where("workspace_id = ?", workspaceID)

	if filters.AccountID != nil {
		query = query.Where("account_id = ?", *filters.AccountID)
	}

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}

	if filters.PatternType != "" {
		query = query.Where("pattern_type = ?", filters.PatternType)
	}

	if filters.MinConfidence > 0 {
		query = query.Where("confidence_score >= ?", filters.MinConfidence)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count detected patterns: %w", err)
	}

	if err := applyPage(query.Order("confidence_score DESC, last_occurrence DESC, id ASC"), filters.Offset, filters.Limit).
		Find(&patterns).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list detected patterns: %w", err)
	}

	return patterns, total, nil
}

func (r *patternRepository) Upsert(pattern *models.DetectedPattern) (bool, error) {
	if pattern == nil {
		return false, errors.New("pattern cannot be nil")
	}

	created := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Where("workspace_id = ? AND account_id = ? AND pattern_type = ? AND status IN ?",
			pattern.WorkspaceID, pattern.AccountID, pattern.PatternType, dedupStatuses)
		query = whereNullable(query, "payee_id", pattern.PayeeID)
		query = whereNullable(query, "category_id", pattern.CategoryID)

		var existing models.DetectedPattern
		err := query.Order("created_at ASC, id ASC").First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pattern.ID = uuid.Nil
			pattern.Status = models.PatternStatusPending
			pattern.ScheduleID = nil
			if err := tx.Create(pattern).Error; err != nil {
				return fmt.Errorf("failed to create detected pattern: %w", err)
			}
			created = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to look up existing pattern: %w", err)
		}

		pattern.ID = existing.ID
		pattern.Status = existing.Status
		pattern.ScheduleID = existing.ScheduleID
		pattern.CreatedAt = existing.CreatedAt
		if err := tx.Save(pattern).Error; err != nil {
			return fmt.Errorf("failed to refresh detected pattern: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	return created, nil
}

// UpdateStatus sets the review status of a pattern
func (r *patternRepository) UpdateStatus(workspaceID, id uuid.UUID, status string) error {
	if !models.IsValidPatternStatus(status) {
		return models.ErrInvalidPatternStatus
	}

	result := r.db.Model(&models.DetectedPattern{}).
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		Update("status", status)
	if result.Error != nil {
		return fmt.Errorf("failed to update pattern status: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPatternNotFound
	}
	return nil
}

// ConvertToSchedule creates the schedule and its date rule, links the
// pattern's sample transactions to it and marks the pattern converted.
// Nothing is written unless every step succeeds.
func (r *patternRepository) ConvertToSchedule(pattern *models.DetectedPattern, schedule *models.Schedule) error {
	if pattern == nil || schedule == nil {
		return errors.New("pattern and schedule are required")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(schedule).Error; err != nil {
			return fmt.Errorf("failed to create schedule: %w", err)
		}

		if ids := []uuid.UUID(pattern.SampleTransactionIDs); len(ids) > 0 {
			if err := tx.Model(&models.Transaction{}).
				Where("account_id = ? AND id IN ?", pattern.AccountID, ids).
				Update("schedule_id", schedule.ID).Error; err != nil {
				return fmt.Errorf("failed to link transactions to schedule: %w", err)
			}
		}

		result := tx.Model(&models.DetectedPattern{}).
			Where("id = ? AND workspace_id = ? AND status IN ?", pattern.ID, pattern.WorkspaceID,
				[]string{models.PatternStatusPending, models.PatternStatusAccepted}).
			Updates(map[string]interface{}{
				"status":      models.PatternStatusConverted,
				"schedule_id": schedule.ID,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to mark pattern converted: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPatternNotPending
		}

		return nil
	})
	if err != nil {
		return err
	}

	pattern.Status = models.PatternStatusConverted
	pattern.ScheduleID = &schedule.ID
	return nil
}

// DismissConverted dismisses a converted pattern and removes what conversion
// created: the schedule, its date rules and the transaction links.
func (r *patternRepository) DismissConverted(pattern *models.DetectedPattern) error {
	if pattern == nil {
		return errors.New("pattern cannot be nil")
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.DetectedPattern{}).
			Where("id = ? AND workspace_id = ? AND status = ?", pattern.ID, pattern.WorkspaceID, models.PatternStatusConverted).
			Updates(map[string]interface{}{
				"status":      models.PatternStatusDismissed,
				"schedule_id": nil,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to dismiss pattern: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPatternNotFound
		}

		if pattern.ScheduleID == nil {
			return nil
		}
		scheduleID := *pattern.ScheduleID

		if err := tx.Model(&models.Transaction{}).
			Where("schedule_id = ?", scheduleID).
			Update("schedule_id", nil).Error; err != nil {
			return fmt.Errorf("failed to unlink schedule transactions: %w", err)
		}

		if err := tx.Where("schedule_id = ?", scheduleID).Delete(&models.ScheduleDate{}).Error; err != nil {
			return fmt.Errorf("failed to delete schedule dates: %w", err)
		}

		if err := tx.Where("id = ? AND workspace_id = ?", scheduleID, pattern.WorkspaceID).
			Delete(&models.Schedule{}).Error; err != nil {
			return fmt.Errorf("failed to delete schedule: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	pattern.Status = models.PatternStatusDismissed
	pattern.ScheduleID = nil
	return nil
}

// Delete permanently removes a pattern
func (r *patternRepository) Delete(workspaceID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).Delete(&models.DetectedPattern{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete detected pattern: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPatternNotFound
	}
	return nil
}

// DeleteStale hard-deletes patterns last seen before cutoff. Converted
// patterns back a schedule and are kept.
func (r *patternRepository) DeleteStale(workspaceID uuid.UUID, cutoff calendar.Date) (int64, error) {
	result := r.db.Where("workspace_id = ? AND last_occurrence < ? AND status <> ?",
		workspaceID, cutoff, models.PatternStatusConverted).
		Delete(&models.DetectedPattern{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete stale patterns: %w", result.Error)
	}
	return result.RowsAffected, nil
}
