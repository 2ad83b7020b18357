package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/models"
)

var ErrScheduleNotFound = errors.New("schedule not found")

type scheduleRepository struct {
	db *gorm.DB
}

// NewScheduleRepository creates a new schedule repository
func NewScheduleRepository(db *gorm.DB) ScheduleRepositoryInterface {
	return &scheduleRepository{db: db}
}

// GetByID retrieves a schedule with its date rules
func (r *scheduleRepository) GetByID(workspaceID, id uuid.UUID) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.db.Preload("Dates").
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return &schedule, nil
}
