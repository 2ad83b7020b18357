package repositories

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/models"
)

var (
	ErrMappingNotFound = errors.New("mapping not found")
	ErrMappingExists   = errors.New("mapping for raw string already exists")
)

// learnedRow ties a mapping model to its pointer, which carries the
// LearnedMapping methods
type learnedRow[M any] interface {
	*M
	models.LearnedMapping
}

// mappingStore is the gorm persistence shared by transfer mappings and payee
// aliases. Only the raw and target column names differ between the tables.
type mappingStore[M any, PM learnedRow[M]] struct {
	db           *gorm.DB
	rawColumn    string
	targetColumn string
	label        string
}

func (r *mappingStore[M, PM]) FindByRaw(workspaceID uuid.UUID, raw string) (*M, error) {
	var row M
	if err := r.db.Where("workspace_id = ? AND "+r.rawColumn+" = ?", workspaceID, raw).
		Order("created_at ASC").
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to find %s by raw string: %w", r.label, err)
	}
	return &row, nil
}

func (r *mappingStore[M, PM]) FindByNormalized(workspaceID uuid.UUID, normalized string) ([]M, error) {
	var rows []M
	if err := r.db.Where("workspace_id = ? AND normalized_string = ?", workspaceID, normalized).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to find %s by normalized string: %w", r.label, err)
	}
	return rows, nil
}

func (r *mappingStore[M, PM]) FindAll(workspaceID uuid.UUID) ([]M, error) {
	var rows []M
	if err := r.db.Where("workspace_id = ?", workspaceID).
		Order("created_at ASC, id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list %s rows: %w", r.label, err)
	}
	return rows, nil
}

// List retrieves rows with filtering options, most used first
func (r *mappingStore[M, PM]) List(workspaceID uuid.UUID, filters models.MappingFilters) ([]M, int64, error) {
	var rows []M
	var total int64

	query := r.db.Model(new(M)).Where("workspace_id = ?", workspaceID)

	if filters.TargetID != nil {
		query = query.Where(r.targetColumn+" = ?", *filters.TargetID)
	}

	if filters.Search != "" {
		query = query.Where("normalized_string LIKE ?", "%"+strings.ToLower(filters.Search)+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count %s rows: %w", r.label, err)
	}

	if err := applyPage(query.Order("match_count DESC, created_at ASC"), filters.Offset, filters.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list %s rows: %w", r.label, err)
	}

	return rows, total, nil
}

func (r *mappingStore[M, PM]) GetByID(workspaceID, id uuid.UUID) (*M, error) {
	var row M
	if err := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.label, err)
	}
	return &row, nil
}

func (r *mappingStore[M, PM]) Create(row PM) error {
	if row == nil {
		return fmt.Errorf("%s cannot be nil", r.label)
	}

	if err := r.db.Create(row).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isDuplicateKeyError(err) {
			return ErrMappingExists
		}
		return fmt.Errorf("failed to create %s: %w", r.label, err)
	}
	return nil
}

func (r *mappingStore[M, PM]) Update(row PM) error {
	if row == nil {
		return fmt.Errorf("%s cannot be nil", r.label)
	}

	row.Renormalize()
	if err := row.Validate(); err != nil {
		return err
	}
	if err := r.db.Save(row).Error; err != nil {
		return fmt.Errorf("failed to update %s: %w", r.label, err)
	}
	return nil
}

// RecordUsage bumps the match count and stamps the last applied time
func (r *mappingStore[M, PM]) RecordUsage(workspaceID, id uuid.UUID, appliedAt time.Time) error {
	result := r.db.Model(new(M)).
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		Updates(map[string]interface{}{
			"match_count":     gorm.Expr("match_count + 1"),
			"last_applied_at": appliedAt,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to record %s usage: %w", r.label, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMappingNotFound
	}
	return nil
}

// BulkUpsert creates or reconfirms rows keyed by exact raw string in one
// transaction. An existing row only takes the new target (and source, when
// one is given) and counts another use; each slice element is replaced by
// the stored row.
func (r *mappingStore[M, PM]) BulkUpsert(workspaceID uuid.UUID, rows []PM) (int, int, error) {
	created, updated := 0, 0

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, row := range rows {
			row.AssignWorkspace(workspaceID)

			var existing M
			err := tx.Where("workspace_id = ? AND "+r.rawColumn+" = ?", workspaceID, row.Raw()).
				First(&existing).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				if err := tx.Create(row).Error; err != nil {
					return fmt.Errorf("failed to create %s %q: %w", r.label, row.Raw(), err)
				}
				created++
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to look up %s %q: %w", r.label, row.Raw(), err)
			}

			stored := PM(&existing)
			stored.Reconfirm(row.Target(), row.Source())
			if err := stored.Validate(); err != nil {
				return fmt.Errorf("invalid %s %q: %w", r.label, row.Raw(), err)
			}
			if err := tx.Save(stored).Error; err != nil {
				return fmt.Errorf("failed to update %s %q: %w", r.label, row.Raw(), err)
			}
			*row = existing
			updated++
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}

	return created, updated, nil
}

// SoftDelete hides a row from matching
func (r *mappingStore[M, PM]) SoftDelete(workspaceID, id uuid.UUID) error {
	result := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).Delete(new(M))
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.label, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMappingNotFound
	}
	return nil
}

// DeleteAllForWorkspace permanently removes every row of a workspace,
// soft-deleted rows included
func (r *mappingStore[M, PM]) DeleteAllForWorkspace(workspaceID uuid.UUID) (int64, error) {
	result := r.db.Unscoped().Where("workspace_id = ?", workspaceID).Delete(new(M))
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge %s rows: %w", r.label, result.Error)
	}
	return result.RowsAffected, nil
}
