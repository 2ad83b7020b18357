package repositories

import (
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/models"
)

// WorkspaceRepositoryInterface defines the contract for workspace repository operations
type WorkspaceRepositoryInterface interface {
	Create(workspace *models.Workspace) error
	GetByID(id uuid.UUID) (*models.Workspace, error)
	ListIDs() ([]uuid.UUID, error)
}

// AccountRepositoryInterface defines the contract for account repository operations.
// Lookups outside the given workspace behave as not found.
type AccountRepositoryInterface interface {
	Create(account *models.Account) error
	GetByID(workspaceID, id uuid.UUID) (*models.Account, error)
	ListByWorkspace(workspaceID uuid.UUID) ([]models.Account, error)
}

// PayeeRepositoryInterface defines the contract for payee repository operations
type PayeeRepositoryInterface interface {
	Create(payee *models.Payee) error
	GetByID(workspaceID, id uuid.UUID) (*models.Payee, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetByScheduleID(scheduleID uuid.UUID) ([]models.Transaction, error)
	// GetForDetection returns live transactions of the account dated on or
	// after since, ordered by date then id.
	GetForDetection(accountID uuid.UUID, since calendar.Date) ([]models.Transaction, error)
}

// PatternRepositoryInterface defines the contract for detected pattern persistence
type PatternRepositoryInterface interface {
	GetByID(workspaceID, id uuid.UUID) (*models.DetectedPattern, error)
	List(workspaceID uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error)
	// Upsert refreshes a pending or dismissed pattern with the same identity
	// in place, or inserts a new pending one. created reports which happened.
	Upsert(pattern *models.DetectedPattern) (created bool, err error)
	UpdateStatus(workspaceID, id uuid.UUID, status string) error
	ConvertToSchedule(pattern *models.DetectedPattern, schedule *models.Schedule) error
	DismissConverted(pattern *models.DetectedPattern) error
	Delete(workspaceID, id uuid.UUID) error
	DeleteStale(workspaceID uuid.UUID, cutoff calendar.Date) (int64, error)
}

// ScheduleRepositoryInterface defines the contract for schedule lookups
type ScheduleRepositoryInterface interface {
	GetByID(workspaceID, id uuid.UUID) (*models.Schedule, error)
}

// TransferMappingRepositoryInterface defines the contract for learned transfer mappings
type TransferMappingRepositoryInterface interface {
	FindByRaw(workspaceID uuid.UUID, raw string) (*models.TransferMapping, error)
	FindByNormalized(workspaceID uuid.UUID, normalized string) ([]models.TransferMapping, error)
	FindAll(workspaceID uuid.UUID) ([]models.TransferMapping, error)
	List(workspaceID uuid.UUID, filters models.MappingFilters) ([]models.TransferMapping, int64, error)
	GetByID(workspaceID, id uuid.UUID) (*models.TransferMapping, error)
	Create(mapping *models.TransferMapping) error
	Update(mapping *models.TransferMapping) error
	RecordUsage(workspaceID, id uuid.UUID, appliedAt time.Time) error
	BulkUpsert(workspaceID uuid.UUID, mappings []*models.TransferMapping) (created, updated int, err error)
	SoftDelete(workspaceID, id uuid.UUID) error
	DeleteAllForWorkspace(workspaceID uuid.UUID) (int64, error)
}

// PayeeAliasRepositoryInterface defines the contract for learned payee aliases
type PayeeAliasRepositoryInterface interface {
	FindByRaw(workspaceID uuid.UUID, raw string) (*models.PayeeAlias, error)
	FindByNormalized(workspaceID uuid.UUID, normalized string) ([]models.PayeeAlias, error)
	FindAll(workspaceID uuid.UUID) ([]models.PayeeAlias, error)
	List(workspaceID uuid.UUID, filters models.MappingFilters) ([]models.PayeeAlias, int64, error)
	GetByID(workspaceID, id uuid.UUID) (*models.PayeeAlias, error)
	Create(alias *models.PayeeAlias) error
	Update(alias *models.PayeeAlias) error
	RecordUsage(workspaceID, id uuid.UUID, appliedAt time.Time) error
	BulkUpsert(workspaceID uuid.UUID, aliases []*models.PayeeAlias) (created, updated int, err error)
	SoftDelete(workspaceID, id uuid.UUID) error
	DeleteAllForWorkspace(workspaceID uuid.UUID) (int64, error)
}
