package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/models"
)

var (
	ErrWorkspaceNotFound = errors.New("workspace not found")
	ErrAccountNotFound   = errors.New("account not found")
	ErrPayeeNotFound     = errors.New("payee not found")
)

type workspaceRepository struct {
	db *gorm.DB
}

// NewWorkspaceRepository creates a new workspace repository
func NewWorkspaceRepository(db *gorm.DB) WorkspaceRepositoryInterface {
	return &workspaceRepository{db: db}
}

func (r *workspaceRepository) Create(workspace *models.Workspace) error {
	if err := r.db.Create(workspace).Error; err != nil {
		return fmt.Errorf("failed to create workspace: %w", err)
	}
	return nil
}

func (r *workspaceRepository) GetByID(id uuid.UUID) (*models.Workspace, error) {
	var workspace models.Workspace
	if err := r.db.Where("id = ?", id).First(&workspace).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkspaceNotFound
		}
		return nil, fmt.Errorf("failed to get workspace: %w", err)
	}
	return &workspace, nil
}

// ListIDs returns every live workspace id, oldest first
func (r *workspaceRepository) ListIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	if err := r.db.Model(&models.Workspace{}).
		Order("created_at ASC").
		Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}
	return ids, nil
}

// accountRepository implements AccountRepositoryInterface
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) AccountRepositoryInterface {
	return &accountRepository{db: db}
}

// Create creates a new account
func (r *accountRepository) Create(account *models.Account) error {
	if err := r.db.Create(account).Error; err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetByID retrieves an account within a workspace
func (r *accountRepository) GetByID(workspaceID, id uuid.UUID) (*models.Account, error) {
	var account models.Account
	if err := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return &account, nil
}

// ListByWorkspace retrieves every live account of a workspace by name
func (r *accountRepository) ListByWorkspace(workspaceID uuid.UUID) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.Where("workspace_id = ?", workspaceID).
		Order("name ASC, id ASC").
		Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

type payeeRepository struct {
	db *gorm.DB
}

// NewPayeeRepository creates a new payee repository
func NewPayeeRepository(db *gorm.DB) PayeeRepositoryInterface {
	return &payeeRepository{db: db}
}

func (r *payeeRepository) Create(payee *models.Payee) error {
	if err := r.db.Create(payee).Error; err != nil {
		return fmt.Errorf("failed to create payee: %w", err)
	}
	return nil
}

func (r *payeeRepository) GetByID(workspaceID, id uuid.UUID) (*models.Payee, error) {
	var payee models.Payee
	if err := r.db.Where("id = ? AND workspace_id = ?", id, workspaceID).First(&payee).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to get payee: %w", err)
	}
	return &payee, nil
}
