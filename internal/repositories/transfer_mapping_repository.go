package repositories

import (
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/models"
)

// NewTransferMappingRepository creates a new transfer mapping repository
func NewTransferMappingRepository(db *gorm.DB) TransferMappingRepositoryInterface {
	return &mappingStore[models.TransferMapping, *models.TransferMapping]{
		db:           db,
		rawColumn:    "raw_payee_string",
		targetColumn: "target_account_id",
		label:        "transfer mapping",
	}
}
