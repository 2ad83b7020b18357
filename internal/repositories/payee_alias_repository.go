package repositories

import (
	"gorm.io/gorm"

	"github.com/robertromore/budget-sub015/internal/models"
)

// NewPayeeAliasRepository creates a new payee alias repository
func NewPayeeAliasRepository(db *gorm.DB) PayeeAliasRepositoryInterface {
	return &mappingStore[models.PayeeAlias, *models.PayeeAlias]{
		db:           db,
		rawColumn:    "raw_string",
		targetColumn: "payee_id",
		label:        "payee alias",
	}
}
