package models

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/matching"
)

// How a learned mapping came to exist. The trigger is fixed at creation.
const (
	MappingTriggerImportConfirmation = "import_confirmation"
	MappingTriggerTransactionEdit    = "transaction_edit"
	MappingTriggerManualCreation     = "manual_creation"
	MappingTriggerBulkImport         = "bulk_import"
)

var (
	ErrInvalidMappingTrigger = errors.New("invalid mapping trigger")
	ErrEmptyRawString        = errors.New("raw string is required")
)

// LearnedMapping is what TransferMapping and PayeeAlias share: a raw import
// string remembered against a target, fed to the matching engine.
type LearnedMapping interface {
	Workspace() uuid.UUID
	AssignWorkspace(id uuid.UUID)
	Raw() string
	Target() uuid.UUID
	Source() *uuid.UUID
	Renormalize()
	// Reconfirm records another confirmation of the same raw string. Only the
	// target, the optional source, the match count and the normalized form
	// change; trigger and confidence keep their stored values.
	Reconfirm(target uuid.UUID, source *uuid.UUID)
	Validate() error
	ToCandidate() matching.Candidate
}

var (
	_ LearnedMapping = (*TransferMapping)(nil)
	_ LearnedMapping = (*PayeeAlias)(nil)
)

// IsValidMappingTrigger checks if the trigger is one of the known sources
func IsValidMappingTrigger(trigger string) bool {
	switch trigger {
	case MappingTriggerImportConfirmation, MappingTriggerTransactionEdit,
		MappingTriggerManualCreation, MappingTriggerBulkImport:
		return true
	default:
		return false
	}
}
