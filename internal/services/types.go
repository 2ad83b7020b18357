package services

import (
	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/models"
)

// DetectionResult is the outcome of detection on one account.
type DetectionResult struct {
	AccountID uuid.UUID
	Patterns  []models.DetectedPattern
	Created   int
	Updated   int
}

// AccountDetectionError records why one account of a workspace run failed.
type AccountDetectionError struct {
	AccountID uuid.UUID
	Err       error
}

func (e AccountDetectionError) Error() string {
	return e.AccountID.String() + ": " + e.Err.Error()
}

func (e AccountDetectionError) Unwrap() error {
	return e.Err
}

// DetectionSummary aggregates a workspace-wide run.
type DetectionSummary struct {
	WorkspaceID      uuid.UUID
	AccountsScanned  int
	PatternsDetected int
	Created          int
	Updated          int
	Results          []DetectionResult
	Errors           []AccountDetectionError
}

// MappingInput is one learned string-to-target association. TargetID is an
// account for transfer mappings and a payee for aliases.
type MappingInput struct {
	RawString       string
	TargetID        uuid.UUID
	SourceAccountID *uuid.UUID
	Trigger         string
	Confidence      float64
}

// BulkResult counts rows touched by a bulk import.
type BulkResult struct {
	Created int
	Updated int
}

// SweepResult counts what one background sweep did across workspaces.
type SweepResult struct {
	Workspaces      int
	AccountsScanned int
	Detected        int
	Expired         int64
	Failures        int
}
