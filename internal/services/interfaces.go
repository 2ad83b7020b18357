package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
)

// PatternDetectionServiceInterface runs the detector over stored transactions
// and persists what it finds.
type PatternDetectionServiceInterface interface {
	// DetectPatterns analyzes one account. A nil criteria uses the configured defaults.
	DetectPatterns(ctx context.Context, workspaceID, accountID uuid.UUID, criteria *detection.Criteria) (*DetectionResult, error)

	// DetectForWorkspace analyzes every account of the workspace. Per-account
	// failures are reported in the summary and do not stop the run.
	DetectForWorkspace(ctx context.Context, workspaceID uuid.UUID, criteria *detection.Criteria) (*DetectionSummary, error)

	// DefaultCriteria returns the configured criteria request overrides apply to.
	DefaultCriteria() detection.Criteria
}

// PatternServiceInterface drives the review lifecycle of detected patterns
type PatternServiceInterface interface {
	List(ctx context.Context, workspaceID uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error)
	Get(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error)
	Accept(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error)
	Dismiss(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error)
	ConvertPattern(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.Schedule, error)
	Delete(ctx context.Context, workspaceID, patternID uuid.UUID) error
	// ExpireStale deletes non-converted patterns not seen for maxAgeDays.
	// Zero uses the configured default.
	ExpireStale(ctx context.Context, workspaceID uuid.UUID, maxAgeDays int) (int64, error)
}

// TransferMappingServiceInterface resolves raw import strings to transfer
// target accounts and maintains the learned mappings.
type TransferMappingServiceInterface interface {
	FindBestMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	ApplyMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	FindSimilar(ctx context.Context, workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]matching.Suggestion, error)
	Create(ctx context.Context, workspaceID uuid.UUID, input MappingInput) (*models.TransferMapping, error)
	BulkCreate(ctx context.Context, workspaceID uuid.UUID, entries []MappingInput, sourceAccountID *uuid.UUID) (*BulkResult, error)
	List(ctx context.Context, workspaceID uuid.UUID, filters models.MappingFilters) ([]models.TransferMapping, int64, error)
	Get(ctx context.Context, workspaceID, mappingID uuid.UUID) (*models.TransferMapping, error)
	Delete(ctx context.Context, workspaceID, mappingID uuid.UUID) error
	PurgeWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

// PayeeAliasServiceInterface resolves raw import strings to canonical payees
type PayeeAliasServiceInterface interface {
	FindBestMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	ApplyMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	FindSimilar(ctx context.Context, workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]matching.Suggestion, error)
	Create(ctx context.Context, workspaceID uuid.UUID, input MappingInput) (*models.PayeeAlias, error)
	BulkCreate(ctx context.Context, workspaceID uuid.UUID, entries []MappingInput) (*BulkResult, error)
	List(ctx context.Context, workspaceID uuid.UUID, filters models.MappingFilters) ([]models.PayeeAlias, int64, error)
	Get(ctx context.Context, workspaceID, aliasID uuid.UUID) (*models.PayeeAlias, error)
	Delete(ctx context.Context, workspaceID, aliasID uuid.UUID) error
	PurgeWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

// DetectionWorkerInterface sweeps every workspace on an interval
type DetectionWorkerInterface interface {
	Start(ctx context.Context)
	RunOnce(ctx context.Context) (*SweepResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type PatternEventLoggerInterface interface {
	LogDetectionStarted(ctx context.Context, workspaceID, accountID uuid.UUID)
	LogDetectionCompleted(ctx context.Context, workspaceID, accountID uuid.UUID, detected, created, updated int, durationMs int64)
	LogDetectionFailed(ctx context.Context, workspaceID, accountID uuid.UUID, errorMsg string)
	LogPatternStatusChange(ctx context.Context, patternID uuid.UUID, oldStatus, newStatus string)
	LogPatternConverted(ctx context.Context, patternID, scheduleID uuid.UUID, linkedTransactions int)
	LogStalePatternsExpired(ctx context.Context, workspaceID uuid.UUID, cutoff string, deleted int64)
	LogMappingApplied(ctx context.Context, kind string, mappingID uuid.UUID, tier string, confidence float64)
	LogBulkImport(ctx context.Context, kind string, workspaceID uuid.UUID, created, updated int)
	LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string)
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() BreakerState
	Reset()
	GetFailureCount() int
}
