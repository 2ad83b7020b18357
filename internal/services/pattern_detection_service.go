package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrInvalidCriteria = errors.New("invalid detection criteria")
)

// patternDetectionService implements PatternDetectionServiceInterface
type patternDetectionService struct {
	accountRepo     repositories.AccountRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	patternRepo     repositories.PatternRepositoryInterface
	events          PatternEventLoggerInterface
	metrics         MetricsRecorderInterface
	criteria        detection.Criteria
	today           func() calendar.Date
	logger          *slog.Logger
}

// NewPatternDetectionService creates the detection service. criteria is the
// default used when a caller does not pass its own.
func NewPatternDetectionService(
	accountRepo repositories.AccountRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	patternRepo repositories.PatternRepositoryInterface,
	events PatternEventLoggerInterface,
	metrics MetricsRecorderInterface,
	criteria detection.Criteria,
	logger *slog.Logger,
) PatternDetectionServiceInterface {
	return &patternDetectionService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		patternRepo:     patternRepo,
		events:          events,
		metrics:         metrics,
		criteria:        criteria,
		today:           calendar.Today,
		logger:          logger,
	}
}

func (s *patternDetectionService) DefaultCriteria() detection.Criteria {
	return s.criteria
}

func (s *patternDetectionService) resolveCriteria(criteria *detection.Criteria) (detection.Criteria, error) {
	if criteria == nil {
		return s.criteria, nil
	}
	if err := criteria.Validate(); err != nil {
		return detection.Criteria{}, fmt.Errorf("%w: %v", ErrInvalidCriteria, err)
	}
	return *criteria, nil
}

// DetectPatterns loads the account's transactions inside the lookback
// window, runs the detector and persists every pattern found.
func (s *patternDetectionService) DetectPatterns(ctx context.Context, workspaceID, accountID uuid.UUID, criteria *detection.Criteria) (*DetectionResult, error) {
	crit, err := s.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(workspaceID, accountID); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to verify account: %w", err)
	}

	return s.detectAccount(ctx, workspaceID, accountID, crit)
}

func (s *patternDetectionService) detectAccount(ctx context.Context, workspaceID, accountID uuid.UUID, crit detection.Criteria) (*DetectionResult, error) {
	start := time.Now()
	s.events.LogDetectionStarted(ctx, workspaceID, accountID)

	today := s.today()
	rows, err := s.transactionRepo.GetForDetection(accountID, today.AddMonths(-crit.LookbackMonths))
	if err != nil {
		err = fmt.Errorf("failed to load transactions: %w", err)
		s.recordFailure(ctx, workspaceID, accountID, err)
		return nil, err
	}

	txns := make([]detection.Transaction, len(rows))
	for i := range rows {
		txns[i] = rows[i].ToDetection()
	}

	found := detection.Detect(txns, crit, today)

	result := &DetectionResult{
		AccountID: accountID,
		Patterns:  make([]models.DetectedPattern, 0, len(found)),
	}
	for _, p := range found {
		row := models.NewDetectedPattern(workspaceID, p)
		created, err := s.patternRepo.Upsert(row)
		if err != nil {
			err = fmt.Errorf("failed to save detected pattern: %w", err)
			s.recordFailure(ctx, workspaceID, accountID, err)
			return nil, err
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
		result.Patterns = append(result.Patterns, *row)

		s.metrics.IncrementCounter("pattern.detected", map[string]string{
			"pattern_type": row.PatternType,
		})
	}

	duration := time.Since(start)
	s.metrics.RecordProcessingTime("detection.account", duration)
	s.metrics.IncrementCounter("detection.run.success", nil)
	s.events.LogDetectionCompleted(ctx, workspaceID, accountID, len(found), result.Created, result.Updated, duration.Milliseconds())

	return result, nil
}

func (s *patternDetectionService) recordFailure(ctx context.Context, workspaceID, accountID uuid.UUID, err error) {
	s.metrics.IncrementCounter("detection.run.failed", nil)
	s.events.LogDetectionFailed(ctx, workspaceID, accountID, err.Error())
}

// DetectForWorkspace runs detection for each account of the workspace in
// turn. An account that fails is recorded and the run moves on.
func (s *patternDetectionService) DetectForWorkspace(ctx context.Context, workspaceID uuid.UUID, criteria *detection.Criteria) (*DetectionSummary, error) {
	crit, err := s.resolveCriteria(criteria)
	if err != nil {
		return nil, err
	}

	accounts, err := s.accountRepo.ListByWorkspace(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	summary := &DetectionSummary{WorkspaceID: workspaceID}
	for _, account := range accounts {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		summary.AccountsScanned++
		result, err := s.detectAccount(ctx, workspaceID, account.ID, crit)
		if err != nil {
			s.logger.Warn("account detection failed",
				"workspace_id", workspaceID,
				"account_id", account.ID,
				"error", err)
			summary.Errors = append(summary.Errors, AccountDetectionError{AccountID: account.ID, Err: err})
			continue
		}

		summary.Results = append(summary.Results, *result)
		summary.PatternsDetected += len(result.Patterns)
		summary.Created += result.Created
		summary.Updated += result.Updated
	}

	return summary, nil
}
