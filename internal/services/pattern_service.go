package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

var (
	ErrPatternNotFound         = errors.New("detected pattern not found")
	ErrInvalidStatusTransition = errors.New("invalid pattern status transition")
	ErrPatternMissingPayee     = errors.New("pattern has no payee and cannot become a schedule")
	ErrPayeeNotFound           = errors.New("payee not found")
	ErrInvalidMaxAge           = errors.New("max age days must be positive")
)

// patternService implements PatternServiceInterface
type patternService struct {
	patternRepo    repositories.PatternRepositoryInterface
	payeeRepo      repositories.PayeeRepositoryInterface
	scheduleRepo   repositories.ScheduleRepositoryInterface
	events         PatternEventLoggerInterface
	metrics        MetricsRecorderInterface
	staleAfterDays int
	today          func() calendar.Date
	logger         *slog.Logger
}

// NewPatternService creates the review service. staleAfterDays is the
// default age used by ExpireStale.
func NewPatternService(
	patternRepo repositories.PatternRepositoryInterface,
	payeeRepo repositories.PayeeRepositoryInterface,
	scheduleRepo repositories.ScheduleRepositoryInterface,
	events PatternEventLoggerInterface,
	metrics MetricsRecorderInterface,
	staleAfterDays int,
	logger *slog.Logger,
) PatternServiceInterface {
	return &patternService{
		patternRepo:    patternRepo,
		payeeRepo:      payeeRepo,
		scheduleRepo:   scheduleRepo,
		events:         events,
		metrics:        metrics,
		staleAfterDays: staleAfterDays,
		today:          calendar.Today,
		logger:         logger,
	}
}

func (s *patternService) List(ctx context.Context, workspaceID uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error) {
	patterns, total, err := s.patternRepo.List(workspaceID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list patterns: %w", err)
	}
	return patterns, total, nil
}

func (s *patternService) Get(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error) {
	pattern, err := s.patternRepo.GetByID(workspaceID, patternID)
	if err != nil {
		if errors.Is(err, repositories.ErrPatternNotFound) {
			return nil, ErrPatternNotFound
		}
		return nil, fmt.Errorf("failed to get pattern: %w", err)
	}
	return pattern, nil
}

// Accept marks a pending pattern as confirmed without creating a schedule
func (s *patternService) Accept(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error) {
	pattern, err := s.Get(ctx, workspaceID, patternID)
	if err != nil {
		return nil, err
	}

	oldStatus := pattern.Status
	if err := pattern.TransitionTo(models.PatternStatusAccepted); err != nil {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.patternRepo.UpdateStatus(workspaceID, patternID, pattern.Status); err != nil {
		return nil, s.mapWriteError(err, "failed to accept pattern")
	}

	s.recordTransition(ctx, pattern.ID, oldStatus, pattern.Status)
	return pattern, nil
}

// Dismiss hides a pattern from review. Dismissing a converted pattern also
// removes the schedule the conversion created.
func (s *patternService) Dismiss(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.DetectedPattern, error) {
	pattern, err := s.Get(ctx, workspaceID, patternID)
	if err != nil {
		return nil, err
	}

	oldStatus := pattern.Status
	wasConverted := pattern.IsConverted()
	if err := pattern.TransitionTo(models.PatternStatusDismissed); err != nil {
		return nil, ErrInvalidStatusTransition
	}

	if wasConverted {
		if err := s.patternRepo.DismissConverted(pattern); err != nil {
			return nil, s.mapWriteError(err, "failed to dismiss converted pattern")
		}
	} else if err := s.patternRepo.UpdateStatus(workspaceID, patternID, pattern.Status); err != nil {
		return nil, s.mapWriteError(err, "failed to dismiss pattern")
	}

	s.recordTransition(ctx, pattern.ID, oldStatus, pattern.Status)
	return pattern, nil
}

// ConvertPattern turns a pending or accepted pattern into an active schedule
// and links the pattern's sample transactions to it.
func (s *patternService) ConvertPattern(ctx context.Context, workspaceID, patternID uuid.UUID) (*models.Schedule, error) {
	pattern, err := s.Get(ctx, workspaceID, patternID)
	if err != nil {
		return nil, err
	}

	if !pattern.CanTransitionTo(models.PatternStatusConverted) {
		return nil, ErrInvalidStatusTransition
	}
	if pattern.PayeeID == nil {
		return nil, ErrPatternMissingPayee
	}

	payee, err := s.payeeRepo.GetByID(workspaceID, *pattern.PayeeID)
	if err != nil {
		if errors.Is(err, repositories.ErrPayeeNotFound) {
			return nil, ErrPayeeNotFound
		}
		return nil, fmt.Errorf("failed to load payee: %w", err)
	}

	cfg := pattern.ScheduleConfig()
	cfg.Name = detection.SuggestName(payee.Name, cfg.Frequency, cfg.Interval)

	schedule := models.NewScheduleFromConfig(workspaceID, pattern.AccountID, *pattern.PayeeID, pattern.CategoryID, cfg)

	oldStatus := pattern.Status
	if err := s.patternRepo.ConvertToSchedule(pattern, schedule); err != nil {
		if errors.Is(err, repositories.ErrPatternNotPending) {
			return nil, ErrInvalidStatusTransition
		}
		return nil, fmt.Errorf("failed to convert pattern: %w", err)
	}

	s.recordTransition(ctx, pattern.ID, oldStatus, models.PatternStatusConverted)
	s.events.LogPatternConverted(ctx, pattern.ID, schedule.ID, len(pattern.SampleTransactionIDs))

	s.logger.Info("pattern converted to schedule",
		"pattern_id", pattern.ID,
		"schedule_id", schedule.ID,
		"name", schedule.Name)

	stored, err := s.scheduleRepo.GetByID(workspaceID, schedule.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load converted schedule: %w", err)
	}
	return stored, nil
}

func (s *patternService) Delete(ctx context.Context, workspaceID, patternID uuid.UUID) error {
	if err := s.patternRepo.Delete(workspaceID, patternID); err != nil {
		return s.mapWriteError(err, "failed to delete pattern")
	}
	return nil
}

// ExpireStale removes patterns whose last occurrence is older than
// maxAgeDays. Converted patterns are kept.
func (s *patternService) ExpireStale(ctx context.Context, workspaceID uuid.UUID, maxAgeDays int) (int64, error) {
	if maxAgeDays == 0 {
		maxAgeDays = s.staleAfterDays
	}
	if maxAgeDays <= 0 {
		return 0, ErrInvalidMaxAge
	}

	cutoff := s.today().AddDays(-maxAgeDays)
	deleted, err := s.patternRepo.DeleteStale(workspaceID, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to expire stale patterns: %w", err)
	}

	if deleted > 0 {
		s.metrics.RecordGauge("patterns.stale_deleted", float64(deleted), nil)
	}
	s.events.LogStalePatternsExpired(ctx, workspaceID, cutoff.String(), deleted)

	return deleted, nil
}

func (s *patternService) recordTransition(ctx context.Context, patternID uuid.UUID, oldStatus, newStatus string) {
	s.events.LogPatternStatusChange(ctx, patternID, oldStatus, newStatus)
	s.metrics.IncrementCounter("pattern.transition", map[string]string{
		"status": newStatus,
	})
}

func (s *patternService) mapWriteError(err error, msg string) error {
	if errors.Is(err, repositories.ErrPatternNotFound) {
		return ErrPatternNotFound
	}
	return fmt.Errorf("%s: %w", msg, err)
}
