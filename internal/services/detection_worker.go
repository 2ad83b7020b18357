package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

const detectionWorkerService = "detection_worker"

// DetectionWorker periodically re-runs detection for every account of every
// workspace and expires patterns that stopped recurring.
type DetectionWorker struct {
	workspaceRepo   repositories.WorkspaceRepositoryInterface
	accountRepo     repositories.AccountRepositoryInterface
	detector        PatternDetectionServiceInterface
	patterns        PatternServiceInterface
	metrics         MetricsRecorderInterface
	circuitBreaker  CircuitBreakerInterface
	interval        time.Duration
	maxWorkers      int
	workerSemaphore chan struct{}
	logger          *slog.Logger
}

func NewDetectionWorker(
	workspaceRepo repositories.WorkspaceRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	detector PatternDetectionServiceInterface,
	patterns PatternServiceInterface,
	metrics MetricsRecorderInterface,
	circuitBreaker CircuitBreakerInterface,
	interval time.Duration,
	maxWorkers int,
	logger *slog.Logger,
) DetectionWorkerInterface {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	return &DetectionWorker{
		workspaceRepo:   workspaceRepo,
		accountRepo:     accountRepo,
		detector:        detector,
		patterns:        patterns,
		metrics:         metrics,
		circuitBreaker:  circuitBreaker,
		interval:        interval,
		maxWorkers:      maxWorkers,
		workerSemaphore: make(chan struct{}, maxWorkers),
		logger:          logger,
	}
}

// Start sweeps once immediately and then on every tick until ctx is done.
func (w *DetectionWorker) Start(ctx context.Context) {
	w.logger.Info("starting detection worker",
		slog.Duration("interval", w.interval),
		slog.Int("max_workers", w.maxWorkers),
	)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.sweep(ctx)
	for {
		select {
		case <-ctx.Done():
			w.logger.Info("detection worker stopped")
			return
		case <-ticker.C:
			w.sweep(ctx)
		}
	}
}

func (w *DetectionWorker) sweep(ctx context.Context) {
	result, err := w.RunOnce(ctx)
	if err != nil {
		w.logger.Error("detection sweep failed",
			slog.String("error", err.Error()),
		)
		return
	}

	w.logger.Info("detection sweep completed",
		slog.Int("workspaces", result.Workspaces),
		slog.Int("accounts", result.AccountsScanned),
		slog.Int("patterns", result.Detected),
		slog.Int64("expired", result.Expired),
		slog.Int("failures", result.Failures),
	)
}

// RunOnce performs a single sweep. Account failures are counted and never
// stop the other accounts.
func (w *DetectionWorker) RunOnce(ctx context.Context) (*SweepResult, error) {
	if w.circuitBreaker.IsOpen() {
		w.metrics.IncrementCounter("circuit_breaker.open", map[string]string{
			"service": detectionWorkerService,
		})
		return nil, ErrCircuitBreakerOpen
	}

	start := time.Now()
	workspaceIDs, err := w.workspaceRepo.ListIDs()
	if err != nil {
		w.circuitBreaker.RecordFailure()
		return nil, fmt.Errorf("failed to list workspaces: %w", err)
	}

	result := &SweepResult{}
	var mu sync.Mutex
	var wg sync.WaitGroup

	scanned := make([]uuid.UUID, 0, len(workspaceIDs))
	for _, workspaceID := range workspaceIDs {
		if ctx.Err() != nil {
			break
		}

		accounts, err := w.accountRepo.ListByWorkspace(workspaceID)
		if err != nil {
			w.logger.Error("failed to list workspace accounts",
				slog.String("workspace_id", workspaceID.String()),
				slog.String("error", err.Error()),
			)
			w.circuitBreaker.RecordFailure()
			result.Failures++
			continue
		}

		result.Workspaces++
		scanned = append(scanned, workspaceID)
		for _, account := range accounts {
			wg.Add(1)
			go w.detectAccountAsync(ctx, workspaceID, account.ID, result, &mu, &wg)
		}
	}
	wg.Wait()

	var pending int64
	for _, workspaceID := range scanned {
		if ctx.Err() != nil {
			break
		}
		deleted, err := w.patterns.ExpireStale(ctx, workspaceID, 0)
		if err != nil {
			w.logger.Error("failed to expire stale patterns",
				slog.String("workspace_id", workspaceID.String()),
				slog.String("error", err.Error()),
			)
			result.Failures++
			continue
		}
		result.Expired += deleted

		_, total, err := w.patterns.List(ctx, workspaceID, models.PatternFilters{
			Status: models.PatternStatusPending,
			Limit:  1,
		})
		if err == nil {
			pending += total
		}
	}

	w.metrics.RecordGauge("patterns.pending", float64(pending), nil)
	w.metrics.RecordProcessingTime("detection.sweep", time.Since(start))
	if result.Failures == 0 {
		w.circuitBreaker.RecordSuccess()
	}

	return result, ctx.Err()
}

func (w *DetectionWorker) detectAccountAsync(ctx context.Context, workspaceID, accountID uuid.UUID, result *SweepResult, mu *sync.Mutex, wg *sync.WaitGroup) {
	defer wg.Done()

	select {
	case w.workerSemaphore <- struct{}{}:
	case <-ctx.Done():
		return
	}
	defer func() { <-w.workerSemaphore }()

	detected, err := w.detector.DetectPatterns(ctx, workspaceID, accountID, nil)

	mu.Lock()
	defer mu.Unlock()

	if err != nil {
		w.logger.Error("failed to detect patterns",
			slog.String("workspace_id", workspaceID.String()),
			slog.String("account_id", accountID.String()),
			slog.String("error", err.Error()),
		)
		w.circuitBreaker.RecordFailure()
		result.Failures++
		return
	}

	result.AccountsScanned++
	result.Detected += len(detected.Patterns)
}
