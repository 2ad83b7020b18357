package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

type contextKey string

// CorrelationIDKey carries the request trace id into service calls
const CorrelationIDKey contextKey = "correlation_id"

// WithCorrelationID returns a context whose events are tagged with id
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CorrelationIDKey, id)
}

type PatternEventLogger struct {
	logger *slog.Logger
}

func NewPatternEventLogger(logger *slog.Logger) PatternEventLoggerInterface {
	return &PatternEventLogger{
		logger: logger,
	}
}

func (l *PatternEventLogger) LogDetectionStarted(ctx context.Context, workspaceID, accountID uuid.UUID) {
	l.logger.InfoContext(ctx, "pattern detection started",
		slog.String("event_type", "detection_started"),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("account_id", accountID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogDetectionCompleted(ctx context.Context, workspaceID, accountID uuid.UUID, detected, created, updated int, durationMs int64) {
	l.logger.InfoContext(ctx, "pattern detection completed",
		slog.String("event_type", "detection_completed"),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("account_id", accountID.String()),
		slog.Int("detected", detected),
		slog.Int("created", created),
		slog.Int("updated", updated),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogDetectionFailed(ctx context.Context, workspaceID, accountID uuid.UUID, errorMsg string) {
	l.logger.WarnContext(ctx, "pattern detection failed",
		slog.String("event_type", "detection_failed"),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("account_id", accountID.String()),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogPatternStatusChange(ctx context.Context, patternID uuid.UUID, oldStatus, newStatus string) {
	l.logger.InfoContext(ctx, "pattern status change",
		slog.String("event_type", "pattern_status_change"),
		slog.String("pattern_id", patternID.String()),
		slog.String("old_status", oldStatus),
		slog.String("new_status", newStatus),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogPatternConverted(ctx context.Context, patternID, scheduleID uuid.UUID, linkedTransactions int) {
	l.logger.InfoContext(ctx, "pattern converted to schedule",
		slog.String("event_type", "pattern_converted"),
		slog.String("pattern_id", patternID.String()),
		slog.String("schedule_id", scheduleID.String()),
		slog.Int("linked_transactions", linkedTransactions),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogStalePatternsExpired(ctx context.Context, workspaceID uuid.UUID, cutoff string, deleted int64) {
	l.logger.InfoContext(ctx, "stale patterns expired",
		slog.String("event_type", "stale_patterns_expired"),
		slog.String("workspace_id", workspaceID.String()),
		slog.String("cutoff", cutoff),
		slog.Int64("deleted", deleted),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogMappingApplied(ctx context.Context, kind string, mappingID uuid.UUID, tier string, confidence float64) {
	l.logger.InfoContext(ctx, "mapping applied",
		slog.String("event_type", "mapping_applied"),
		slog.String("kind", kind),
		slog.String("mapping_id", mappingID.String()),
		slog.String("matched_on", tier),
		slog.Float64("confidence", confidence),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogBulkImport(ctx context.Context, kind string, workspaceID uuid.UUID, created, updated int) {
	l.logger.InfoContext(ctx, "mapping bulk import",
		slog.String("event_type", "mapping_bulk_import"),
		slog.String("kind", kind),
		slog.String("workspace_id", workspaceID.String()),
		slog.Int("created", created),
		slog.Int("updated", updated),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (l *PatternEventLogger) LogCircuitBreakerStateChange(ctx context.Context, service string, oldState, newState string) {
	l.logger.WarnContext(ctx, "circuit breaker state change",
		slog.String("event_type", "circuit_breaker_state_change"),
		slog.String("service", service),
		slog.String("old_state", oldState),
		slog.String("new_state", newState),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(CorrelationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
