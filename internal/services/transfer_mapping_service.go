package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

const (
	MappingKindTransfer = "transfer"
	MappingKindPayee    = "payee"

	defaultSimilarMinScore = 0.7
	defaultSimilarLimit    = 10
)

var (
	ErrMappingNotFound = errors.New("mapping not found")
	ErrInvalidMapping  = errors.New("invalid mapping")
)

// transferMappingService implements TransferMappingServiceInterface
type transferMappingService struct {
	repo        repositories.TransferMappingRepositoryInterface
	accountRepo repositories.AccountRepositoryInterface
	engine      *matching.Engine
	events      PatternEventLoggerInterface
	metrics     MetricsRecorderInterface
	now         func() time.Time
	logger      *slog.Logger
}

// NewTransferMappingService creates a transfer mapping service
func NewTransferMappingService(
	repo repositories.TransferMappingRepositoryInterface,
	accountRepo repositories.AccountRepositoryInterface,
	events PatternEventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) TransferMappingServiceInterface {
	return &transferMappingService{
		repo:        repo,
		accountRepo: accountRepo,
		engine:      matching.NewEngine(candidateSource[models.TransferMapping, *models.TransferMapping]{repo: repo}),
		events:      events,
		metrics:     metrics,
		now:         time.Now,
		logger:      logger,
	}
}

// FindBestMatch proposes a target account for a raw import string without
// recording any usage. A nil match means nothing applies.
func (s *transferMappingService) FindBestMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error) {
	match, err := s.engine.FindBestMatch(workspaceID, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to match transfer mapping: %w", err)
	}
	recordMatch(s.metrics, MappingKindTransfer, match)
	return match, nil
}

// ApplyMatch resolves the raw string and counts the use on the winning mapping
func (s *transferMappingService) ApplyMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error) {
	match, err := s.FindBestMatch(ctx, workspaceID, raw)
	if err != nil || match == nil {
		return nil, err
	}

	if err := s.repo.RecordUsage(workspaceID, match.CandidateID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to record transfer mapping usage: %w", err)
	}

	s.events.LogMappingApplied(ctx, MappingKindTransfer, match.CandidateID, string(match.MatchedOn), match.Confidence)
	return match, nil
}

func (s *transferMappingService) FindSimilar(ctx context.Context, workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]matching.Suggestion, error) {
	minScore, limit = similarDefaults(minScore, limit)
	suggestions, err := s.engine.FindSimilar(workspaceID, raw, minScore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar transfer mappings: %w", err)
	}
	return suggestions, nil
}

// Create records a confirmed mapping. Confirming a raw string that is
// already mapped retargets the existing row and counts it as a use.
func (s *transferMappingService) Create(ctx context.Context, workspaceID uuid.UUID, input MappingInput) (*models.TransferMapping, error) {
	input, err := normalizeMappingInput(input, models.MappingTriggerManualCreation)
	if err != nil {
		return nil, err
	}
	if err := s.verifyAccounts(workspaceID, input.TargetID, input.SourceAccountID); err != nil {
		return nil, err
	}

	mapping, created, err := confirmLearned[models.TransferMapping, *models.TransferMapping](s.repo, &models.TransferMapping{
		WorkspaceID:     workspaceID,
		RawPayeeString:  input.RawString,
		TargetAccountID: input.TargetID,
		SourceAccountID: input.SourceAccountID,
		Trigger:         input.Trigger,
		Confidence:      input.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save transfer mapping: %w", err)
	}

	if created {
		s.logger.Info("transfer mapping created",
			"workspace_id", workspaceID,
			"mapping_id", mapping.ID,
			"trigger", mapping.Trigger)
	}

	return mapping, nil
}

// BulkCreate imports many mappings in one transaction. sourceAccountID, when
// set, applies to entries that do not carry their own.
func (s *transferMappingService) BulkCreate(ctx context.Context, workspaceID uuid.UUID, entries []MappingInput, sourceAccountID *uuid.UUID) (*BulkResult, error) {
	if len(entries) == 0 {
		return &BulkResult{}, nil
	}

	verified := make(map[uuid.UUID]bool)
	rows := make([]*models.TransferMapping, 0, len(entries))
	for i, entry := range entries {
		entry, err := normalizeMappingInput(entry, models.MappingTriggerBulkImport)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if entry.SourceAccountID == nil {
			entry.SourceAccountID = sourceAccountID
		}

		if !verified[entry.TargetID] {
			if err := s.verifyAccounts(workspaceID, entry.TargetID, nil); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			verified[entry.TargetID] = true
		}

		rows = append(rows, &models.TransferMapping{
			WorkspaceID:     workspaceID,
			RawPayeeString:  entry.RawString,
			TargetAccountID: entry.TargetID,
			SourceAccountID: entry.SourceAccountID,
			Trigger:         entry.Trigger,
			Confidence:      entry.Confidence,
		})
	}

	created, updated, err := s.repo.BulkUpsert(workspaceID, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to import transfer mappings: %w", err)
	}

	recordBulk(ctx, s.events, s.metrics, MappingKindTransfer, workspaceID, created, updated)
	return &BulkResult{Created: created, Updated: updated}, nil
}

func (s *transferMappingService) List(ctx context.Context, workspaceID uuid.UUID, filters models.MappingFilters) ([]models.TransferMapping, int64, error) {
	mappings, total, err := s.repo.List(workspaceID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transfer mappings: %w", err)
	}
	return mappings, total, nil
}

func (s *transferMappingService) Get(ctx context.Context, workspaceID, mappingID uuid.UUID) (*models.TransferMapping, error) {
	mapping, err := s.repo.GetByID(workspaceID, mappingID)
	if err != nil {
		if errors.Is(err, repositories.ErrMappingNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get transfer mapping: %w", err)
	}
	return mapping, nil
}

// Delete soft-deletes the mapping so it no longer takes part in matching
func (s *transferMappingService) Delete(ctx context.Context, workspaceID, mappingID uuid.UUID) error {
	if err := s.repo.SoftDelete(workspaceID, mappingID); err != nil {
		if errors.Is(err, repositories.ErrMappingNotFound) {
			return ErrMappingNotFound
		}
		return fmt.Errorf("failed to delete transfer mapping: %w", err)
	}
	return nil
}

// PurgeWorkspace hard-deletes every transfer mapping of the workspace
func (s *transferMappingService) PurgeWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteAllForWorkspace(workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge transfer mappings: %w", err)
	}

	s.logger.Warn("transfer mappings purged",
		"workspace_id", workspaceID,
		"deleted", deleted)

	return deleted, nil
}

func (s *transferMappingService) verifyAccounts(workspaceID, targetID uuid.UUID, sourceID *uuid.UUID) error {
	ids := []uuid.UUID{targetID}
	if sourceID != nil {
		ids = append(ids, *sourceID)
	}
	for _, id := range ids {
		if _, err := s.accountRepo.GetByID(workspaceID, id); err != nil {
			if errors.Is(err, repositories.ErrAccountNotFound) {
				return ErrAccountNotFound
			}
			return fmt.Errorf("failed to verify account: %w", err)
		}
	}
	return nil
}

// normalizeMappingInput fills defaults and rejects entries that could never
// be stored.
func normalizeMappingInput(input MappingInput, defaultTrigger string) (MappingInput, error) {
	if strings.TrimSpace(input.RawString) == "" {
		return input, fmt.Errorf("%w: %w", ErrInvalidMapping, models.ErrEmptyRawString)
	}
	if input.TargetID == uuid.Nil {
		return input, fmt.Errorf("%w: target is required", ErrInvalidMapping)
	}
	if input.Trigger == "" {
		input.Trigger = defaultTrigger
	}
	if !models.IsValidMappingTrigger(input.Trigger) {
		return input, fmt.Errorf("%w: %w", ErrInvalidMapping, models.ErrInvalidMappingTrigger)
	}
	if input.Confidence == 0 {
		input.Confidence = 1
	}
	if input.Confidence < 0 || input.Confidence > 1 {
		return input, fmt.Errorf("%w: confidence must be between 0 and 1", ErrInvalidMapping)
	}
	return input, nil
}

func similarDefaults(minScore float64, limit int) (float64, int) {
	if minScore <= 0 {
		minScore = defaultSimilarMinScore
	}
	if limit <= 0 {
		limit = defaultSimilarLimit
	}
	return minScore, limit
}

func recordMatch(metrics MetricsRecorderInterface, kind string, match *matching.Match) {
	tier := ""
	if match != nil {
		tier = string(match.MatchedOn)
	}
	metrics.IncrementCounter("mapping.match", map[string]string{
		"kind": kind,
		"tier": tier,
	})
}

func recordBulk(ctx context.Context, events PatternEventLoggerInterface, metrics MetricsRecorderInterface, kind string, workspaceID uuid.UUID, created, updated int) {
	metrics.RecordGauge("mapping.bulk_rows", float64(created), map[string]string{"kind": kind, "result": "created"})
	metrics.RecordGauge("mapping.bulk_rows", float64(updated), map[string]string{"kind": kind, "result": "updated"})
	events.LogBulkImport(ctx, kind, workspaceID, created, updated)
}
