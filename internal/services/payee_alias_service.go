package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

// payeeAliasService implements PayeeAliasServiceInterface
type payeeAliasService struct {
	repo      repositories.PayeeAliasRepositoryInterface
	payeeRepo repositories.PayeeRepositoryInterface
	engine    *matching.Engine
	events    PatternEventLoggerInterface
	metrics   MetricsRecorderInterface
	now       func() time.Time
	logger    *slog.Logger
}

// NewPayeeAliasService creates a payee alias service
func NewPayeeAliasService(
	repo repositories.PayeeAliasRepositoryInterface,
	payeeRepo repositories.PayeeRepositoryInterface,
	events PatternEventLoggerInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) PayeeAliasServiceInterface {
	return &payeeAliasService{
		repo:      repo,
		payeeRepo: payeeRepo,
		engine:    matching.NewEngine(candidateSource[models.PayeeAlias, *models.PayeeAlias]{repo: repo}),
		events:    events,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

func (s *payeeAliasService) FindBestMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error) {
	match, err := s.engine.FindBestMatch(workspaceID, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to match payee alias: %w", err)
	}
	recordMatch(s.metrics, MappingKindPayee, match)
	return match, nil
}

func (s *payeeAliasService) ApplyMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error) {
	match, err := s.FindBestMatch(ctx, workspaceID, raw)
	if err != nil || match == nil {
		return nil, err
	}

	if err := s.repo.RecordUsage(workspaceID, match.CandidateID, s.now()); err != nil {
		return nil, fmt.Errorf("failed to record payee alias usage: %w", err)
	}

	s.events.LogMappingApplied(ctx, MappingKindPayee, match.CandidateID, string(match.MatchedOn), match.Confidence)
	return match, nil
}

func (s *payeeAliasService) FindSimilar(ctx context.Context, workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]matching.Suggestion, error) {
	minScore, limit = similarDefaults(minScore, limit)
	suggestions, err := s.engine.FindSimilar(workspaceID, raw, minScore, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to find similar payee aliases: %w", err)
	}
	return suggestions, nil
}

// Create records a confirmed alias, reconfirming the row that already holds
// the raw string if there is one
func (s *payeeAliasService) Create(ctx context.Context, workspaceID uuid.UUID, input MappingInput) (*models.PayeeAlias, error) {
	input, err := normalizeMappingInput(input, models.MappingTriggerManualCreation)
	if err != nil {
		return nil, err
	}
	if err := s.verifyPayee(workspaceID, input.TargetID); err != nil {
		return nil, err
	}

	alias, _, err := confirmLearned[models.PayeeAlias, *models.PayeeAlias](s.repo, &models.PayeeAlias{
		WorkspaceID: workspaceID,
		RawString:   input.RawString,
		PayeeID:     input.TargetID,
		Trigger:     input.Trigger,
		Confidence:  input.Confidence,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save payee alias: %w", err)
	}
	return alias, nil
}

func (s *payeeAliasService) BulkCreate(ctx context.Context, workspaceID uuid.UUID, entries []MappingInput) (*BulkResult, error) {
	if len(entries) == 0 {
		return &BulkResult{}, nil
	}

	verified := make(map[uuid.UUID]bool)
	rows := make([]*models.PayeeAlias, 0, len(entries))
	for i, entry := range entries {
		entry, err := normalizeMappingInput(entry, models.MappingTriggerBulkImport)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if !verified[entry.TargetID] {
			if err := s.verifyPayee(workspaceID, entry.TargetID); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
			verified[entry.TargetID] = true
		}

		rows = append(rows, &models.PayeeAlias{
			WorkspaceID: workspaceID,
			RawString:   entry.RawString,
			PayeeID:     entry.TargetID,
			Trigger:     entry.Trigger,
			Confidence:  entry.Confidence,
		})
	}

	created, updated, err := s.repo.BulkUpsert(workspaceID, rows)
	if err != nil {
		return nil, fmt.Errorf("failed to import payee aliases: %w", err)
	}

	recordBulk(ctx, s.events, s.metrics, MappingKindPayee, workspaceID, created, updated)
	return &BulkResult{Created: created, Updated: updated}, nil
}

func (s *payeeAliasService) List(ctx context.Context, workspaceID uuid.UUID, filters models.MappingFilters) ([]models.PayeeAlias, int64, error) {
	aliases, total, err := s.repo.List(workspaceID, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payee aliases: %w", err)
	}
	return aliases, total, nil
}

func (s *payeeAliasService) Get(ctx context.Context, workspaceID, aliasID uuid.UUID) (*models.PayeeAlias, error) {
	alias, err := s.repo.GetByID(workspaceID, aliasID)
	if err != nil {
		if errors.Is(err, repositories.ErrMappingNotFound) {
			return nil, ErrMappingNotFound
		}
		return nil, fmt.Errorf("failed to get payee alias: %w", err)
	}
	return alias, nil
}

func (s *payeeAliasService) Delete(ctx context.Context, workspaceID, aliasID uuid.UUID) error {
	if err := s.repo.SoftDelete(workspaceID, aliasID); err != nil {
		if errors.Is(err, repositories.ErrMappingNotFound) {
			return ErrMappingNotFound
		}
		return fmt.Errorf("failed to delete payee alias: %w", err)
	}
	return nil
}

func (s *payeeAliasService) PurgeWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error) {
	deleted, err := s.repo.DeleteAllForWorkspace(workspaceID)
	if err != nil {
		return 0, fmt.Errorf("failed to purge payee aliases: %w", err)
	}

	s.logger.Warn("payee aliases purged",
		"workspace_id", workspaceID,
		"deleted", deleted)

	return deleted, nil
}

func (s *payeeAliasService) verifyPayee(workspaceID, payeeID uuid.UUID) error {
	if _, err := s.payeeRepo.GetByID(workspaceID, payeeID); err != nil {
		if errors.Is(err, repositories.ErrPayeeNotFound) {
			return ErrPayeeNotFound
		}
		return fmt.Errorf("failed to verify payee: %w", err)
	}
	return nil
}
