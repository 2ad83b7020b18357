package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

type learnedRow[M any] interface {
	*M
	models.LearnedMapping
}

// learnedRepository is the part of the transfer mapping and payee alias
// repositories the services drive generically
type learnedRepository[M any, PM learnedRow[M]] interface {
	FindByRaw(workspaceID uuid.UUID, raw string) (*M, error)
	FindByNormalized(workspaceID uuid.UUID, normalized string) ([]M, error)
	FindAll(workspaceID uuid.UUID) ([]M, error)
	Create(row PM) error
	Update(row PM) error
}

// candidateSource adapts a learned repository to the matching engine
type candidateSource[M any, PM learnedRow[M]] struct {
	repo learnedRepository[M, PM]
}

func (s candidateSource[M, PM]) FindByRaw(workspaceID uuid.UUID, raw string) (*matching.Candidate, error) {
	row, err := s.repo.FindByRaw(workspaceID, raw)
	if errors.Is(err, repositories.ErrMappingNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	candidate := PM(row).ToCandidate()
	return &candidate, nil
}

func (s candidateSource[M, PM]) FindByNormalized(workspaceID uuid.UUID, normalized string) ([]matching.Candidate, error) {
	rows, err := s.repo.FindByNormalized(workspaceID, normalized)
	if err != nil {
		return nil, err
	}
	return toCandidates[M, PM](rows), nil
}

func (s candidateSource[M, PM]) FindAll(workspaceID uuid.UUID) ([]matching.Candidate, error) {
	rows, err := s.repo.FindAll(workspaceID)
	if err != nil {
		return nil, err
	}
	return toCandidates[M, PM](rows), nil
}

func toCandidates[M any, PM learnedRow[M]](rows []M) []matching.Candidate {
	candidates := make([]matching.Candidate, len(rows))
	for i := range rows {
		candidates[i] = PM(&rows[i]).ToCandidate()
	}
	return candidates
}

// confirmLearned stores row, or reconfirms the live row that already holds
// its raw string. created reports which happened.
func confirmLearned[M any, PM learnedRow[M]](repo learnedRepository[M, PM], row PM) (stored PM, created bool, err error) {
	existing, err := repo.FindByRaw(row.Workspace(), row.Raw())
	if err != nil && !errors.Is(err, repositories.ErrMappingNotFound) {
		return nil, false, fmt.Errorf("failed to look up raw string: %w", err)
	}

	if existing != nil {
		stored = PM(existing)
		stored.Reconfirm(row.Target(), row.Source())
		if err := repo.Update(stored); err != nil {
			return nil, false, fmt.Errorf("failed to reconfirm: %w", err)
		}
		return stored, false, nil
	}

	if err := repo.Create(row); err != nil {
		return nil, false, fmt.Errorf("failed to create: %w", err)
	}
	return row, true, nil
}
