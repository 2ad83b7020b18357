package matching

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const (
	normalizedConfidenceFactor = 0.9
	cleanedConfidenceFactor    = 0.8
	minCleanedLength           = 3
)

// Tier records which resolution step produced a match.
type Tier string

const (
	TierExact      Tier = "exact"
	TierNormalized Tier = "normalized"
	TierCleaned    Tier = "cleaned"
)

// Candidate is a persisted mapping as seen by the engine. TargetID is the
// account (transfer mappings) or payee (aliases) the raw string resolves to.
type Candidate struct {
	ID               uuid.UUID
	TargetID         uuid.UUID
	RawString        string
	NormalizedString string
	Confidence       float64
	MatchCount       int
}

type Match struct {
	CandidateID uuid.UUID
	TargetID    uuid.UUID
	Confidence  float64
	MatchedOn   Tier
	Level       Level
}

type Suggestion struct {
	Candidate Candidate
	Score     float64
	Level     Level
}

// CandidateSource looks up non-deleted mappings within one workspace.
// FindByRaw returns nil, nil when no mapping has that exact raw string.
type CandidateSource interface {
	FindByRaw(workspaceID uuid.UUID, raw string) (*Candidate, error)
	FindByNormalized(workspaceID uuid.UUID, normalized string) ([]Candidate, error)
	FindAll(workspaceID uuid.UUID) ([]Candidate, error)
}

type Engine struct {
	source CandidateSource
}

func NewEngine(source CandidateSource) *Engine {
	return &Engine{source: source}
}

// FindBestMatch tries exact, normalized and cleaned comparisons in that
// order and returns the first hit. A nil match with a nil error means no
// mapping applies.
func (e *Engine) FindBestMatch(workspaceID uuid.UUID, raw string) (*Match, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	exact, err := e.source.FindByRaw(workspaceID, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to look up exact mapping: %w", err)
	}
	if exact != nil {
		return newMatch(*exact, exact.Confidence, TierExact), nil
	}

	normalized, err := e.source.FindByNormalized(workspaceID, Normalize(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to look up normalized mappings: %w", err)
	}
	if best, ok := mostUsed(normalized); ok {
		return newMatch(best, best.Confidence*normalizedConfidenceFactor, TierNormalized), nil
	}

	cleaned := Clean(raw)
	if utf8.RuneCountInString(cleaned) < minCleanedLength {
		return nil, nil
	}

	all, err := e.source.FindAll(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	var sameCleaned []Candidate
	for _, candidate := range all {
		if strings.EqualFold(Clean(candidate.RawString), cleaned) {
			sameCleaned = append(sameCleaned, candidate)
		}
	}
	if best, ok := mostUsed(sameCleaned); ok {
		return newMatch(best, best.Confidence*cleanedConfidenceFactor, TierCleaned), nil
	}

	return nil, nil
}

// FindSimilar ranks every mapping in the workspace by edit-distance
// similarity of normalized strings. Used when FindBestMatch finds nothing.
func (e *Engine) FindSimilar(workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]Suggestion, error) {
	target := Normalize(raw)
	if target == "" {
		return []Suggestion{}, nil
	}

	all, err := e.source.FindAll(workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mappings: %w", err)
	}

	suggestions := make([]Suggestion, 0)
	for _, candidate := range all {
		score := LevenshteinSimilarity(target, candidate.NormalizedString)
		if score < minScore {
			continue
		}
		suggestions = append(suggestions, Suggestion{
			Candidate: candidate,
			Score:     score,
			Level:     ConfidenceLevel(score),
		})
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		if suggestions[i].Score != suggestions[j].Score {
			return suggestions[i].Score > suggestions[j].Score
		}
		return suggestions[i].Candidate.MatchCount > suggestions[j].Candidate.MatchCount
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions, nil
}

// mostUsed picks the candidate with the highest match count, keeping the
// first one on ties.
func mostUsed(candidates []Candidate) (Candidate, bool) {
	if len(candidates) == 0 {
		return Candidate{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.MatchCount > best.MatchCount {
			best = c
		}
	}
	return best, true
}

func newMatch(c Candidate, confidence float64, tier Tier) *Match {
	return &Match{
		CandidateID: c.ID,
		TargetID:    c.TargetID,
		Confidence:  confidence,
		MatchedOn:   tier,
		Level:       ConfidenceLevel(confidence),
	}
}
