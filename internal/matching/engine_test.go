package matching

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type stubSource struct {
	candidates []Candidate
	err        error
}

func (s *stubSource) FindByRaw(_ uuid.UUID, raw string) (*Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, c := range s.candidates {
		if c.RawString == raw {
			found := c
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubSource) FindByNormalized(_ uuid.UUID, normalized string) ([]Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Candidate
	for _, c := range s.candidates {
		if c.NormalizedString == normalized {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *stubSource) FindAll(_ uuid.UUID) ([]Candidate, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

type EngineTestSuite struct {
	suite.Suite
	workspaceID uuid.UUID
	source      *stubSource
	engine      *Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.workspaceID = uuid.New()
	s.source = &stubSource{}
	s.engine = NewEngine(s.source)
}

func (s *EngineTestSuite) candidate(raw string, confidence float64, matchCount int) Candidate {
	return Candidate{
		ID:               uuid.New(),
		TargetID:         uuid.New(),
		RawString:        raw,
		NormalizedString: Normalize(raw),
		Confidence:       confidence,
		MatchCount:       matchCount,
	}
}

func (s *EngineTestSuite) TestExactMatchWinsOverNormalized() {
	exact := s.candidate("NETFLIX.COM", 1.0, 1)
	popular := s.candidate("Netflix.com", 1.0, 10)
	s.source.candidates = []Candidate{popular, exact}

	match, err := s.engine.FindBestMatch(s.workspaceID, "NETFLIX.COM")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(exact.ID, match.CandidateID)
	s.Equal(exact.TargetID, match.TargetID)
	s.Equal(TierExact, match.MatchedOn)
	s.InDelta(1.0, match.Confidence, 1e-9)
	s.Equal(LevelExact, match.Level)
}

func (s *EngineTestSuite) TestExactMatchKeepsStoredConfidence() {
	stored := s.candidate("CITY WATER DEPT", 0.75, 2)
	s.source.candidates = []Candidate{stored}

	match, err := s.engine.FindBestMatch(s.workspaceID, "CITY WATER DEPT")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.InDelta(0.75, match.Confidence, 1e-9)
	s.Equal(LevelMedium, match.Level)
}

func (s *EngineTestSuite) TestNormalizedMatchPrefersHighestMatchCount() {
	rare := s.candidate("Netflix.com", 1.0, 1)
	popular := s.candidate("NETFLIX.COM", 1.0, 10)
	s.source.candidates = []Candidate{rare, popular}

	match, err := s.engine.FindBestMatch(s.workspaceID, "  netflix.COM ")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(popular.ID, match.CandidateID)
	s.Equal(TierNormalized, match.MatchedOn)
	s.InDelta(0.9, match.Confidence, 1e-9)
	s.Equal(LevelHigh, match.Level)
}

func (s *EngineTestSuite) TestNormalizedTieKeepsFirst() {
	first := s.candidate("Hulu", 1.0, 3)
	second := s.candidate("HULU", 1.0, 3)
	s.source.candidates = []Candidate{first, second}

	match, err := s.engine.FindBestMatch(s.workspaceID, "hulu ")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(first.ID, match.CandidateID)
}

func (s *EngineTestSuite) TestCleanedMatch() {
	stored := s.candidate("SPOTIFY USA 01/15", 1.0, 4)
	s.source.candidates = []Candidate{stored}

	match, err := s.engine.FindBestMatch(s.workspaceID, "SPOTIFY USA 02/15 $9.99")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(stored.ID, match.CandidateID)
	s.Equal(TierCleaned, match.MatchedOn)
	s.InDelta(0.8, match.Confidence, 1e-9)
	s.Equal(LevelMedium, match.Level)
}

func (s *EngineTestSuite) TestCleanedMatchIgnoresCase() {
	stored := s.candidate("Spotify USA 01/15", 1.0, 1)
	s.source.candidates = []Candidate{stored}

	match, err := s.engine.FindBestMatch(s.workspaceID, "SPOTIFY USA 03/15")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(TierCleaned, match.MatchedOn)
}

func (s *EngineTestSuite) TestCleanedMatchRequiresMinimumLength() {
	s.source.candidates = []Candidate{s.candidate("AB 01/15", 1.0, 1)}

	match, err := s.engine.FindBestMatch(s.workspaceID, "AB 02/15")

	s.NoError(err)
	s.Nil(match)
}

func (s *EngineTestSuite) TestNoMatchIsNotAnError() {
	s.source.candidates = []Candidate{s.candidate("NETFLIX.COM", 1.0, 1)}

	match, err := s.engine.FindBestMatch(s.workspaceID, "Local Bakery")

	s.NoError(err)
	s.Nil(match)
}

func (s *EngineTestSuite) TestEmptyRawString() {
	match, err := s.engine.FindBestMatch(s.workspaceID, "   ")

	s.NoError(err)
	s.Nil(match)
}

func (s *EngineTestSuite) TestSourceErrorIsWrapped() {
	s.source.err = errors.New("database is locked")

	match, err := s.engine.FindBestMatch(s.workspaceID, "NETFLIX.COM")

	s.Nil(match)
	s.Require().Error(err)
	s.ErrorIs(err, s.source.err)
	s.Contains(err.Error(), "failed to look up exact mapping")
}

func (s *EngineTestSuite) TestFindSimilar_RanksByScore() {
	near := s.candidate("netflix", 1.0, 1)
	closer := s.candidate("netflix.com", 1.0, 1)
	far := s.candidate("city water", 1.0, 50)
	s.source.candidates = []Candidate{near, far, closer}

	suggestions, err := s.engine.FindSimilar(s.workspaceID, "NETFLIX.CO", 0.5, 10)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 2)
	s.Equal(closer.ID, suggestions[0].Candidate.ID)
	s.Equal(near.ID, suggestions[1].Candidate.ID)
	s.Equal(LevelHigh, suggestions[0].Level)
}

func (s *EngineTestSuite) TestFindSimilar_Limit() {
	s.source.candidates = []Candidate{
		s.candidate("hulu", 1.0, 1),
		s.candidate("hulu plus", 1.0, 2),
		s.candidate("hulu live", 1.0, 3),
	}

	suggestions, err := s.engine.FindSimilar(s.workspaceID, "hulu", 0.0, 2)

	s.Require().NoError(err)
	s.Len(suggestions, 2)
	s.InDelta(1.0, suggestions[0].Score, 1e-9)
}

func (s *EngineTestSuite) TestFindSimilar_EmptyInput() {
	suggestions, err := s.engine.FindSimilar(s.workspaceID, "", 0.5, 5)

	s.NoError(err)
	s.Empty(suggestions)
}
