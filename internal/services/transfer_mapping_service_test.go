package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
	"github.com/robertromore/budget-sub015/internal/repositories/repository_mocks"
	"github.com/robertromore/budget-sub015/internal/services"
	"github.com/robertromore/budget-sub015/internal/services/service_mocks"
)

type TransferMappingServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	ctrl        *gomock.Controller
	service     services.TransferMappingServiceInterface
	repo        *repository_mocks.MockTransferMappingRepositoryInterface
	accountRepo *repository_mocks.MockAccountRepositoryInterface
	events      *service_mocks.MockPatternEventLoggerInterface
	metrics     *service_mocks.MockMetricsRecorderInterface
	workspaceID uuid.UUID
	savingsID   uuid.UUID
	now         time.Time
}

func TestTransferMappingServiceSuite(t *testing.T) {
	suite.Run(t, new(TransferMappingServiceTestSuite))
}

func (s *TransferMappingServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.ctrl = gomock.NewController(s.T())

	s.repo = repository_mocks.NewMockTransferMappingRepositoryInterface(s.ctrl)
	s.accountRepo = repository_mocks.NewMockAccountRepositoryInterface(s.ctrl)
	s.events = service_mocks.NewMockPatternEventLoggerInterface(s.ctrl)
	s.metrics = service_mocks.NewMockMetricsRecorderInterface(s.ctrl)

	s.service = services.NewTransferMappingService(
		s.repo,
		s.accountRepo,
		s.events,
		s.metrics,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	s.now = time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	services.SetTransferMappingNow(s.service, func() time.Time { return s.now })

	s.workspaceID = uuid.New()
	s.savingsID = uuid.New()
}

func (s *TransferMappingServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *TransferMappingServiceTestSuite) mapping(raw string, matchCount int) models.TransferMapping {
	return models.TransferMapping{
		ID:               uuid.New(),
		WorkspaceID:      s.workspaceID,
		RawPayeeString:   raw,
		NormalizedString: matching.Normalize(raw),
		TargetAccountID:  s.savingsID,
		Trigger:          models.MappingTriggerImportConfirmation,
		Confidence:       1,
		MatchCount:       matchCount,
	}
}

func (s *TransferMappingServiceTestSuite) expectMatchMetric(tier string) {
	s.metrics.EXPECT().IncrementCounter("mapping.match", map[string]string{
		"kind": services.MappingKindTransfer,
		"tier": tier,
	}).Times(1)
}

func (s *TransferMappingServiceTestSuite) TestFindBestMatch_Exact() {
	stored := s.mapping("ONLINE TRANSFER TO SAV 4421", 3)
	s.repo.EXPECT().FindByRaw(s.workspaceID, "ONLINE TRANSFER TO SAV 4421").Return(&stored, nil)
	s.expectMatchMetric("exact")

	match, err := s.service.FindBestMatch(s.ctx, s.workspaceID, "ONLINE TRANSFER TO SAV 4421")

	s.Require().NoError(err)
	s.Require().NotNil(match)
	s.Equal(stored.ID, match.CandidateID)
	s.Equal(s.savingsID, match.TargetID)
	s.Equal(matching.TierExact, match.MatchedOn)
	s.InDelta(1.0, match.Confidence, 1e-9)
}

func (s *TransferMappingServiceTestSuite) TestFindBestMatch_NormalizedPrefersMostUsed() {
	rarely := s.mapping("Transfer To Savings", 1)
	often := s.mapping("TRANSFER  TO SAVINGS", 9)
	s.repo.EXPECT().FindByRaw(s.workspaceID, "transfer to savings ").Return(nil, repositories.ErrMappingNotFound)
	s.repo.EXPECT().FindByNormalized(s.workspaceID, "transfer to savings").Return([]models.TransferMapping{rarely, often}, nil)
	s.expectMatchMetric("normalized")

	match, err := s.service.FindBestMatch(s.ctx, s.workspaceID, "transfer to savings ")

	s.Require().NoError(err)
	s.Equal(often.ID, match.CandidateID)
	s.Equal(matching.TierNormalized, match.MatchedOn)
	s.InDelta(0.9, match.Confidence, 1e-9)
}

func (s *TransferMappingServiceTestSuite) TestFindBestMatch_NoMapping() {
	s.repo.EXPECT().FindByRaw(s.workspaceID, gomock.Any()).Return(nil, repositories.ErrMappingNotFound)
	s.repo.EXPECT().FindByNormalized(s.workspaceID, gomock.Any()).Return(nil, nil)
	s.repo.EXPECT().FindAll(s.workspaceID).Return([]models.TransferMapping{s.mapping("PAYROLL DEPOSIT", 2)}, nil)
	s.expectMatchMetric("")

	match, err := s.service.FindBestMatch(s.ctx, s.workspaceID, "ZELLE FROM J SMITH")

	s.Require().NoError(err)
	s.Nil(match)
}

func (s *TransferMappingServiceTestSuite) TestFindBestMatch_RepositoryError() {
	s.repo.EXPECT().FindByRaw(s.workspaceID, gomock.Any()).Return(nil, errors.New("database is locked"))

	match, err := s.service.FindBestMatch(s.ctx, s.workspaceID, "TRANSFER")

	s.Nil(match)
	s.ErrorContains(err, "database is locked")
}

func (s *TransferMappingServiceTestSuite) TestApplyMatch_RecordsUsage() {
	stored := s.mapping("ONLINE TRANSFER TO SAV 4421", 3)
	s.repo.EXPECT().FindByRaw(s.workspaceID, stored.RawPayeeString).Return(&stored, nil)
	s.expectMatchMetric("exact")
	s.repo.EXPECT().RecordUsage(s.workspaceID, stored.ID, s.now).Return(nil).Times(1)
	s.events.EXPECT().LogMappingApplied(s.ctx, services.MappingKindTransfer, stored.ID, "exact", 1.0).Times(1)

	match, err := s.service.ApplyMatch(s.ctx, s.workspaceID, stored.RawPayeeString)

	s.Require().NoError(err)
	s.Equal(stored.ID, match.CandidateID)
}

func (s *TransferMappingServiceTestSuite) TestApplyMatch_NoMatchRecordsNothing() {
	s.expectMatchMetric("")

	match, err := s.service.ApplyMatch(s.ctx, s.workspaceID, "   ")

	s.Require().NoError(err)
	s.Nil(match)
}

func (s *TransferMappingServiceTestSuite) TestFindSimilar_AppliesDefaults() {
	s.repo.EXPECT().FindAll(s.workspaceID).Return([]models.TransferMapping{
		s.mapping("TRANSFER TO SAVINGS", 4),
		s.mapping("TRANSFER TO SAVING", 1),
		s.mapping("MORTGAGE PAYMENT", 6),
	}, nil)

	suggestions, err := s.service.FindSimilar(s.ctx, s.workspaceID, "transfer to savings", 0, 0)

	s.Require().NoError(err)
	s.Require().Len(suggestions, 2)
	s.Equal("TRANSFER TO SAVINGS", suggestions[0].Candidate.RawString)
	s.Equal(matching.LevelExact, suggestions[0].Level)
	s.GreaterOrEqual(suggestions[1].Score, 0.7)
}

func (s *TransferMappingServiceTestSuite) TestCreate_NewMappingGetsDefaults() {
	raw := "XFER TO " + gofakeit.Noun()
	s.accountRepo.EXPECT().GetByID(s.workspaceID, s.savingsID).Return(&models.Account{ID: s.savingsID}, nil)
	s.repo.EXPECT().FindByRaw(s.workspaceID, raw).Return(nil, repositories.ErrMappingNotFound)
	s.repo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.TransferMapping) error {
		s.Equal(s.workspaceID, m.WorkspaceID)
		s.Equal(raw, m.RawPayeeString)
		s.Equal(models.MappingTriggerManualCreation, m.Trigger)
		s.Equal(1.0, m.Confidence)
		m.ID = uuid.New()
		return nil
	}).Times(1)

	mapping, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{
		RawString: raw,
		TargetID:  s.savingsID,
	})

	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, mapping.ID)
}

func (s *TransferMappingServiceTestSuite) TestCreate_ExistingRawRetargets() {
	checkingID := uuid.New()
	sourceID := uuid.New()
	existing := s.mapping("TRANSFER 4421", 2)
	existing.SourceAccountID = &sourceID
	existing.Confidence = 0.6
	s.accountRepo.EXPECT().GetByID(s.workspaceID, checkingID).Return(&models.Account{ID: checkingID}, nil)
	s.repo.EXPECT().FindByRaw(s.workspaceID, "TRANSFER 4421").Return(&existing, nil)
	s.repo.EXPECT().Update(gomock.Any()).DoAndReturn(func(m *models.TransferMapping) error {
		s.Equal(existing.ID, m.ID)
		s.Equal(checkingID, m.TargetAccountID)
		s.Equal(3, m.MatchCount)
		return nil
	}).Times(1)

	mapping, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{
		RawString: "TRANSFER 4421",
		TargetID:  checkingID,
		Trigger:   models.MappingTriggerTransactionEdit,
	})

	s.Require().NoError(err)
	s.Equal(checkingID, mapping.TargetAccountID)
	s.Equal(models.MappingTriggerImportConfirmation, mapping.Trigger)
	s.InDelta(0.6, mapping.Confidence, 1e-9)
	s.Require().NotNil(mapping.SourceAccountID)
	s.Equal(sourceID, *mapping.SourceAccountID)
}

func (s *TransferMappingServiceTestSuite) TestCreate_ExistingRawTakesNewSource() {
	sourceID := uuid.New()
	existing := s.mapping("TRANSFER 4421", 1)
	s.accountRepo.EXPECT().GetByID(s.workspaceID, s.savingsID).Return(&models.Account{ID: s.savingsID}, nil)
	s.accountRepo.EXPECT().GetByID(s.workspaceID, sourceID).Return(&models.Account{ID: sourceID}, nil)
	s.repo.EXPECT().FindByRaw(s.workspaceID, "TRANSFER 4421").Return(&existing, nil)
	s.repo.EXPECT().Update(gomock.Any()).Return(nil).Times(1)

	mapping, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{
		RawString:       "TRANSFER 4421",
		TargetID:        s.savingsID,
		SourceAccountID: &sourceID,
	})

	s.Require().NoError(err)
	s.Require().NotNil(mapping.SourceAccountID)
	s.Equal(sourceID, *mapping.SourceAccountID)
	s.Equal(2, mapping.MatchCount)
}

func (s *TransferMappingServiceTestSuite) TestCreate_RejectsBlankRaw() {
	_, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{RawString: "  ", TargetID: s.savingsID})

	s.ErrorIs(err, services.ErrInvalidMapping)
}

func (s *TransferMappingServiceTestSuite) TestCreate_RejectsUnknownTrigger() {
	_, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{
		RawString: "TRANSFER",
		TargetID:  s.savingsID,
		Trigger:   "guess",
	})

	s.ErrorIs(err, services.ErrInvalidMapping)
}

func (s *TransferMappingServiceTestSuite) TestCreate_TargetOutsideWorkspace() {
	s.accountRepo.EXPECT().GetByID(s.workspaceID, s.savingsID).Return(nil, repositories.ErrAccountNotFound)

	_, err := s.service.Create(s.ctx, s.workspaceID, services.MappingInput{RawString: "TRANSFER", TargetID: s.savingsID})

	s.ErrorIs(err, services.ErrAccountNotFound)
}

func (s *TransferMappingServiceTestSuite) TestBulkCreate_DefaultsAndSourceAccount() {
	sourceID := uuid.New()
	s.accountRepo.EXPECT().GetByID(s.workspaceID, s.savingsID).Return(&models.Account{ID: s.savingsID}, nil).Times(1)
	s.repo.EXPECT().BulkUpsert(s.workspaceID, gomock.Any()).DoAndReturn(func(_ uuid.UUID, rows []*models.TransferMapping) (int, int, error) {
		s.Require().Len(rows, 2)
		for _, row := range rows {
			s.Equal(models.MappingTriggerBulkImport, row.Trigger)
			s.Equal(1.0, row.Confidence)
			s.Equal(sourceID, *row.SourceAccountID)
		}
		return 1, 1, nil
	}).Times(1)
	s.metrics.EXPECT().RecordGauge("mapping.bulk_rows", float64(1), map[string]string{"kind": "transfer", "result": "created"}).Times(1)
	s.metrics.EXPECT().RecordGauge("mapping.bulk_rows", float64(1), map[string]string{"kind": "transfer", "result": "updated"}).Times(1)
	s.events.EXPECT().LogBulkImport(s.ctx, services.MappingKindTransfer, s.workspaceID, 1, 1).Times(1)

	result, err := s.service.BulkCreate(s.ctx, s.workspaceID, []services.MappingInput{
		{RawString: "TRANSFER TO SAVINGS", TargetID: s.savingsID},
		{RawString: "ONLINE XFER SAV", TargetID: s.savingsID},
	}, &sourceID)

	s.Require().NoError(err)
	s.Equal(1, result.Created)
	s.Equal(1, result.Updated)
}

func (s *TransferMappingServiceTestSuite) TestBulkCreate_InvalidEntryAbortsImport() {
	s.accountRepo.EXPECT().GetByID(s.workspaceID, s.savingsID).Return(&models.Account{ID: s.savingsID}, nil)

	_, err := s.service.BulkCreate(s.ctx, s.workspaceID, []services.MappingInput{
		{RawString: "TRANSFER TO SAVINGS", TargetID: s.savingsID},
		{RawString: "", TargetID: s.savingsID},
	}, nil)

	s.ErrorIs(err, services.ErrInvalidMapping)
	s.ErrorContains(err, "entry 1")
}

func (s *TransferMappingServiceTestSuite) TestBulkCreate_Empty() {
	result, err := s.service.BulkCreate(s.ctx, s.workspaceID, nil, nil)

	s.Require().NoError(err)
	s.Equal(0, result.Created)
}

func (s *TransferMappingServiceTestSuite) TestGetAndDelete_NotFound() {
	id := uuid.New()
	s.repo.EXPECT().GetByID(s.workspaceID, id).Return(nil, repositories.ErrMappingNotFound)
	s.repo.EXPECT().SoftDelete(s.workspaceID, id).Return(repositories.ErrMappingNotFound)

	_, err := s.service.Get(s.ctx, s.workspaceID, id)
	s.ErrorIs(err, services.ErrMappingNotFound)

	err = s.service.Delete(s.ctx, s.workspaceID, id)
	s.ErrorIs(err, services.ErrMappingNotFound)
}

func (s *TransferMappingServiceTestSuite) TestPurgeWorkspace() {
	s.repo.EXPECT().DeleteAllForWorkspace(s.workspaceID).Return(int64(12), nil).Times(1)

	deleted, err := s.service.PurgeWorkspace(s.ctx, s.workspaceID)

	s.Require().NoError(err)
	s.Equal(int64(12), deleted)
}
