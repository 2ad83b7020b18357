package services_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/calendar"
	"github.com/robertromore/budget-sub015/internal/database"
	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/repositories"
	"github.com/robertromore/budget-sub015/internal/services"
)

// PatternFlowTestSuite runs detection and conversion against sqlite.
type PatternFlowTestSuite struct {
	suite.Suite
	ctx       context.Context
	db        *database.DB
	detector  services.PatternDetectionServiceInterface
	patterns  services.PatternServiceInterface
	workspace *models.Workspace
	account   *models.Account
	payee     *models.Payee
}

func TestPatternFlowTestSuite(t *testing.T) {
	suite.Run(t, new(PatternFlowTestSuite))
}

func (s *PatternFlowTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.db = database.SetupTestDB(s.T())
	s.workspace = database.CreateTestWorkspace(s.T(), s.db, "Household")
	s.account = database.CreateTestAccount(s.T(), s.db, s.workspace, "Checking")
	s.payee = database.CreateTestPayee(s.T(), s.db, s.workspace, "Netflix")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	events := services.NewPatternEventLogger(logger)
	metrics := services.NewPrometheusMetrics(prometheus.NewRegistry())
	patternRepo := repositories.NewPatternRepository(s.db.DB)

	s.detector = services.NewPatternDetectionService(
		repositories.NewAccountRepository(s.db.DB),
		repositories.NewTransactionRepository(s.db.DB),
		patternRepo,
		events,
		metrics,
		detection.DefaultCriteria(),
		logger,
	)
	s.patterns = services.NewPatternService(
		patternRepo,
		repositories.NewPayeeRepository(s.db.DB),
		repositories.NewScheduleRepository(s.db.DB),
		events,
		metrics,
		90,
		logger,
	)

	today := func() calendar.Date { return calendar.New(2024, time.April, 20) }
	services.SetDetectionToday(s.detector, today)
	services.SetPatternToday(s.patterns, today)

	for month := time.January; month <= time.April; month++ {
		payeeID := s.payee.ID
		s.Require().NoError(s.db.Create(&models.Transaction{
			AccountID: s.account.ID,
			Date:      calendar.New(2024, month, 15),
			Amount:    decimal.RequireFromString("-15.99"),
			PayeeID:   &payeeID,
		}).Error)
	}
}

func (s *PatternFlowTestSuite) TestDetectTwiceThenConvert() {
	first, err := s.detector.DetectPatterns(s.ctx, s.workspace.ID, s.account.ID, nil)
	s.Require().NoError(err)
	s.Equal(1, first.Created)

	second, err := s.detector.DetectPatterns(s.ctx, s.workspace.ID, s.account.ID, nil)
	s.Require().NoError(err)
	s.Equal(0, second.Created)
	s.Equal(1, second.Updated)

	stored, total, err := s.patterns.List(s.ctx, s.workspace.ID, models.PatternFilters{})
	s.Require().NoError(err)
	s.Equal(int64(1), total)
	s.Require().Len(stored, 1)
	s.Len(stored[0].SampleTransactionIDs, 4)

	schedule, err := s.patterns.ConvertPattern(s.ctx, s.workspace.ID, stored[0].ID)
	s.Require().NoError(err)
	s.Equal("Netflix (Monthly)", schedule.Name)
	s.Require().Len(schedule.Dates, 1)
	s.Equal("monthly", schedule.Dates[0].Frequency)

	var linked int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).
		Where("schedule_id = ?", schedule.ID).
		Count(&linked).Error)
	s.Equal(int64(4), linked)

	converted, err := s.patterns.Get(s.ctx, s.workspace.ID, stored[0].ID)
	s.Require().NoError(err)
	s.Equal(models.PatternStatusConverted, converted.Status)
	s.Require().NotNil(converted.ScheduleID)
	s.Equal(schedule.ID, *converted.ScheduleID)
}

func (s *PatternFlowTestSuite) TestDismissConvertedUnlinksTransactions() {
	_, err := s.detector.DetectPatterns(s.ctx, s.workspace.ID, s.account.ID, nil)
	s.Require().NoError(err)
	stored, _, err := s.patterns.List(s.ctx, s.workspace.ID, models.PatternFilters{})
	s.Require().NoError(err)
	s.Require().Len(stored, 1)

	_, err = s.patterns.ConvertPattern(s.ctx, s.workspace.ID, stored[0].ID)
	s.Require().NoError(err)

	dismissed, err := s.patterns.Dismiss(s.ctx, s.workspace.ID, stored[0].ID)
	s.Require().NoError(err)
	s.Equal(models.PatternStatusDismissed, dismissed.Status)
	s.Nil(dismissed.ScheduleID)

	var linked int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).
		Where("schedule_id IS NOT NULL").
		Count(&linked).Error)
	s.Zero(linked)
}
