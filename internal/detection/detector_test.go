package detection

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/calendar"
)

type DetectorTestSuite struct {
	suite.Suite
	accountID  uuid.UUID
	payeeID    uuid.UUID
	categoryID uuid.UUID
	criteria   Criteria
}

func TestDetectorTestSuite(t *testing.T) {
	suite.Run(t, new(DetectorTestSuite))
}

func (s *DetectorTestSuite) SetupTest() {
	s.accountID = uuid.New()
	s.payeeID = uuid.New()
	s.categoryID = uuid.New()
	s.criteria = DefaultCriteria()
}

func (s *DetectorTestSuite) txn(date calendar.Date, amount string) Transaction {
	payee := s.payeeID
	category := s.categoryID
	return Transaction{
		ID:         uuid.New(),
		AccountID:  s.accountID,
		Date:       date,
		Amount:     decimal.RequireFromString(amount),
		PayeeID:    &payee,
		CategoryID: &category,
	}
}

// series builds one transaction per offset (in days) from start.
func (s *DetectorTestSuite) series(start calendar.Date, amount string, offsets ...int) []Transaction {
	txns := make([]Transaction, 0, len(offsets))
	for _, offset := range offsets {
		txns = append(txns, s.txn(start.AddDays(offset), amount))
	}
	return txns
}

func (s *DetectorTestSuite) streamingSubscription() []Transaction {
	return []Transaction{
		s.txn(calendar.New(2024, time.January, 15), "-15.99"),
		s.txn(calendar.New(2024, time.February, 15), "-15.99"),
		s.txn(calendar.New(2024, time.March, 15), "-15.99"),
		s.txn(calendar.New(2024, time.April, 15), "-15.99"),
	}
}

func (s *DetectorTestSuite) TestDetect_MonthlySubscription() {
	txns := s.streamingSubscription()
	today := calendar.New(2024, time.April, 20)

	patterns := Detect(txns, s.criteria, today)

	s.Require().Len(patterns, 1)
	p := patterns[0]
	s.Equal(PatternTypeMonthly, p.PatternType)
	s.Equal(30, p.IntervalDays)
	s.True(p.AmountAvg.Equal(decimal.RequireFromString("15.99")), "avg %s", p.AmountAvg)
	s.True(p.AmountMin.Equal(p.AmountMax))
	s.Equal(83, p.ConfidenceScore)
	s.Equal(4, p.OccurrenceCount)
	s.Equal(s.accountID, p.AccountID)
	s.Equal(s.payeeID, *p.PayeeID)
	s.Equal(s.categoryID, *p.CategoryID)
	s.Equal(calendar.New(2024, time.January, 15), p.FirstOccurrence)
	s.Equal(calendar.New(2024, time.April, 15), p.LastOccurrence)
	s.Equal(calendar.New(2024, time.May, 15), p.NextExpected)
	s.Equal([]uuid.UUID{txns[0].ID, txns[1].ID, txns[2].ID, txns[3].ID}, p.SampleTransactionIDs)

	config := p.ScheduleConfig
	s.Equal(PatternTypeMonthly, config.Frequency)
	s.Equal(1, config.Interval)
	s.Equal(AmountTypeExact, config.AmountType)
	s.True(config.Amount.Equal(decimal.RequireFromString("15.99")))
	s.Nil(config.Amount2)
	s.True(config.Recurring)
	s.False(config.AutoAdd)
	s.Equal(p.NextExpected, config.StartDate)
	s.Equal("Monthly Recurring Transaction", config.Name)
}

func (s *DetectorTestSuite) TestDetect_StaleSubscriptionStillPassesThreshold() {
	// No recency points at all: 26.67 + 26.86 + 20 + 0 rounds to 74
	criteria := s.criteria
	criteria.LookbackMonths = 24

	patterns := Detect(s.streamingSubscription(), criteria, calendar.New(2025, time.March, 1))

	s.Require().Len(patterns, 1)
	s.Equal(74, patterns[0].ConfidenceScore)
}

func (s *DetectorTestSuite) TestDetect_MonthlyWithJitter() {
	start := calendar.New(2024, time.January, 1)
	txns := s.series(start, "-42.00", 0, 30, 62, 90)

	patterns := Detect(txns, s.criteria, start.AddDays(91))

	s.Require().Len(patterns, 1)
	s.Equal(PatternTypeMonthly, patterns[0].PatternType)
	s.Equal(30, patterns[0].IntervalDays)
	s.GreaterOrEqual(patterns[0].ConfidenceScore, 70)
}

func (s *DetectorTestSuite) TestDetect_IrregularIntervalsRejected() {
	start := calendar.New(2024, time.January, 1)
	txns := s.series(start, "-20.00", 0, 10, 55, 67, 117)

	s.Empty(Detect(txns, s.criteria, start.AddDays(120)))
}

func (s *DetectorTestSuite) TestDetect_BiweeklyBecomesWeeklyEveryTwo() {
	start := calendar.New(2024, time.March, 1)
	txns := s.series(start, "1250.00", 0, 14, 28, 42)

	patterns := Detect(txns, s.criteria, start.AddDays(43))

	s.Require().Len(patterns, 1)
	p := patterns[0]
	s.Equal(PatternTypeWeekly, p.PatternType)
	s.Equal(14, p.IntervalDays)
	s.Equal(2, p.ScheduleConfig.Interval)
	s.Equal("Every 2 Weeks Recurring Transaction", p.ScheduleConfig.Name)
}

func (s *DetectorTestSuite) TestDetect_YearlyRenewal() {
	start := calendar.New(2021, time.June, 1)
	txns := s.series(start, "-99.00", 0, 365, 731)
	criteria := s.criteria
	criteria.LookbackMonths = 48

	patterns := Detect(txns, criteria, start.AddDays(740))

	s.Require().Len(patterns, 1)
	s.Equal(PatternTypeYearly, patterns[0].PatternType)
	s.Equal(366, patterns[0].IntervalDays)
	s.Equal(1, patterns[0].ScheduleConfig.Interval)
}

func (s *DetectorTestSuite) TestDetect_ExcludesIneligibleTransactions() {
	txns := s.streamingSubscription()
	scheduleID := uuid.New()
	txns[1].IsTransfer = true
	txns[2].ScheduleID = &scheduleID
	txns[3].Deleted = true

	s.Empty(Detect(txns, s.criteria, calendar.New(2024, time.April, 20)))
}

func (s *DetectorTestSuite) TestDetect_BelowMinOccurrences() {
	txns := s.streamingSubscription()[:2]

	s.Empty(Detect(txns, s.criteria, calendar.New(2024, time.April, 20)))
}

func (s *DetectorTestSuite) TestDetect_RespectsLookback() {
	txns := s.streamingSubscription()

	// 12 months back from 2025-03-01 only leaves 2024-03-15 and 2024-04-15
	s.Empty(Detect(txns, s.criteria, calendar.New(2025, time.March, 1)))
}

func (s *DetectorTestSuite) TestDetect_MinConfidenceFilters() {
	criteria := s.criteria
	criteria.MinConfidenceScore = 90

	s.Empty(Detect(s.streamingSubscription(), criteria, calendar.New(2024, time.April, 20)))
}

func (s *DetectorTestSuite) TestDetect_Deterministic() {
	txns := append(s.streamingSubscription(), s.series(calendar.New(2024, time.January, 2), "-5.00", 0, 7, 14, 21)...)
	today := calendar.New(2024, time.April, 20)

	first := Detect(txns, s.criteria, today)
	second := Detect(txns, s.criteria, today)

	s.Equal(first, second)
}

func (s *DetectorTestSuite) TestDetect_SeparatesAmountBands() {
	start := calendar.New(2024, time.January, 10)
	txns := append(
		s.series(start, "-12.00", 0, 30, 60, 90),
		s.series(start.AddDays(3), "-80.00", 0, 30, 60, 90)...,
	)

	patterns := Detect(txns, s.criteria, start.AddDays(95))

	s.Require().Len(patterns, 2)
	avgs := []string{patterns[0].AmountAvg.StringFixed(2), patterns[1].AmountAvg.StringFixed(2)}
	s.ElementsMatch([]string{"12.00", "80.00"}, avgs)
}

func (s *DetectorTestSuite) TestClassify() {
	testCases := []struct {
		name     string
		gaps     []int
		expected PatternType
		ok       bool
	}{
		{name: "daily", gaps: []int{1, 1, 1, 1}, expected: PatternTypeDaily, ok: true},
		{name: "weekly", gaps: []int{7, 7, 8}, expected: PatternTypeWeekly, ok: true},
		{name: "biweekly", gaps: []int{14, 13, 15}, expected: PatternTypeWeekly, ok: true},
		{name: "monthly", gaps: []int{31, 29, 31}, expected: PatternTypeMonthly, ok: true},
		{name: "monthly jitter", gaps: []int{30, 32, 28}, expected: PatternTypeMonthly, ok: true},
		{name: "yearly", gaps: []int{365, 366}, expected: PatternTypeYearly, ok: true},
		{name: "irregular", gaps: []int{10, 45, 12, 50}, ok: false},
		{name: "quarterly", gaps: []int{91, 92, 90}, ok: false},
		{name: "monthly mean but wide spread", gaps: []int{25, 35, 25, 35}, ok: false},
		{name: "no intervals", gaps: nil, ok: false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			intervals := make([]IntervalData, len(tc.gaps))
			for i, g := range tc.gaps {
				intervals[i] = IntervalData{DaysBetween: g}
			}

			patternType, _, ok := Classify(intervals, s.criteria)

			s.Equal(tc.ok, ok)
			if tc.ok {
				s.Equal(tc.expected, patternType)
			}
		})
	}
}

func (s *DetectorTestSuite) TestClassify_ToleranceBoundary() {
	// mean 33, spread 0: exactly at the monthly tolerance
	atEdge := []IntervalData{{DaysBetween: 33}, {DaysBetween: 33}}
	patternType, stats, ok := Classify(atEdge, s.criteria)
	s.True(ok)
	s.Equal(PatternTypeMonthly, patternType)
	s.InDelta(0.0, stats.StdDev, 1e-9)

	beyond := []IntervalData{{DaysBetween: 34}, {DaysBetween: 34}}
	_, _, ok = Classify(beyond, s.criteria)
	s.False(ok)
}
