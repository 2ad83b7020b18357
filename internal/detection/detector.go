package detection

import (
	"math"
	"sort"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/calendar"
)

// Detect runs grouping, interval analysis and scoring over one account's
// transactions as of today. It is deterministic for a given input and
// reference date. Patterns scoring below criteria.MinConfidenceScore are
// dropped; the rest are ordered by descending confidence.
func Detect(transactions []Transaction, criteria Criteria, today calendar.Date) []Pattern {
	cutoff := today.AddMonths(-criteria.LookbackMonths)

	eligible := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if !IsEligible(t) || t.Date.Before(cutoff) {
			continue
		}
		eligible = append(eligible, t)
	}

	var patterns []Pattern
	for _, group := range BuildGroups(eligible, criteria.AmountVariancePercent) {
		if len(group.Transactions) < criteria.MinOccurrences {
			continue
		}

		pattern, ok := analyzeGroup(group, criteria, today)
		if !ok || pattern.ConfidenceScore < criteria.MinConfidenceScore {
			continue
		}
		patterns = append(patterns, pattern)
	}

	sort.SliceStable(patterns, func(i, j int) bool {
		return patterns[i].ConfidenceScore > patterns[j].ConfidenceScore
	})
	return patterns
}

func analyzeGroup(group TransactionGroup, criteria Criteria, today calendar.Date) (Pattern, bool) {
	intervals := ComputeIntervals(group)
	patternType, stats, ok := Classify(intervals, criteria)
	if !ok {
		return Pattern{}, false
	}

	ordered := byDate(group.Transactions)
	first := ordered[0]
	last := ordered[len(ordered)-1]

	amounts := make([]float64, len(ordered))
	ids := make([]uuid.UUID, len(ordered))
	for i, t := range ordered {
		amounts[i] = magnitude(t)
		ids[i] = t.ID
	}

	intervalDays := max(int(math.Round(stats.Mean)), 1)
	nextExpected := last.Date.AddDays(intervalDays)
	summary := summarizeAmounts(amounts)

	score := confidenceScore(confidenceInputs{
		occurrences:   len(ordered),
		stdDev:        stats.StdDev,
		tolerance:     criteria.Tolerance(patternType),
		amounts:       amounts,
		daysSinceLast: today.DaysSince(last.Date),
	}, criteria)

	return Pattern{
		AccountID:            first.AccountID,
		PatternType:          patternType,
		ConfidenceScore:      score,
		SampleTransactionIDs: ids,
		PayeeID:              group.PayeeID,
		CategoryID:           group.CategoryID,
		AmountMin:            summary.min,
		AmountMax:            summary.max,
		AmountAvg:            summary.avg,
		IntervalDays:         intervalDays,
		FirstOccurrence:      first.Date,
		LastOccurrence:       last.Date,
		NextExpected:         nextExpected,
		OccurrenceCount:      len(ordered),
		ScheduleConfig:       buildScheduleConfig(patternType, intervalDays, summary, nextExpected),
	}, true
}
