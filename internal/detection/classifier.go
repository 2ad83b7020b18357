package detection

import (
	"math"
)

// period is a nominal interval a group can be classified as. Bi-weekly is
// a weekly pattern with a two-week interval and shares weekly's tolerance.
type period struct {
	patternType PatternType
	days        float64
}

var periods = []period{
	{patternType: PatternTypeDaily, days: 1},
	{patternType: PatternTypeWeekly, days: 7},
	{patternType: PatternTypeWeekly, days: 14},
	{patternType: PatternTypeMonthly, days: 30},
	{patternType: PatternTypeYearly, days: 365},
}

// IntervalStats holds the mean and population standard deviation of a
// group's intervals in days.
type IntervalStats struct {
	Mean   float64
	StdDev float64
}

func computeIntervalStats(intervals []IntervalData) IntervalStats {
	if len(intervals) == 0 {
		return IntervalStats{}
	}

	var sum float64
	for _, in := range intervals {
		sum += float64(in.DaysBetween)
	}
	mean := sum / float64(len(intervals))

	var sumSq float64
	for _, in := range intervals {
		d := float64(in.DaysBetween) - mean
		sumSq += d * d
	}

	return IntervalStats{
		Mean:   mean,
		StdDev: math.Sqrt(sumSq / float64(len(intervals))),
	}
}

// Classify returns the first period whose nominal length the mean interval
// is within tolerance of, provided the spread is within the same
// tolerance. Periods are checked shortest first.
func Classify(intervals []IntervalData, criteria Criteria) (PatternType, IntervalStats, bool) {
	stats := computeIntervalStats(intervals)
	if len(intervals) == 0 {
		return "", stats, false
	}

	for _, p := range periods {
		tolerance := criteria.Tolerance(p.patternType)
		if math.Abs(stats.Mean-p.days) <= tolerance && stats.StdDev <= tolerance {
			return p.patternType, stats, true
		}
	}
	return "", stats, false
}

// confidenceInputs gathers the measurements the score is built from.
type confidenceInputs struct {
	occurrences   int
	stdDev        float64
	tolerance     float64
	amounts       []float64
	daysSinceLast int
}

// confidenceScore adds four capped components and rounds the total:
// occurrences (up to 40), interval regularity (up to 30), amount
// stability (up to 20) and recency of the last occurrence (up to 10).
func confidenceScore(in confidenceInputs, criteria Criteria) int {
	occurrence := math.Min(float64(in.occurrences)/float64(criteria.MinOccurrences)*20, 40)

	consistency := 0.0
	if in.tolerance > 0 {
		consistency = math.Max(0, 30-(in.stdDev/in.tolerance)*10)
	}

	amount := math.Max(0, 20-averageRelativeDeviation(in.amounts)*100)

	days := math.Max(0, float64(in.daysSinceLast))
	recency := math.Max(0, 10-days/30)

	score := int(math.Round(occurrence + consistency + amount + recency))
	return min(max(score, 0), 100)
}

func averageRelativeDeviation(amounts []float64) float64 {
	if len(amounts) == 0 {
		return 0
	}
	mean := average(amounts)
	if mean == 0 {
		return 0
	}

	var total float64
	for _, a := range amounts {
		total += math.Abs(a-mean) / mean
	}
	return total / float64(len(amounts))
}

func average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
