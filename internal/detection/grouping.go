package detection

import (
	"math"
	"sort"

	"github.com/google/uuid"
)

type partitionKey struct {
	payee    uuid.UUID
	category uuid.UUID
}

func keyOf(t Transaction) partitionKey {
	var key partitionKey
	if t.PayeeID != nil {
		key.payee = *t.PayeeID
	}
	if t.CategoryID != nil {
		key.category = *t.CategoryID
	}
	return key
}

// IsEligible reports whether a transaction can take part in detection.
// Soft-deleted rows, transfers and rows already linked to a schedule are
// skipped.
func IsEligible(t Transaction) bool {
	return !t.Deleted && !t.IsTransfer && t.ScheduleID == nil
}

// BuildGroups partitions transactions by (payee, category), missing values
// included, then walks each partition in ascending order of amount
// magnitude. A transaction joins the running group while its magnitude is
// within amountVariancePercent of the group's running mean; otherwise the
// group is closed and a new one starts. Closed groups with fewer than two
// members are dropped.
func BuildGroups(transactions []Transaction, amountVariancePercent float64) []TransactionGroup {
	partitions := make(map[partitionKey][]Transaction)
	var keys []partitionKey
	for _, t := range transactions {
		key := keyOf(t)
		if _, seen := partitions[key]; !seen {
			keys = append(keys, key)
		}
		partitions[key] = append(partitions[key], t)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].payee != keys[j].payee {
			return keys[i].payee.String() < keys[j].payee.String()
		}
		return keys[i].category.String() < keys[j].category.String()
	})

	var groups []TransactionGroup
	for _, key := range keys {
		groups = append(groups, chainByAmount(partitions[key], amountVariancePercent/100)...)
	}
	return groups
}

func chainByAmount(members []Transaction, maxDeviation float64) []TransactionGroup {
	sorted := make([]Transaction, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		ai, aj := magnitude(sorted[i]), magnitude(sorted[j])
		if ai != aj {
			return ai < aj
		}
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].ID.String() < sorted[j].ID.String()
	})

	var (
		groups  []TransactionGroup
		current []Transaction
		sum     float64
	)

	closeGroup := func() {
		if len(current) >= 2 {
			groups = append(groups, TransactionGroup{
				PayeeID:      current[0].PayeeID,
				CategoryID:   current[0].CategoryID,
				AvgAmount:    sum / float64(len(current)),
				Transactions: current,
			})
		}
	}

	for _, t := range sorted {
		amount := magnitude(t)
		if len(current) == 0 {
			current = []Transaction{t}
			sum = amount
			continue
		}

		runningAvg := sum / float64(len(current))
		if withinVariance(amount, runningAvg, maxDeviation) {
			current = append(current, t)
			sum += amount
			continue
		}

		closeGroup()
		current = []Transaction{t}
		sum = amount
	}
	closeGroup()

	return groups
}

func withinVariance(amount, runningAvg, maxDeviation float64) bool {
	if runningAvg == 0 {
		return amount == 0
	}
	return math.Abs(amount-runningAvg)/runningAvg <= maxDeviation
}

func magnitude(t Transaction) float64 {
	return math.Abs(t.Amount.InexactFloat64())
}

// ComputeIntervals orders a group's members by date and returns the gap in
// calendar days between each consecutive pair.
func ComputeIntervals(group TransactionGroup) []IntervalData {
	ordered := byDate(group.Transactions)
	if len(ordered) < 2 {
		return nil
	}

	intervals := make([]IntervalData, 0, len(ordered)-1)
	for i := 1; i < len(ordered); i++ {
		prev, cur := ordered[i-1], ordered[i]
		intervals = append(intervals, IntervalData{
			DaysBetween:       cur.Date.DaysSince(prev.Date),
			FromDate:          prev.Date,
			ToDate:            cur.Date,
			FromTransactionID: prev.ID,
			ToTransactionID:   cur.ID,
		})
	}
	return intervals
}

func byDate(transactions []Transaction) []Transaction {
	ordered := make([]Transaction, len(transactions))
	copy(ordered, transactions)
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].ID.String() < ordered[j].ID.String()
	})
	return ordered
}
