package detection

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/robertromore/budget-sub015/internal/calendar"
)

const (
	exactSpreadLimit       = 0.05
	approximateSpreadLimit = 0.15
)

// amountSummary holds the magnitudes of a group's amounts rounded to cents.
type amountSummary struct {
	min decimal.Decimal
	max decimal.Decimal
	avg decimal.Decimal
}

func summarizeAmounts(amounts []float64) amountSummary {
	if len(amounts) == 0 {
		return amountSummary{}
	}
	lo, hi := amounts[0], amounts[0]
	for _, a := range amounts[1:] {
		lo = math.Min(lo, a)
		hi = math.Max(hi, a)
	}
	return amountSummary{
		min: decimal.NewFromFloat(lo).Round(2),
		max: decimal.NewFromFloat(hi).Round(2),
		avg: decimal.NewFromFloat(average(amounts)).Round(2),
	}
}

// amountTypeFor classifies the relative spread (max-min)/avg of amounts.
func amountTypeFor(s amountSummary) AmountType {
	if s.avg.IsZero() {
		return AmountTypeExact
	}
	spread := s.max.Sub(s.min).Div(s.avg).InexactFloat64()
	switch {
	case spread < exactSpreadLimit:
		return AmountTypeExact
	case spread < approximateSpreadLimit:
		return AmountTypeApproximate
	default:
		return AmountTypeRange
	}
}

// intervalMultiplier converts an interval in days to a count of the
// pattern's base unit, never less than one.
func intervalMultiplier(t PatternType, intervalDays int) int {
	var n float64
	switch t {
	case PatternTypeWeekly:
		n = math.Round(float64(intervalDays) / 7)
	case PatternTypeMonthly:
		n = math.Round(float64(intervalDays) / 30)
	case PatternTypeYearly:
		n = math.Round(float64(intervalDays) / 365)
	default:
		n = 1
	}
	return max(int(n), 1)
}

func buildScheduleConfig(t PatternType, intervalDays int, amounts amountSummary, nextExpected calendar.Date) ScheduleConfig {
	interval := intervalMultiplier(t, intervalDays)
	config := ScheduleConfig{
		Name:       SuggestName("", t, interval),
		AmountType: amountTypeFor(amounts),
		Amount:     amounts.avg,
		Recurring:  true,
		AutoAdd:    false,
		Frequency:  t,
		Interval:   interval,
		StartDate:  nextExpected,
	}

	if config.AmountType == AmountTypeRange {
		upper := amounts.max
		config.Amount = amounts.min
		config.Amount2 = &upper
	}
	return config
}

var unitNames = map[PatternType]string{
	PatternTypeDaily:   "day",
	PatternTypeWeekly:  "week",
	PatternTypeMonthly: "month",
	PatternTypeYearly:  "year",
}

// FrequencyLabel renders a frequency for display, e.g. "Monthly" or
// "Every 2 Weeks".
func FrequencyLabel(t PatternType, interval int) string {
	caser := cases.Title(language.English)
	if interval <= 1 {
		return caser.String(string(t))
	}
	return caser.String(fmt.Sprintf("every %d %ss", interval, unitNames[t]))
}

// SuggestName builds a schedule name from the payee name when known.
func SuggestName(payeeName string, t PatternType, interval int) string {
	label := FrequencyLabel(t, interval)
	payeeName = strings.TrimSpace(payeeName)
	if payeeName == "" {
		return label + " Recurring Transaction"
	}
	return fmt.Sprintf("%s (%s)", payeeName, label)
}
