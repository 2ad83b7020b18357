package detection

import (
	"errors"
	"fmt"
)

var ErrInvalidCriteria = errors.New("invalid detection criteria")

// Tolerances are the allowed deviation, in days, of both the mean interval
// and its standard deviation from a period's nominal length.
type Tolerances struct {
	Daily   int `json:"daily" mapstructure:"daily"`
	Weekly  int `json:"weekly" mapstructure:"weekly"`
	Monthly int `json:"monthly" mapstructure:"monthly"`
	Yearly  int `json:"yearly" mapstructure:"yearly"`
}

type Criteria struct {
	LookbackMonths        int        `json:"lookback_months" mapstructure:"lookback_months"`
	MinOccurrences        int        `json:"min_occurrences" mapstructure:"min_occurrences"`
	AmountVariancePercent float64    `json:"amount_variance_percent" mapstructure:"amount_variance_percent"`
	MinConfidenceScore    int        `json:"min_confidence_score" mapstructure:"min_confidence_score"`
	Tolerances            Tolerances `json:"tolerances" mapstructure:"tolerances"`
	StaleAfterDays        int        `json:"stale_after_days" mapstructure:"stale_after_days"`
}

func DefaultCriteria() Criteria {
	return Criteria{
		LookbackMonths:        12,
		MinOccurrences:        3,
		AmountVariancePercent: 10,
		MinConfidenceScore:    70,
		Tolerances: Tolerances{
			Daily:   1,
			Weekly:  2,
			Monthly: 3,
			Yearly:  7,
		},
		StaleAfterDays: 90,
	}
}

func (c Criteria) Validate() error {
	switch {
	case c.LookbackMonths <= 0:
		return fmt.Errorf("%w: lookback months must be positive", ErrInvalidCriteria)
	case c.MinOccurrences < 2:
		return fmt.Errorf("%w: min occurrences must be at least 2", ErrInvalidCriteria)
	case c.AmountVariancePercent < 0:
		return fmt.Errorf("%w: amount variance percent cannot be negative", ErrInvalidCriteria)
	case c.MinConfidenceScore < 0 || c.MinConfidenceScore > 100:
		return fmt.Errorf("%w: min confidence score must be between 0 and 100", ErrInvalidCriteria)
	case c.Tolerances.Daily <= 0 || c.Tolerances.Weekly <= 0 || c.Tolerances.Monthly <= 0 || c.Tolerances.Yearly <= 0:
		return fmt.Errorf("%w: interval tolerances must be positive", ErrInvalidCriteria)
	case c.StaleAfterDays <= 0:
		return fmt.Errorf("%w: stale after days must be positive", ErrInvalidCriteria)
	}
	return nil
}

// Tolerance returns the day tolerance used for a pattern type.
func (c Criteria) Tolerance(t PatternType) float64 {
	switch t {
	case PatternTypeDaily:
		return float64(c.Tolerances.Daily)
	case PatternTypeWeekly:
		return float64(c.Tolerances.Weekly)
	case PatternTypeMonthly:
		return float64(c.Tolerances.Monthly)
	case PatternTypeYearly:
		return float64(c.Tolerances.Yearly)
	default:
		return 0
	}
}
