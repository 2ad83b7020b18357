// Package detection finds recurring transactions in an account's history.
// Everything here is pure: callers fetch transactions, pass them in with
// the reference date, and persist whatever patterns come back.
package detection

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/robertromore/budget-sub015/internal/calendar"
)

type PatternType string

const (
	PatternTypeDaily   PatternType = "daily"
	PatternTypeWeekly  PatternType = "weekly"
	PatternTypeMonthly PatternType = "monthly"
	PatternTypeYearly  PatternType = "yearly"
)

func IsValidPatternType(t PatternType) bool {
	switch t {
	case PatternTypeDaily, PatternTypeWeekly, PatternTypeMonthly, PatternTypeYearly:
		return true
	default:
		return false
	}
}

type AmountType string

const (
	AmountTypeExact       AmountType = "exact"
	AmountTypeApproximate AmountType = "approximate"
	AmountTypeRange       AmountType = "range"
)

// Transaction is the detector's view of a ledger row. Amount is signed;
// grouping and statistics use its magnitude.
type Transaction struct {
	ID         uuid.UUID
	AccountID  uuid.UUID
	Date       calendar.Date
	Amount     decimal.Decimal
	PayeeID    *uuid.UUID
	CategoryID *uuid.UUID
	ScheduleID *uuid.UUID
	IsTransfer bool
	Deleted    bool
}

// TransactionGroup is a run of transactions sharing payee and category
// whose amounts stayed within the variance band of the running average.
type TransactionGroup struct {
	PayeeID      *uuid.UUID
	CategoryID   *uuid.UUID
	AvgAmount    float64
	Transactions []Transaction
}

// IntervalData is the gap between two consecutive group members.
type IntervalData struct {
	DaysBetween       int
	FromDate          calendar.Date
	ToDate            calendar.Date
	FromTransactionID uuid.UUID
	ToTransactionID   uuid.UUID
}

// ScheduleConfig is the schedule a pattern would become on conversion.
type ScheduleConfig struct {
	Name       string           `json:"name"`
	AmountType AmountType       `json:"amount_type"`
	Amount     decimal.Decimal  `json:"amount"`
	Amount2    *decimal.Decimal `json:"amount_2,omitempty"`
	Recurring  bool             `json:"recurring"`
	AutoAdd    bool             `json:"auto_add"`
	Frequency  PatternType      `json:"frequency"`
	Interval   int              `json:"interval"`
	StartDate  calendar.Date    `json:"start_date"`
}

// Pattern is one detected recurring series.
type Pattern struct {
	AccountID            uuid.UUID
	PatternType          PatternType
	ConfidenceScore      int
	SampleTransactionIDs []uuid.UUID
	PayeeID              *uuid.UUID
	CategoryID           *uuid.UUID
	AmountMin            decimal.Decimal
	AmountMax            decimal.Decimal
	AmountAvg            decimal.Decimal
	IntervalDays         int
	FirstOccurrence      calendar.Date
	LastOccurrence       calendar.Date
	NextExpected         calendar.Date
	OccurrenceCount      int
	ScheduleConfig       ScheduleConfig
}
