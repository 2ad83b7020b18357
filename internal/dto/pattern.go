package dto

import (
	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
)

// Pattern Request DTOs

// DetectPatternsRequest carries optional overrides of the configured detection criteria.
// Fields left out keep their configured value.
type DetectPatternsRequest struct {
	LookbackMonths        *int     `json:"lookback_months,omitempty" validate:"omitempty,min=1,max=120"`
	MinOccurrences        *int     `json:"min_occurrences,omitempty" validate:"omitempty,min=2"`
	AmountVariancePercent *float64 `json:"amount_variance_percent,omitempty" validate:"omitempty,min=0,max=100"`
	MinConfidenceScore    *int     `json:"min_confidence_score,omitempty" validate:"omitempty,min=0,max=100"`
}

// HasOverrides reports whether any criterion was supplied
func (r DetectPatternsRequest) HasOverrides() bool {
	return r.LookbackMonths != nil || r.MinOccurrences != nil ||
		r.AmountVariancePercent != nil || r.MinConfidenceScore != nil
}

// Apply returns base with the supplied overrides written over it
func (r DetectPatternsRequest) Apply(base detection.Criteria) detection.Criteria {
	if r.LookbackMonths != nil {
		base.LookbackMonths = *r.LookbackMonths
	}
	if r.MinOccurrences != nil {
		base.MinOccurrences = *r.MinOccurrences
	}
	if r.AmountVariancePercent != nil {
		base.AmountVariancePercent = *r.AmountVariancePercent
	}
	if r.MinConfidenceScore != nil {
		base.MinConfidenceScore = *r.MinConfidenceScore
	}
	return base
}

// ExpirePatternsRequest represents the request payload for removing stale patterns
type ExpirePatternsRequest struct {
	MaxAgeDays int `json:"max_age_days,omitempty" validate:"omitempty,min=1"`
}

// Pattern Response DTOs

// PatternListResponse represents a paginated list of detected patterns
type PatternListResponse struct {
	Patterns []models.DetectedPattern `json:"patterns"`
	Total    int64                    `json:"total"`
	Offset   int                      `json:"offset"`
	Limit    int                      `json:"limit"`
}

// DetectionResultResponse represents the outcome of detection on one account
type DetectionResultResponse struct {
	AccountID uuid.UUID                `json:"account_id"`
	Patterns  []models.DetectedPattern `json:"patterns"`
	Created   int                      `json:"created"`
	Updated   int                      `json:"updated"`
}

// NewDetectionResultResponse converts a service result
func NewDetectionResultResponse(result *services.DetectionResult) DetectionResultResponse {
	patterns := result.Patterns
	if patterns == nil {
		patterns = []models.DetectedPattern{}
	}
	return DetectionResultResponse{
		AccountID: result.AccountID,
		Patterns:  patterns,
		Created:   result.Created,
		Updated:   result.Updated,
	}
}

// AccountErrorResponse names an account a workspace run could not analyze
type AccountErrorResponse struct {
	AccountID uuid.UUID `json:"account_id"`
	Error     string    `json:"error"`
}

// DetectionSummaryResponse represents a workspace-wide detection run
type DetectionSummaryResponse struct {
	WorkspaceID      uuid.UUID                 `json:"workspace_id"`
	AccountsScanned  int                       `json:"accounts_scanned"`
	PatternsDetected int                       `json:"patterns_detected"`
	Created          int                       `json:"created"`
	Updated          int                       `json:"updated"`
	Results          []DetectionResultResponse `json:"results"`
	Errors           []AccountErrorResponse    `json:"errors,omitempty"`
}

// NewDetectionSummaryResponse converts a service summary. Internal error text
// is not exposed; failed accounts are listed by id only.
func NewDetectionSummaryResponse(summary *services.DetectionSummary) DetectionSummaryResponse {
	resp := DetectionSummaryResponse{
		WorkspaceID:      summary.WorkspaceID,
		AccountsScanned:  summary.AccountsScanned,
		PatternsDetected: summary.PatternsDetected,
		Created:          summary.Created,
		Updated:          summary.Updated,
		Results:          make([]DetectionResultResponse, 0, len(summary.Results)),
	}
	for i := range summary.Results {
		resp.Results = append(resp.Results, NewDetectionResultResponse(&summary.Results[i]))
	}
	for _, e := range summary.Errors {
		resp.Errors = append(resp.Errors, AccountErrorResponse{
			AccountID: e.AccountID,
			Error:     "detection failed",
		})
	}
	return resp
}

// ConvertPatternResponse represents the schedule created from a pattern
type ConvertPatternResponse struct {
	Schedule *models.Schedule `json:"schedule"`
	Message  string           `json:"message"`
}

// ExpirePatternsResponse reports how many stale patterns were removed
type ExpirePatternsResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// MessageResponse represents a simple message response
type MessageResponse struct {
	Message string `json:"message"`
}
