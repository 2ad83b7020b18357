package dto

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
)

// Mapping Request DTOs

// MatchRequest represents a raw import string to resolve
type MatchRequest struct {
	RawString string `json:"raw_string" validate:"required,max=500"`
}

// SimilarRequest represents a fuzzy suggestion query. Zero values use the service defaults.
type SimilarRequest struct {
	RawString string  `json:"raw_string" validate:"required,max=500"`
	MinScore  float64 `json:"min_score,omitempty" validate:"omitempty,gt=0,lte=1"`
	Limit     int     `json:"limit,omitempty" validate:"omitempty,min=1,max=100"`
}

// CreateTransferMappingRequest represents the request payload for learning a transfer mapping
type CreateTransferMappingRequest struct {
	RawPayeeString  string  `json:"raw_payee_string" validate:"required,max=500"`
	TargetAccountID string  `json:"target_account_id" validate:"required,uuid"`
	SourceAccountID string  `json:"source_account_id,omitempty" validate:"omitempty,uuid"`
	Trigger         string  `json:"trigger,omitempty" validate:"omitempty,mapping_trigger"`
	Confidence      float64 `json:"confidence,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// ToInput converts the request into a service input
func (r CreateTransferMappingRequest) ToInput() (services.MappingInput, error) {
	target, err := uuid.Parse(r.TargetAccountID)
	if err != nil {
		return services.MappingInput{}, fmt.Errorf("invalid target_account_id: %w", err)
	}
	source, err := parseOptionalUUID(r.SourceAccountID)
	if err != nil {
		return services.MappingInput{}, fmt.Errorf("invalid source_account_id: %w", err)
	}
	return services.MappingInput{
		RawString:       r.RawPayeeString,
		TargetID:        target,
		SourceAccountID: source,
		Trigger:         r.Trigger,
		Confidence:      r.Confidence,
	}, nil
}

// BulkTransferMappingRequest represents a batch of transfer mappings from one import.
// SourceAccountID applies to entries that do not carry their own.
type BulkTransferMappingRequest struct {
	SourceAccountID string                         `json:"source_account_id,omitempty" validate:"omitempty,uuid"`
	Mappings        []CreateTransferMappingRequest `json:"mappings" validate:"required,min=1,max=1000,dive"`
}

// ToInputs converts every entry; the returned source is nil when not supplied
func (r BulkTransferMappingRequest) ToInputs() ([]services.MappingInput, *uuid.UUID, error) {
	source, err := parseOptionalUUID(r.SourceAccountID)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid source_account_id: %w", err)
	}
	inputs := make([]services.MappingInput, 0, len(r.Mappings))
	for i, m := range r.Mappings {
		input, err := m.ToInput()
		if err != nil {
			return nil, nil, fmt.Errorf("mapping %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, source, nil
}

// CreatePayeeAliasRequest represents the request payload for learning a payee alias
type CreatePayeeAliasRequest struct {
	RawString  string  `json:"raw_string" validate:"required,max=500"`
	PayeeID    string  `json:"payee_id" validate:"required,uuid"`
	Trigger    string  `json:"trigger,omitempty" validate:"omitempty,mapping_trigger"`
	Confidence float64 `json:"confidence,omitempty" validate:"omitempty,gt=0,lte=1"`
}

// ToInput converts the request into a service input
func (r CreatePayeeAliasRequest) ToInput() (services.MappingInput, error) {
	payeeID, err := uuid.Parse(r.PayeeID)
	if err != nil {
		return services.MappingInput{}, fmt.Errorf("invalid payee_id: %w", err)
	}
	return services.MappingInput{
		RawString:  r.RawString,
		TargetID:   payeeID,
		Trigger:    r.Trigger,
		Confidence: r.Confidence,
	}, nil
}

// BulkPayeeAliasRequest represents a batch of aliases from one import
type BulkPayeeAliasRequest struct {
	Aliases []CreatePayeeAliasRequest `json:"aliases" validate:"required,min=1,max=1000,dive"`
}

// ToInputs converts every entry
func (r BulkPayeeAliasRequest) ToInputs() ([]services.MappingInput, error) {
	inputs := make([]services.MappingInput, 0, len(r.Aliases))
	for i, a := range r.Aliases {
		input, err := a.ToInput()
		if err != nil {
			return nil, fmt.Errorf("alias %d: %w", i, err)
		}
		inputs = append(inputs, input)
	}
	return inputs, nil
}

func parseOptionalUUID(s string) (*uuid.UUID, error) {
	if s == "" {
		return nil, nil
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// Mapping Response DTOs

// MatchResponse represents the resolution of a raw string. Matched is false
// when no tier produced a result; the other fields are then omitted.
type MatchResponse struct {
	Matched    bool           `json:"matched"`
	MappingID  *uuid.UUID     `json:"mapping_id,omitempty"`
	TargetID   *uuid.UUID     `json:"target_id,omitempty"`
	Confidence float64        `json:"confidence,omitempty"`
	MatchedOn  matching.Tier  `json:"matched_on,omitempty"`
	Level      matching.Level `json:"level,omitempty"`
}

// NewMatchResponse converts an engine match, nil meaning no match
func NewMatchResponse(m *matching.Match) MatchResponse {
	if m == nil {
		return MatchResponse{}
	}
	mappingID, targetID := m.CandidateID, m.TargetID
	return MatchResponse{
		Matched:    true,
		MappingID:  &mappingID,
		TargetID:   &targetID,
		Confidence: m.Confidence,
		MatchedOn:  m.MatchedOn,
		Level:      m.Level,
	}
}

// SuggestionResponse represents one fuzzy candidate for the cleanup UI
type SuggestionResponse struct {
	MappingID  uuid.UUID      `json:"mapping_id"`
	TargetID   uuid.UUID      `json:"target_id"`
	RawString  string         `json:"raw_string"`
	Score      float64        `json:"score"`
	Level      matching.Level `json:"level"`
	MatchCount int            `json:"match_count"`
}

// SimilarResponse lists suggestions, best first
type SimilarResponse struct {
	Suggestions []SuggestionResponse `json:"suggestions"`
}

// NewSimilarResponse converts engine suggestions
func NewSimilarResponse(suggestions []matching.Suggestion) SimilarResponse {
	resp := SimilarResponse{Suggestions: make([]SuggestionResponse, 0, len(suggestions))}
	for _, s := range suggestions {
		resp.Suggestions = append(resp.Suggestions, SuggestionResponse{
			MappingID:  s.Candidate.ID,
			TargetID:   s.Candidate.TargetID,
			RawString:  s.Candidate.RawString,
			Score:      s.Score,
			Level:      s.Level,
			MatchCount: s.Candidate.MatchCount,
		})
	}
	return resp
}

// BulkResultResponse reports rows touched by a bulk import
type BulkResultResponse struct {
	Created int    `json:"created"`
	Updated int    `json:"updated"`
	Message string `json:"message"`
}

// PurgeResponse reports how many rows a workspace cleanup removed
type PurgeResponse struct {
	Deleted int64  `json:"deleted"`
	Message string `json:"message"`
}

// TransferMappingListResponse represents a paginated list of transfer mappings
type TransferMappingListResponse struct {
	Mappings []models.TransferMapping `json:"mappings"`
	Total    int64                    `json:"total"`
	Offset   int                      `json:"offset"`
	Limit    int                      `json:"limit"`
}

// PayeeAliasListResponse represents a paginated list of payee aliases
type PayeeAliasListResponse struct {
	Aliases []models.PayeeAlias `json:"aliases"`
	Total   int64               `json:"total"`
	Offset  int                 `json:"offset"`
	Limit   int                 `json:"limit"`
}
