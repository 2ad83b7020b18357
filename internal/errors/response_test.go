package errors

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "5f2b8c1e-trace"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_RegisteredMessage() {
	resp := NewErrorResponse(PatternNotFound, s.traceID)

	s.Equal("PATTERN_001", resp.Error.Code)
	s.Equal("Detected pattern not found", resp.Error.Message)
	s.Equal(s.traceID, resp.Error.TraceID)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_Options() {
	resp := NewErrorResponse(PatternInvalidTransition, s.traceID,
		WithMessage("Pattern is already dismissed"),
		WithDetails("from: dismissed", "to: accepted"),
	)

	s.Equal("Pattern is already dismissed", resp.Error.Message)
	s.Equal([]string{"from: dismissed", "to: accepted"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestWithDetails_LastOneWins() {
	resp := NewErrorResponse(MappingInvalidTarget, s.traceID,
		WithDetails("first"),
		WithDetails("second"),
	)

	s.Equal([]string{"second"}, resp.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationError_SortedFields() {
	resp := NewValidationError(map[string]string{
		"raw_payee_string":  "is required",
		"target_account_id": "must be a valid UUID",
		"confidence":        "must be less than or equal to 1",
	}, s.traceID)

	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Equal([]string{
		"confidence: must be less than or equal to 1",
		"raw_payee_string: is required",
		"target_account_id: must be a valid UUID",
	}, resp.Error.Details)
	s.Equal(http.StatusBadRequest, resp.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestNewValidationError_Empty() {
	resp := NewValidationError(map[string]string{}, s.traceID)

	s.Equal("VALIDATION_001", resp.Error.Code)
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := stderrors.New("sqlite: database is locked")

	resp, err := WrapSystemError(cause, s.traceID)

	s.Same(cause, err)
	s.Equal("SYSTEM_001", resp.Error.Code)
	s.NotContains(resp.Error.Message, "locked")
	s.Empty(resp.Error.Details)
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code   ErrorCode
		status int
	}{
		{WorkspaceMissing, http.StatusBadRequest},
		{WorkspaceInvalidID, http.StatusBadRequest},
		{WorkspaceNotFound, http.StatusNotFound},
		{ValidationOutOfRange, http.StatusBadRequest},
		{ValidationInvalidID, http.StatusBadRequest},
		{AccountNotFound, http.StatusNotFound},
		{AccountInvalidID, http.StatusBadRequest},
		{PatternNotFound, http.StatusNotFound},
		{PatternInvalidTransition, http.StatusConflict},
		{PatternMissingPayee, http.StatusUnprocessableEntity},
		{PatternInvalidCriteria, http.StatusBadRequest},
		{PatternInvalidStatus, http.StatusBadRequest},
		{MappingNotFound, http.StatusNotFound},
		{MappingInvalidTarget, http.StatusUnprocessableEntity},
		{MappingInvalidTrigger, http.StatusBadRequest},
		{MappingEmptyRaw, http.StatusBadRequest},
		{ScheduleNotFound, http.StatusNotFound},
		{ScheduleConversionFailed, http.StatusInternalServerError},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemRouteNotFound, http.StatusNotFound},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.status, GetHTTPStatus(tc.code))
			s.Equal(tc.status, NewErrorResponse(tc.code, s.traceID).GetHTTPStatus())
		})
	}
}

func (s *ResponseTestSuite) TestEnvelopeJSON() {
	resp := NewErrorResponse(MappingNotFound, s.traceID, WithDetails("id: 42"))

	data, err := json.Marshal(resp)
	s.Require().NoError(err)

	var decoded map[string]map[string]interface{}
	s.Require().NoError(json.Unmarshal(data, &decoded))
	body := decoded["error"]
	s.Equal("MAPPING_001", body["code"])
	s.Equal("Mapping not found", body["message"])
	s.Equal(s.traceID, body["trace_id"])
	s.Equal([]interface{}{"id: 42"}, body["details"])
}

func (s *ResponseTestSuite) TestEnvelopeJSON_OmitsEmptyDetails() {
	data, err := json.Marshal(NewErrorResponse(WorkspaceMissing, s.traceID))
	s.Require().NoError(err)

	s.NotContains(string(data), "details")
}
