package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/dto"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
	"github.com/robertromore/budget-sub015/internal/services/service_mocks"
)

type PatternHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	detector    *service_mocks.MockPatternDetectionServiceInterface
	patterns    *service_mocks.MockPatternServiceInterface
	handler     *PatternHandler
	echo        *echo.Echo
	workspaceID uuid.UUID
	accountID   uuid.UUID
}

func (s *PatternHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.detector = service_mocks.NewMockPatternDetectionServiceInterface(s.ctrl)
	s.patterns = service_mocks.NewMockPatternServiceInterface(s.ctrl)
	s.handler = NewPatternHandler(s.detector, s.patterns)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.workspaceID = uuid.New()
	s.accountID = uuid.New()
}

func (s *PatternHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPatternHandlerSuite(t *testing.T) {
	suite.Run(t, new(PatternHandlerSuite))
}

// createContext builds a workspace-scoped request context
func (s *PatternHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set(WorkspaceIDContextKey, s.workspaceID)

	return c, rec
}

func (s *PatternHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *PatternHandlerSuite) withPatternParam(c echo.Context, id string) {
	c.SetParamNames("id")
	c.SetParamValues(id)
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_UsesDefaultsWithoutBody() {
	pattern := models.DetectedPattern{ID: uuid.New(), AccountID: s.accountID, PatternType: "monthly", Status: models.PatternStatusPending}

	s.detector.EXPECT().
		DetectPatterns(gomock.Any(), s.workspaceID, s.accountID, nil).
		Return(&services.DetectionResult{AccountID: s.accountID, Patterns: []models.DetectedPattern{pattern}, Created: 1}, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/accounts/"+s.accountID.String()+"/patterns/detect", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DetectionResultResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Created)
	s.Require().Len(resp.Patterns, 1)
	s.Equal(pattern.ID, resp.Patterns[0].ID)
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_AppliesOverrides() {
	s.detector.EXPECT().DefaultCriteria().Return(detection.DefaultCriteria())
	s.detector.EXPECT().
		DetectPatterns(gomock.Any(), s.workspaceID, s.accountID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _ uuid.UUID, criteria *detection.Criteria) (*services.DetectionResult, error) {
			s.Require().NotNil(criteria)
			s.Equal(4, criteria.MinOccurrences)
			s.Equal(6, criteria.LookbackMonths)
			s.Equal(70, criteria.MinConfidenceScore)
			return &services.DetectionResult{AccountID: s.accountID}, nil
		})

	body := map[string]interface{}{"min_occurrences": 4, "lookback_months": 6}
	c, rec := s.createContext(http.MethodPost, "/api/v1/accounts/"+s.accountID.String()+"/patterns/detect", body)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DetectionResultResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Patterns)
	s.Empty(resp.Patterns)
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_RejectsInvalidOverride() {
	body := map[string]interface{}{"min_occurrences": 1}
	c, rec := s.createContext(http.MethodPost, "/api/v1/accounts/"+s.accountID.String()+"/patterns/detect", body)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PATTERN_004", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_AccountNotFound() {
	s.detector.EXPECT().
		DetectPatterns(gomock.Any(), s.workspaceID, s.accountID, nil).
		Return(nil, services.ErrAccountNotFound)

	c, rec := s.createContext(http.MethodPost, "/api/v1/accounts/"+s.accountID.String()+"/patterns/detect", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("ACCOUNT_001", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_InvalidAccountID() {
	c, rec := s.createContext(http.MethodPost, "/api/v1/accounts/abc/patterns/detect", nil)
	c.SetParamNames("accountId")
	c.SetParamValues("abc")

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("ACCOUNT_002", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestDetectAccountPatterns_MissingWorkspace() {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/"+s.accountID.String()+"/patterns/detect", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.DetectAccountPatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("WORKSPACE_001", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestDetectWorkspacePatterns_HidesAccountErrors() {
	failed := uuid.New()
	s.detector.EXPECT().
		DetectForWorkspace(gomock.Any(), s.workspaceID, nil).
		Return(&services.DetectionSummary{
			WorkspaceID:      s.workspaceID,
			AccountsScanned:  2,
			PatternsDetected: 1,
			Created:          1,
			Results:          []services.DetectionResult{{AccountID: s.accountID, Created: 1}},
			Errors: []services.AccountDetectionError{{
				AccountID: failed,
				Err:       context.DeadlineExceeded,
			}},
		}, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/detect", nil)

	s.NoError(s.handler.DetectWorkspacePatterns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.DetectionSummaryResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(2, resp.AccountsScanned)
	s.Len(resp.Results, 1)
	s.Require().Len(resp.Errors, 1)
	s.Equal(failed, resp.Errors[0].AccountID)
	s.Equal("detection failed", resp.Errors[0].Error)
}

func (s *PatternHandlerSuite) TestListAccountPatterns_FiltersByStatus() {
	s.patterns.EXPECT().
		List(gomock.Any(), s.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error) {
			s.Require().NotNil(filters.AccountID)
			s.Equal(s.accountID, *filters.AccountID)
			s.Equal(models.PatternStatusPending, filters.Status)
			s.Equal(10, filters.Offset)
			s.Equal(defaultPageLimit, filters.Limit)
			return nil, 0, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/accounts/"+s.accountID.String()+"/patterns?status=pending&offset=10", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.ListAccountPatterns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.PatternListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Patterns)
	s.Equal(int64(0), resp.Total)
}

func (s *PatternHandlerSuite) TestListAccountPatterns_InvalidStatus() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/accounts/"+s.accountID.String()+"/patterns?status=archived", nil)
	c.SetParamNames("accountId")
	c.SetParamValues(s.accountID.String())

	s.NoError(s.handler.ListAccountPatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PATTERN_005", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestListPatterns_InvalidPatternType() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/patterns?pattern_type=fortnightly", nil)

	s.NoError(s.handler.ListPatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("PATTERN_005", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestListPatterns_PassesPatternType() {
	s.patterns.EXPECT().
		List(gomock.Any(), s.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error) {
			s.Equal("weekly", filters.PatternType)
			return nil, 0, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/patterns?pattern_type=weekly", nil)

	s.NoError(s.handler.ListPatterns(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PatternHandlerSuite) TestListPatterns_WorkspaceWide() {
	s.patterns.EXPECT().
		List(gomock.Any(), s.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filters models.PatternFilters) ([]models.DetectedPattern, int64, error) {
			s.Nil(filters.AccountID)
			return []models.DetectedPattern{{ID: uuid.New()}}, 1, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/patterns", nil)

	s.NoError(s.handler.ListPatterns(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PatternHandlerSuite) TestGetPattern_InvalidID() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/patterns/nope", nil)
	s.withPatternParam(c, "nope")

	s.NoError(s.handler.GetPattern(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestAcceptPattern_Success() {
	patternID := uuid.New()
	s.patterns.EXPECT().
		Accept(gomock.Any(), s.workspaceID, patternID).
		Return(&models.DetectedPattern{ID: patternID, Status: models.PatternStatusAccepted}, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/accept", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.AcceptPattern(c))
	s.Equal(http.StatusOK, rec.Code)

	var pattern models.DetectedPattern
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &pattern))
	s.Equal(models.PatternStatusAccepted, pattern.Status)
}

func (s *PatternHandlerSuite) TestAcceptPattern_InvalidTransition() {
	patternID := uuid.New()
	s.patterns.EXPECT().
		Accept(gomock.Any(), s.workspaceID, patternID).
		Return(nil, services.ErrInvalidStatusTransition)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/accept", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.AcceptPattern(c))
	s.Equal(http.StatusConflict, rec.Code)
	s.Equal("PATTERN_002", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestDismissPattern_NotFound() {
	patternID := uuid.New()
	s.patterns.EXPECT().
		Dismiss(gomock.Any(), s.workspaceID, patternID).
		Return(nil, services.ErrPatternNotFound)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/dismiss", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.DismissPattern(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("PATTERN_001", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestConvertPattern_Created() {
	patternID := uuid.New()
	schedule := &models.Schedule{ID: uuid.New(), Name: "Netflix (Monthly)", Recurring: true}
	s.patterns.EXPECT().
		ConvertPattern(gomock.Any(), s.workspaceID, patternID).
		Return(schedule, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/convert", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.ConvertPattern(c))
	s.Equal(http.StatusCreated, rec.Code)

	var resp dto.ConvertPatternResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().NotNil(resp.Schedule)
	s.Equal(schedule.ID, resp.Schedule.ID)
	s.Equal("Netflix (Monthly)", resp.Schedule.Name)
}

func (s *PatternHandlerSuite) TestConvertPattern_MissingPayee() {
	patternID := uuid.New()
	s.patterns.EXPECT().
		ConvertPattern(gomock.Any(), s.workspaceID, patternID).
		Return(nil, services.ErrPatternMissingPayee)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/convert", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.ConvertPattern(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("PATTERN_003", s.errorCode(rec))
}

func (s *PatternHandlerSuite) TestConvertPattern_StorageFailureIsHidden() {
	patternID := uuid.New()
	s.patterns.EXPECT().
		ConvertPattern(gomock.Any(), s.workspaceID, patternID).
		Return(nil, context.DeadlineExceeded)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/"+patternID.String()+"/convert", nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.ConvertPattern(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "deadline")
}

func (s *PatternHandlerSuite) TestDeletePattern_Success() {
	patternID := uuid.New()
	s.patterns.EXPECT().Delete(gomock.Any(), s.workspaceID, patternID).Return(nil)

	c, rec := s.createContext(http.MethodDelete, "/api/v1/patterns/"+patternID.String(), nil)
	s.withPatternParam(c, patternID.String())

	s.NoError(s.handler.DeletePattern(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *PatternHandlerSuite) TestExpirePatterns_DefaultAge() {
	s.patterns.EXPECT().ExpireStale(gomock.Any(), s.workspaceID, 0).Return(int64(3), nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/expire", nil)

	s.NoError(s.handler.ExpirePatterns(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ExpirePatternsResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(int64(3), resp.Deleted)
}

func (s *PatternHandlerSuite) TestExpirePatterns_CustomAge() {
	s.patterns.EXPECT().ExpireStale(gomock.Any(), s.workspaceID, 30).Return(int64(0), nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/expire", dto.ExpirePatternsRequest{MaxAgeDays: 30})

	s.NoError(s.handler.ExpirePatterns(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *PatternHandlerSuite) TestExpirePatterns_NegativeAgeRejected() {
	c, rec := s.createContext(http.MethodPost, "/api/v1/patterns/expire", map[string]int{"max_age_days": -5})

	s.NoError(s.handler.ExpirePatterns(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_004", s.errorCode(rec))
}
