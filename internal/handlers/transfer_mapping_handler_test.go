package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/robertromore/budget-sub015/internal/dto"
	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
	"github.com/robertromore/budget-sub015/internal/services/service_mocks"
)

type TransferMappingHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	service     *service_mocks.MockTransferMappingServiceInterface
	handler     *TransferMappingHandler
	echo        *echo.Echo
	workspaceID uuid.UUID
}

func (s *TransferMappingHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = service_mocks.NewMockTransferMappingServiceInterface(s.ctrl)
	s.handler = NewTransferMappingHandler(s.service)

	s.echo = echo.New()
	s.echo.Validator = NewValidator()

	s.workspaceID = uuid.New()
}

func (s *TransferMappingHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestTransferMappingHandlerSuite(t *testing.T) {
	suite.Run(t, new(TransferMappingHandlerSuite))
}

func (s *TransferMappingHandlerSuite) createContext(method, path string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
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

func (s *TransferMappingHandlerSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var resp ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Error.Code
}

func (s *TransferMappingHandlerSuite) TestMatch_Found() {
	match := &matching.Match{
		CandidateID: uuid.New(),
		TargetID:    uuid.New(),
		Confidence:  0.9,
		MatchedOn:   matching.TierNormalized,
		Level:       matching.LevelHigh,
	}
	s.service.EXPECT().FindBestMatch(gomock.Any(), s.workspaceID, "TRANSFER TO SAVINGS").Return(match, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/match", dto.MatchRequest{RawString: "TRANSFER TO SAVINGS"})

	s.NoError(s.handler.Match(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.MatchResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.True(resp.Matched)
	s.Require().NotNil(resp.TargetID)
	s.Equal(match.TargetID, *resp.TargetID)
	s.Equal(matching.TierNormalized, resp.MatchedOn)
	s.InDelta(0.9, resp.Confidence, 1e-9)
}

func (s *TransferMappingHandlerSuite) TestMatch_NoMatch() {
	s.service.EXPECT().FindBestMatch(gomock.Any(), s.workspaceID, "COFFEE").Return(nil, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/match", dto.MatchRequest{RawString: "COFFEE"})

	s.NoError(s.handler.Match(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"matched":false}`, rec.Body.String())
}

func (s *TransferMappingHandlerSuite) TestMatch_RequiresRawString() {
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/match", dto.MatchRequest{})

	s.NoError(s.handler.Match(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *TransferMappingHandlerSuite) TestApply_RecordsUsage() {
	match := &matching.Match{CandidateID: uuid.New(), TargetID: uuid.New(), Confidence: 1, MatchedOn: matching.TierExact, Level: matching.LevelExact}
	s.service.EXPECT().ApplyMatch(gomock.Any(), s.workspaceID, "XFER 1234").Return(match, nil)

	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/apply", dto.MatchRequest{RawString: "XFER 1234"})

	s.NoError(s.handler.Apply(c))
	s.Equal(http.StatusOK, rec.Code)
}

func (s *TransferMappingHandlerSuite) TestSimilar_PassesLimits() {
	candidate := matching.Candidate{ID: uuid.New(), TargetID: uuid.New(), RawString: "TRANSFER TO SAVINGS", MatchCount: 4}
	s.service.EXPECT().
		FindSimilar(gomock.Any(), s.workspaceID, "TRANSFER SAVINGS", 0.8, 5).
		Return([]matching.Suggestion{{Candidate: candidate, Score: 0.84, Level: matching.LevelHigh}}, nil)

	body := dto.SimilarRequest{RawString: "TRANSFER SAVINGS", MinScore: 0.8, Limit: 5}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/similar", body)

	s.NoError(s.handler.Similar(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.SimilarResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Require().Len(resp.Suggestions, 1)
	s.Equal(candidate.ID, resp.Suggestions[0].MappingID)
	s.Equal(4, resp.Suggestions[0].MatchCount)
}

func (s *TransferMappingHandlerSuite) TestCreate_Success() {
	target := uuid.New()
	s.service.EXPECT().
		Create(gomock.Any(), s.workspaceID, services.MappingInput{
			RawString: "TRANSFER TO SAVINGS",
			TargetID:  target,
			Trigger:   models.MappingTriggerImportConfirmation,
		}).
		Return(&models.TransferMapping{ID: uuid.New(), RawPayeeString: "TRANSFER TO SAVINGS", TargetAccountID: target, MatchCount: 1}, nil)

	body := dto.CreateTransferMappingRequest{
		RawPayeeString:  "TRANSFER TO SAVINGS",
		TargetAccountID: target.String(),
		Trigger:         models.MappingTriggerImportConfirmation,
	}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusCreated, rec.Code)

	var mapping models.TransferMapping
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &mapping))
	s.Equal(target, mapping.TargetAccountID)
}

func (s *TransferMappingHandlerSuite) TestCreate_UnknownTriggerRejectedBeforeService() {
	body := dto.CreateTransferMappingRequest{
		RawPayeeString:  "TRANSFER TO SAVINGS",
		TargetAccountID: uuid.NewString(),
		Trigger:         "guess",
	}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransferMappingHandlerSuite) TestCreate_TargetOutsideWorkspace() {
	s.service.EXPECT().Create(gomock.Any(), s.workspaceID, gomock.Any()).Return(nil, services.ErrAccountNotFound)

	body := dto.CreateTransferMappingRequest{RawPayeeString: "XFER", TargetAccountID: uuid.NewString()}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusUnprocessableEntity, rec.Code)
	s.Equal("MAPPING_002", s.errorCode(rec))
}

func (s *TransferMappingHandlerSuite) TestCreate_EmptyRawFromService() {
	err := fmt.Errorf("%w: %w", services.ErrInvalidMapping, models.ErrEmptyRawString)
	s.service.EXPECT().Create(gomock.Any(), s.workspaceID, gomock.Any()).Return(nil, err)

	body := dto.CreateTransferMappingRequest{RawPayeeString: "   ", TargetAccountID: uuid.NewString()}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings", body)

	s.NoError(s.handler.Create(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("MAPPING_004", s.errorCode(rec))
}

func (s *TransferMappingHandlerSuite) TestBulkCreate_UsesRequestSource() {
	source := uuid.New()
	target := uuid.New()
	s.service.EXPECT().
		BulkCreate(gomock.Any(), s.workspaceID, gomock.Len(2), &source).
		Return(&services.BulkResult{Created: 1, Updated: 1}, nil)

	body := dto.BulkTransferMappingRequest{
		SourceAccountID: source.String(),
		Mappings: []dto.CreateTransferMappingRequest{
			{RawPayeeString: "XFER TO SAVINGS", TargetAccountID: target.String()},
			{RawPayeeString: "ONLINE TRANSFER 1234", TargetAccountID: target.String()},
		},
	}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/bulk", body)

	s.NoError(s.handler.BulkCreate(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.BulkResultResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(1, resp.Created)
	s.Equal(1, resp.Updated)
}

func (s *TransferMappingHandlerSuite) TestBulkCreate_InvalidEntry() {
	body := dto.BulkTransferMappingRequest{
		Mappings: []dto.CreateTransferMappingRequest{
			{RawPayeeString: "XFER", TargetAccountID: uuid.NewString()},
			{RawPayeeString: "XFER 2", TargetAccountID: "not-a-uuid"},
		},
	}
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/bulk", body)

	s.NoError(s.handler.BulkCreate(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransferMappingHandlerSuite) TestBulkCreate_Empty() {
	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/bulk", dto.BulkTransferMappingRequest{})

	s.NoError(s.handler.BulkCreate(c))
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *TransferMappingHandlerSuite) TestList_FiltersByTarget() {
	target := uuid.New()
	s.service.EXPECT().
		List(gomock.Any(), s.workspaceID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, filters models.MappingFilters) ([]models.TransferMapping, int64, error) {
			s.Require().NotNil(filters.TargetID)
			s.Equal(target, *filters.TargetID)
			s.Equal("savings", filters.Search)
			s.Equal(20, filters.Limit)
			return nil, 0, nil
		})

	c, rec := s.createContext(http.MethodGet, "/api/v1/transfer-mappings?target_account_id="+target.String()+"&search=savings&limit=20", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransferMappingListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.NotNil(resp.Mappings)
	s.Equal(20, resp.Limit)
}

func (s *TransferMappingHandlerSuite) TestList_InvalidTarget() {
	c, rec := s.createContext(http.MethodGet, "/api/v1/transfer-mappings?target_account_id=zzz", nil)

	s.NoError(s.handler.List(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_006", s.errorCode(rec))
}

func (s *TransferMappingHandlerSuite) TestGet_NotFound() {
	mappingID := uuid.New()
	s.service.EXPECT().Get(gomock.Any(), s.workspaceID, mappingID).Return(nil, services.ErrMappingNotFound)

	c, rec := s.createContext(http.MethodGet, "/api/v1/transfer-mappings/"+mappingID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(mappingID.String())

	s.NoError(s.handler.Get(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("MAPPING_001", s.errorCode(rec))
}

func (s *TransferMappingHandlerSuite) TestDelete_Success() {
	mappingID := uuid.New()
	s.service.EXPECT().Delete(gomock.Any(), s.workspaceID, mappingID).Return(nil)

	c, rec := s.createContext(http.MethodDelete, "/api/v1/transfer-mappings/"+mappingID.String(), nil)
	c.SetParamNames("id")
	c.SetParamValues(mappingID.String())

	s.NoError(s.handler.Delete(c))
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *TransferMappingHandlerSuite) TestPurge_Failure() {
	s.service.EXPECT().PurgeWorkspace(gomock.Any(), s.workspaceID).Return(int64(0), errors.New("disk I/O error"))

	c, rec := s.createContext(http.MethodPost, "/api/v1/transfer-mappings/purge", nil)

	s.NoError(s.handler.Purge(c))
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("SYSTEM_001", s.errorCode(rec))
	s.NotContains(rec.Body.String(), "disk")
}
