package handlers

import (
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/detection"
	"github.com/robertromore/budget-sub015/internal/dto"
	"github.com/robertromore/budget-sub015/internal/errors"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
)

// PatternHandler handles detection and review of recurring patterns
type PatternHandler struct {
	detector services.PatternDetectionServiceInterface
	patterns services.PatternServiceInterface
}

// NewPatternHandler creates a new pattern handler
func NewPatternHandler(detector services.PatternDetectionServiceInterface, patterns services.PatternServiceInterface) *PatternHandler {
	return &PatternHandler{
		detector: detector,
		patterns: patterns,
	}
}

// DetectAccountPatterns runs detection over one account
// @Summary Detect recurring patterns for an account
// @Description Analyze the account's recent transactions and store or refresh the patterns found. Criteria fields override the configured defaults.
// @Tags Patterns
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param accountId path string true "Account ID (UUID)"
// @Param request body dto.DetectPatternsRequest false "Criteria overrides"
// @Success 200 {object} dto.DetectionResultResponse "Detection result"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / PATTERN_004 - Invalid body or criteria"
// @Failure 404 {object} errors.ErrorResponse "ACCOUNT_001 - Account not found"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/patterns/detect [post]
func (h *PatternHandler) DetectAccountPatterns(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}

	criteria, ok, err := h.bindCriteria(c)
	if !ok {
		return err
	}

	result, err := h.detector.DetectPatterns(c.Request().Context(), workspaceID, accountID, criteria)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDetectionResultResponse(result))
}

// DetectWorkspacePatterns runs detection over every account of the workspace
// @Summary Detect recurring patterns for the workspace
// @Description Analyze every account. Accounts that fail are listed in errors and do not stop the run.
// @Tags Patterns
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.DetectPatternsRequest false "Criteria overrides"
// @Success 200 {object} dto.DetectionSummaryResponse "Detection summary"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / PATTERN_004 - Invalid body or criteria"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /patterns/detect [post]
func (h *PatternHandler) DetectWorkspacePatterns(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	criteria, ok, err := h.bindCriteria(c)
	if !ok {
		return err
	}

	summary, err := h.detector.DetectForWorkspace(c.Request().Context(), workspaceID, criteria)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewDetectionSummaryResponse(summary))
}

// bindCriteria reads optional overrides. A nil criteria means "use the defaults".
// When ok is false the error response has already been written.
func (h *PatternHandler) bindCriteria(c echo.Context) (criteria *detection.Criteria, ok bool, err error) {
	var req dto.DetectPatternsRequest
	if err := c.Bind(&req); err != nil {
		return nil, false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return nil, false, SendError(c, errors.PatternInvalidCriteria, errors.WithDetails(err.Error()))
	}
	if !req.HasOverrides() {
		return nil, true, nil
	}
	merged := req.Apply(h.detector.DefaultCriteria())
	return &merged, true, nil
}

// ListAccountPatterns lists the patterns detected on one account
// @Summary List patterns for an account
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param accountId path string true "Account ID (UUID)"
// @Param status query string false "pending, accepted, dismissed or converted"
// @Param pattern_type query string false "daily, weekly, monthly or yearly"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.PatternListResponse "Patterns, most confident first"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 / PATTERN_005 - Invalid account ID, status or pattern type"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /accounts/{accountId}/patterns [get]
func (h *PatternHandler) ListAccountPatterns(c echo.Context) error {
	accountID, err := getUUIDParam(c, "accountId")
	if err != nil {
		return SendError(c, errors.AccountInvalidID)
	}
	return h.list(c, &accountID)
}

// ListPatterns lists the patterns of the whole workspace
// @Summary List patterns
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param account_id query string false "Restrict to one account"
// @Param status query string false "pending, accepted, dismissed or converted"
// @Param pattern_type query string false "daily, weekly, monthly or yearly"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.PatternListResponse "Patterns, most confident first"
// @Failure 400 {object} errors.ErrorResponse "ACCOUNT_002 / PATTERN_005 - Invalid account ID, status or pattern type"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /patterns [get]
func (h *PatternHandler) ListPatterns(c echo.Context) error {
	var accountID *uuid.UUID
	if raw := c.QueryParam("account_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return SendError(c, errors.AccountInvalidID)
		}
		accountID = &id
	}
	return h.list(c, accountID)
}

func (h *PatternHandler) list(c echo.Context, accountID *uuid.UUID) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	status := c.QueryParam("status")
	if status != "" && !models.IsValidPatternStatus(status) {
		return SendError(c, errors.PatternInvalidStatus, errors.WithDetails("Unknown status: "+status))
	}
	patternType := c.QueryParam("pattern_type")
	if patternType != "" && !detection.IsValidPatternType(detection.PatternType(patternType)) {
		return SendError(c, errors.PatternInvalidStatus, errors.WithDetails("Unknown pattern type: "+patternType))
	}

	offset, limit := getPagination(c)
	filters := models.PatternFilters{
		AccountID:     accountID,
		Status:        status,
		PatternType:   patternType,
		MinConfidence: getIntParam(c, "min_confidence", 0),
		Offset:        offset,
		Limit:         limit,
	}

	patterns, total, err := h.patterns.List(c.Request().Context(), workspaceID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}
	if patterns == nil {
		patterns = []models.DetectedPattern{}
	}

	return c.JSON(http.StatusOK, dto.PatternListResponse{
		Patterns: patterns,
		Total:    total,
		Offset:   offset,
		Limit:    limit,
	})
}

// GetPattern retrieves one detected pattern
// @Summary Get pattern by ID
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} models.DetectedPattern "Pattern details"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_006 - Invalid pattern ID"
// @Failure 404 {object} errors.ErrorResponse "PATTERN_001 - Pattern not found"
// @Router /patterns/{id} [get]
func (h *PatternHandler) GetPattern(c echo.Context) error {
	return h.withPattern(c, func(workspaceID, patternID uuid.UUID) error {
		pattern, err := h.patterns.Get(c.Request().Context(), workspaceID, patternID)
		if err != nil {
			return h.sendServiceError(c, err)
		}
		return c.JSON(http.StatusOK, pattern)
	})
}

// AcceptPattern marks a pending pattern as accepted
// @Summary Accept a pattern
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} models.DetectedPattern "Updated pattern"
// @Failure 404 {object} errors.ErrorResponse "PATTERN_001 - Pattern not found"
// @Failure 409 {object} errors.ErrorResponse "PATTERN_002 - Pattern is not pending"
// @Router /patterns/{id}/accept [post]
func (h *PatternHandler) AcceptPattern(c echo.Context) error {
	return h.withPattern(c, func(workspaceID, patternID uuid.UUID) error {
		pattern, err := h.patterns.Accept(c.Request().Context(), workspaceID, patternID)
		if err != nil {
			return h.sendServiceError(c, err)
		}
		return c.JSON(http.StatusOK, pattern)
	})
}

// DismissPattern hides a pattern from review. Dismissing a converted pattern
// also removes its schedule.
// @Summary Dismiss a pattern
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Pattern ID (UUID)"
// @Success 200 {object} models.DetectedPattern "Updated pattern"
// @Failure 404 {object} errors.ErrorResponse "PATTERN_001 - Pattern not found"
// @Failure 409 {object} errors.ErrorResponse "PATTERN_002 - Pattern already dismissed"
// @Router /patterns/{id}/dismiss [post]
func (h *PatternHandler) DismissPattern(c echo.Context) error {
	return h.withPattern(c, func(workspaceID, patternID uuid.UUID) error {
		pattern, err := h.patterns.Dismiss(c.Request().Context(), workspaceID, patternID)
		if err != nil {
			return h.sendServiceError(c, err)
		}
		return c.JSON(http.StatusOK, pattern)
	})
}

// ConvertPattern turns a pattern into a recurring schedule
// @Summary Convert a pattern to a schedule
// @Tags Patterns
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Pattern ID (UUID)"
// @Success 201 {object} dto.ConvertPatternResponse "Schedule created"
// @Failure 404 {object} errors.ErrorResponse "PATTERN_001 - Pattern not found"
// @Failure 409 {object} errors.ErrorResponse "PATTERN_002 - Pattern cannot be converted from its status"
// @Failure 422 {object} errors.ErrorResponse "PATTERN_003 - Pattern has no payee"
// @Router /patterns/{id}/convert [post]
func (h *PatternHandler) ConvertPattern(c echo.Context) error {
	return h.withPattern(c, func(workspaceID, patternID uuid.UUID) error {
		schedule, err := h.patterns.ConvertPattern(c.Request().Context(), workspaceID, patternID)
		if err != nil {
			return h.sendServiceError(c, err)
		}
		return c.JSON(http.StatusCreated, dto.ConvertPatternResponse{
			Schedule: schedule,
			Message:  "Pattern converted to schedule",
		})
	})
}

// DeletePattern removes a pattern record
// @Summary Delete a pattern
// @Tags Patterns
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Pattern ID (UUID)"
// @Success 204 "Pattern deleted"
// @Failure 404 {object} errors.ErrorResponse "PATTERN_001 - Pattern not found"
// @Router /patterns/{id} [delete]
func (h *PatternHandler) DeletePattern(c echo.Context) error {
	return h.withPattern(c, func(workspaceID, patternID uuid.UUID) error {
		if err := h.patterns.Delete(c.Request().Context(), workspaceID, patternID); err != nil {
			return h.sendServiceError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// ExpirePatterns deletes patterns that have not been seen recently
// @Summary Expire stale patterns
// @Description Delete pending, accepted and dismissed patterns whose last occurrence is older than max_age_days. Converted patterns are kept.
// @Tags Patterns
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.ExpirePatternsRequest false "Maximum age in days"
// @Success 200 {object} dto.ExpirePatternsResponse "Number of deleted patterns"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Invalid max age"
// @Router /patterns/expire [post]
func (h *PatternHandler) ExpirePatterns(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.ExpirePatternsRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	}

	deleted, err := h.patterns.ExpireStale(c.Request().Context(), workspaceID, req.MaxAgeDays)
	if err != nil {
		return h.sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ExpirePatternsResponse{
		Deleted: deleted,
		Message: "Stale patterns expired",
	})
}

func (h *PatternHandler) withPattern(c echo.Context, fn func(workspaceID, patternID uuid.UUID) error) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	patternID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid pattern ID"))
	}

	return fn(workspaceID, patternID)
}

func (h *PatternHandler) sendServiceError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrPatternNotFound):
		return SendError(c, errors.PatternNotFound)
	case stderrors.Is(err, services.ErrInvalidStatusTransition):
		return SendError(c, errors.PatternInvalidTransition)
	case stderrors.Is(err, services.ErrPatternMissingPayee):
		return SendError(c, errors.PatternMissingPayee)
	case stderrors.Is(err, services.ErrPayeeNotFound):
		return SendError(c, errors.PatternMissingPayee, errors.WithDetails("The pattern's payee no longer exists"))
	case stderrors.Is(err, services.ErrAccountNotFound):
		return SendError(c, errors.AccountNotFound)
	case stderrors.Is(err, services.ErrInvalidCriteria):
		return SendError(c, errors.PatternInvalidCriteria, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidMaxAge):
		return SendError(c, errors.ValidationOutOfRange, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
