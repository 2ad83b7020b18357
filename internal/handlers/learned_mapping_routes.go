package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/dto"
	"github.com/robertromore/budget-sub015/internal/errors"
	"github.com/robertromore/budget-sub015/internal/matching"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
)

// learnedMappingService is what transfer mappings and payee aliases expose
// identically
type learnedMappingService interface {
	FindBestMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	ApplyMatch(ctx context.Context, workspaceID uuid.UUID, raw string) (*matching.Match, error)
	FindSimilar(ctx context.Context, workspaceID uuid.UUID, raw string, minScore float64, limit int) ([]matching.Suggestion, error)
	Delete(ctx context.Context, workspaceID, id uuid.UUID) error
	PurgeWorkspace(ctx context.Context, workspaceID uuid.UUID) (int64, error)
}

var (
	_ learnedMappingService = services.TransferMappingServiceInterface(nil)
	_ learnedMappingService = services.PayeeAliasServiceInterface(nil)
)

// learnedMappingRoutes serves the endpoints both learned-mapping resources
// share. plural names the resource in response messages.
type learnedMappingRoutes struct {
	learned learnedMappingService
	plural  string
}

// Match resolves a raw import string without recording usage
// @Summary Match a raw string
// @Tags TransferMappings, PayeeAliases
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.MatchRequest true "Raw payee string from the import"
// @Success 200 {object} dto.MatchResponse "Best match, matched=false when none"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /transfer-mappings/match [post]
// @Router /payee-aliases/match [post]
func (h *learnedMappingRoutes) Match(c echo.Context) error {
	return h.resolve(c, h.learned.FindBestMatch)
}

// Apply resolves a raw import string and records the use of the winner
// @Summary Apply a learned mapping
// @Tags TransferMappings, PayeeAliases
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.MatchRequest true "Raw payee string from the import"
// @Success 200 {object} dto.MatchResponse "Applied match, matched=false when none"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /transfer-mappings/apply [post]
// @Router /payee-aliases/apply [post]
func (h *learnedMappingRoutes) Apply(c echo.Context) error {
	return h.resolve(c, h.learned.ApplyMatch)
}

func (h *learnedMappingRoutes) resolve(c echo.Context, resolve func(context.Context, uuid.UUID, string) (*matching.Match, error)) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.MatchRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	match, err := resolve(c.Request().Context(), workspaceID, req.RawString)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewMatchResponse(match))
}

// Similar lists fuzzy candidates for a raw string
// @Summary Suggest similar learned mappings
// @Tags TransferMappings, PayeeAliases
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.SimilarRequest true "Raw string, minimum score and limit"
// @Success 200 {object} dto.SimilarResponse "Suggestions, best first"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Router /transfer-mappings/similar [post]
// @Router /payee-aliases/similar [post]
func (h *learnedMappingRoutes) Similar(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.SimilarRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	suggestions, err := h.learned.FindSimilar(c.Request().Context(), workspaceID, req.RawString, req.MinScore, req.Limit)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewSimilarResponse(suggestions))
}

// Delete removes one row from matching
// @Summary Delete a learned mapping
// @Tags TransferMappings, PayeeAliases
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "ID (UUID)"
// @Success 204 "Deleted"
// @Failure 404 {object} errors.ErrorResponse "MAPPING_001 - Mapping not found"
// @Router /transfer-mappings/{id} [delete]
// @Router /payee-aliases/{id} [delete]
func (h *learnedMappingRoutes) Delete(c echo.Context) error {
	return withMapping(c, func(workspaceID, id uuid.UUID) error {
		if err := h.learned.Delete(c.Request().Context(), workspaceID, id); err != nil {
			return sendMappingError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	})
}

// Purge permanently removes every row of the workspace
// @Summary Purge learned mappings
// @Tags TransferMappings, PayeeAliases
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Success 200 {object} dto.PurgeResponse "Number of removed rows"
// @Router /transfer-mappings/purge [post]
// @Router /payee-aliases/purge [post]
func (h *learnedMappingRoutes) Purge(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	deleted, err := h.learned.PurgeWorkspace(c.Request().Context(), workspaceID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.PurgeResponse{
		Deleted: deleted,
		Message: h.plural + " purged",
	})
}

// bindRequest binds and validates a JSON body. When ok is false the error
// response has already been written.
func bindRequest(c echo.Context, req interface{}) (ok bool, err error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	}
	return true, nil
}

// bindMappingFilters reads list query params. When ok is false the error
// response has already been written.
func bindMappingFilters(c echo.Context, targetParam string) (filters models.MappingFilters, ok bool, err error) {
	filters.Offset, filters.Limit = getPagination(c)
	filters.Search = c.QueryParam("search")

	if raw := c.QueryParam(targetParam); raw != "" {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			return filters, false, SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid "+targetParam))
		}
		filters.TargetID = &id
	}

	return filters, true, nil
}

func withMapping(c echo.Context, fn func(workspaceID, mappingID uuid.UUID) error) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	mappingID, err := getUUIDParam(c, "id")
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails("Invalid mapping ID"))
	}

	return fn(workspaceID, mappingID)
}

func sendMappingError(c echo.Context, err error) error {
	switch {
	case stderrors.Is(err, services.ErrMappingNotFound):
		return SendError(c, errors.MappingNotFound)
	case stderrors.Is(err, models.ErrEmptyRawString):
		return SendError(c, errors.MappingEmptyRaw, errors.WithDetails(err.Error()))
	case stderrors.Is(err, models.ErrInvalidMappingTrigger):
		return SendError(c, errors.MappingInvalidTrigger, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrInvalidMapping):
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
	case stderrors.Is(err, services.ErrAccountNotFound), stderrors.Is(err, services.ErrPayeeNotFound):
		return SendError(c, errors.MappingInvalidTarget, errors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}
