package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/dto"
	"github.com/robertromore/budget-sub015/internal/errors"
	"github.com/robertromore/budget-sub015/internal/models"
	"github.com/robertromore/budget-sub015/internal/services"
)

// PayeeAliasHandler exposes the learned raw-string to payee aliases
type PayeeAliasHandler struct {
	learnedMappingRoutes
	service services.PayeeAliasServiceInterface
}

func NewPayeeAliasHandler(service services.PayeeAliasServiceInterface) *PayeeAliasHandler {
	return &PayeeAliasHandler{
		learnedMappingRoutes: learnedMappingRoutes{learned: service, plural: "Payee aliases"},
		service:              service,
	}
}

// Create learns one alias
// @Summary Create a payee alias
// @Tags PayeeAliases
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.CreatePayeeAliasRequest true "Alias details"
// @Success 201 {object} models.PayeeAlias "Stored alias"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / MAPPING_003 / MAPPING_004 - Invalid alias"
// @Failure 422 {object} errors.ErrorResponse "MAPPING_002 - Payee not in this workspace"
// @Router /payee-aliases [post]
func (h *PayeeAliasHandler) Create(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.CreatePayeeAliasRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	alias, err := h.service.Create(c.Request().Context(), workspaceID, input)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusCreated, alias)
}

// BulkCreate imports a batch of aliases in one transaction
// @Summary Bulk import payee aliases
// @Tags PayeeAliases
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.BulkPayeeAliasRequest true "Aliases"
// @Success 200 {object} dto.BulkResultResponse "Created and updated counts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid entry, nothing was stored"
// @Router /payee-aliases/bulk [post]
func (h *PayeeAliasHandler) BulkCreate(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.BulkPayeeAliasRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	inputs, err := req.ToInputs()
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	result, err := h.service.BulkCreate(c.Request().Context(), workspaceID, inputs)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BulkResultResponse{
		Created: result.Created,
		Updated: result.Updated,
		Message: h.plural + " imported",
	})
}

// List returns the workspace's aliases
// @Summary List payee aliases
// @Tags PayeeAliases
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param payee_id query string false "Restrict to one payee"
// @Param search query string false "Substring of the raw string"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.PayeeAliasListResponse "Aliases"
// @Router /payee-aliases [get]
func (h *PayeeAliasHandler) List(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	filters, ok, err := bindMappingFilters(c, "payee_id")
	if !ok {
		return err
	}

	aliases, total, err := h.service.List(c.Request().Context(), workspaceID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}
	if aliases == nil {
		aliases = []models.PayeeAlias{}
	}

	return c.JSON(http.StatusOK, dto.PayeeAliasListResponse{
		Aliases: aliases,
		Total:   total,
		Offset:  filters.Offset,
		Limit:   filters.Limit,
	})
}

// Get retrieves one alias
// @Summary Get payee alias by ID
// @Tags PayeeAliases
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Alias ID (UUID)"
// @Success 200 {object} models.PayeeAlias "Alias"
// @Failure 404 {object} errors.ErrorResponse "MAPPING_001 - Alias not found"
// @Router /payee-aliases/{id} [get]
func (h *PayeeAliasHandler) Get(c echo.Context) error {
	return withMapping(c, func(workspaceID, aliasID uuid.UUID) error {
		alias, err := h.service.Get(c.Request().Context(), workspaceID, aliasID)
		if err != nil {
			return sendMappingError(c, err)
		}
		return c.JSON(http.StatusOK, alias)
	})
}
