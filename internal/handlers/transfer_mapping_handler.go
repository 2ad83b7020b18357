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

// TransferMappingHandler exposes the learned raw-string to transfer-account
// mappings. Match, Apply, Similar, Delete and Purge come from
// learnedMappingRoutes.
type TransferMappingHandler struct {
	learnedMappingRoutes
	service services.TransferMappingServiceInterface
}

// NewTransferMappingHandler creates a new transfer mapping handler
func NewTransferMappingHandler(service services.TransferMappingServiceInterface) *TransferMappingHandler {
	return &TransferMappingHandler{
		learnedMappingRoutes: learnedMappingRoutes{learned: service, plural: "Transfer mappings"},
		service:              service,
	}
}

// Create learns one mapping, reconfirming an existing one with the same raw string
// @Summary Create a transfer mapping
// @Tags TransferMappings
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.CreateTransferMappingRequest true "Mapping details"
// @Success 201 {object} models.TransferMapping "Stored mapping"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 / MAPPING_003 / MAPPING_004 - Invalid mapping"
// @Failure 422 {object} errors.ErrorResponse "MAPPING_002 - Account not in this workspace"
// @Router /transfer-mappings [post]
func (h *TransferMappingHandler) Create(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.CreateTransferMappingRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	input, err := req.ToInput()
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	mapping, err := h.service.Create(c.Request().Context(), workspaceID, input)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusCreated, mapping)
}

// BulkCreate imports a batch of mappings in one transaction
// @Summary Bulk import transfer mappings
// @Tags TransferMappings
// @Accept json
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param request body dto.BulkTransferMappingRequest true "Mappings"
// @Success 200 {object} dto.BulkResultResponse "Created and updated counts"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid entry, nothing was stored"
// @Failure 422 {object} errors.ErrorResponse "MAPPING_002 - Account not in this workspace"
// @Router /transfer-mappings/bulk [post]
func (h *TransferMappingHandler) BulkCreate(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	var req dto.BulkTransferMappingRequest
	if ok, err := bindRequest(c, &req); !ok {
		return err
	}

	inputs, sourceAccountID, err := req.ToInputs()
	if err != nil {
		return SendError(c, errors.ValidationInvalidID, errors.WithDetails(err.Error()))
	}

	result, err := h.service.BulkCreate(c.Request().Context(), workspaceID, inputs, sourceAccountID)
	if err != nil {
		return sendMappingError(c, err)
	}

	return c.JSON(http.StatusOK, dto.BulkResultResponse{
		Created: result.Created,
		Updated: result.Updated,
		Message: h.plural + " imported",
	})
}

// List returns the workspace's mappings, most used first
// @Summary List transfer mappings
// @Tags TransferMappings
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param target_account_id query string false "Restrict to one target account"
// @Param search query string false "Substring of the raw string"
// @Param offset query int false "Offset" default(0)
// @Param limit query int false "Limit" default(50)
// @Success 200 {object} dto.TransferMappingListResponse "Mappings"
// @Router /transfer-mappings [get]
func (h *TransferMappingHandler) List(c echo.Context) error {
	workspaceID, err := getWorkspaceIDFromContext(c)
	if err != nil {
		return SendError(c, errors.WorkspaceMissing)
	}

	filters, ok, err := bindMappingFilters(c, "target_account_id")
	if !ok {
		return err
	}

	mappings, total, err := h.service.List(c.Request().Context(), workspaceID, filters)
	if err != nil {
		return SendSystemError(c, err)
	}
	if mappings == nil {
		mappings = []models.TransferMapping{}
	}

	return c.JSON(http.StatusOK, dto.TransferMappingListResponse{
		Mappings: mappings,
		Total:    total,
		Offset:   filters.Offset,
		Limit:    filters.Limit,
	})
}

// Get retrieves one mapping
// @Summary Get transfer mapping by ID
// @Tags TransferMappings
// @Produce json
// @Param X-Workspace-ID header string true "Workspace ID (UUID)"
// @Param id path string true "Mapping ID (UUID)"
// @Success 200 {object} models.TransferMapping "Mapping"
// @Failure 404 {object} errors.ErrorResponse "MAPPING_001 - Mapping not found"
// @Router /transfer-mappings/{id} [get]
func (h *TransferMappingHandler) Get(c echo.Context) error {
	return withMapping(c, func(workspaceID, mappingID uuid.UUID) error {
		mapping, err := h.service.Get(c.Request().Context(), workspaceID, mappingID)
		if err != nil {
			return sendMappingError(c, err)
		}
		return c.JSON(http.StatusOK, mapping)
	})
}
