package handlers

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// WorkspaceIDContextKey is the echo context key the workspace middleware fills
const WorkspaceIDContextKey = "workspace_id"

const (
	defaultPageLimit = 50
	maxPageLimit     = 500
)

// ErrMissingWorkspace is returned when no workspace was resolved for the request
var ErrMissingWorkspace = fmt.Errorf("missing workspace")

// getWorkspaceIDFromContext returns the workspace the request is scoped to
func getWorkspaceIDFromContext(c echo.Context) (uuid.UUID, error) {
	workspaceID, ok := c.Get(WorkspaceIDContextKey).(uuid.UUID)
	if !ok || workspaceID == uuid.Nil {
		return uuid.UUID{}, ErrMissingWorkspace
	}
	return workspaceID, nil
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

// getPagination reads offset and limit query params, clamped to sane bounds
func getPagination(c echo.Context) (offset, limit int) {
	offset = getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit = getIntParam(c, "limit", defaultPageLimit)
	if limit <= 0 || limit > maxPageLimit {
		limit = defaultPageLimit
	}
	return offset, limit
}

// getUUIDParam parses a path parameter as a UUID
func getUUIDParam(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}
