package middleware

import (
	stderrors "errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/errors"
	"github.com/robertromore/budget-sub015/internal/handlers"
	"github.com/robertromore/budget-sub015/internal/repositories"
)

// WorkspaceIDHeader scopes every /api/v1 request to one workspace
const WorkspaceIDHeader = "X-Workspace-ID"

// RequireWorkspace resolves the X-Workspace-ID header to an existing
// workspace and stores its id on the context for the handlers
func RequireWorkspace(workspaceRepo repositories.WorkspaceRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(WorkspaceIDHeader)
			if header == "" {
				return handlers.SendError(c, errors.WorkspaceMissing)
			}

			workspaceID, err := uuid.Parse(header)
			if err != nil {
				return handlers.SendError(c, errors.WorkspaceInvalidID)
			}

			if _, err := workspaceRepo.GetByID(workspaceID); err != nil {
				if stderrors.Is(err, repositories.ErrWorkspaceNotFound) {
					return handlers.SendError(c, errors.WorkspaceNotFound)
				}
				return handlers.SendSystemError(c, err)
			}

			c.Set(handlers.WorkspaceIDContextKey, workspaceID)
			return next(c)
		}
	}
}
