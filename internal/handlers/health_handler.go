package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/errors"
)

const healthPingTimeout = 2 * time.Second

// DatabasePinger is satisfied by *sql.DB
type DatabasePinger interface {
	PingContext(ctx context.Context) error
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Time     string `json:"time"`
}

type HealthCheckHandler struct {
	db  DatabasePinger
	now func() time.Time
}

func NewHealthCheckHandler(db DatabasePinger) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, now: time.Now}
}

// HealthCheck answers 200 while the database responds to a ping and
// SYSTEM_003 otherwise
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		slog.WarnContext(ctx, "health check ping failed", "error", err)
		return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("database unreachable"))
	}

	return c.JSON(http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "up",
		Time:     h.now().UTC().Format(time.RFC3339),
	})
}
