package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/robertromore/budget-sub015/internal/errors"
)

// ERROR RESPONSES
//
// Handlers answer every failure through one of two helpers:
//
// 1. SendError - client and domain errors (4xx)
//    - Malformed body or query: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Missing workspace scope: SendError(c, errors.WorkspaceMissing)
//    - Unknown or foreign rows: SendError(c, errors.PatternNotFound)
//    - Lifecycle violations: SendError(c, errors.PatternInvalidTransition)
//
// 2. SendSystemError - repository and other internal failures (500)
//    The client only sees the generic message and the trace ID.
//
// Do not return echo.NewHTTPError or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, _ := errors.WrapSystemError(err, traceID)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}
