package errors

import "net/http"

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Workspace error codes (WORKSPACE_*)
const (
	WorkspaceMissing   ErrorCode = "WORKSPACE_001"
	WorkspaceInvalidID ErrorCode = "WORKSPACE_002"
	WorkspaceNotFound  ErrorCode = "WORKSPACE_003"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
	ValidationInvalidID     ErrorCode = "VALIDATION_006"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound  ErrorCode = "ACCOUNT_001"
	AccountInvalidID ErrorCode = "ACCOUNT_002"
)

// Pattern error codes (PATTERN_*)
const (
	PatternNotFound          ErrorCode = "PATTERN_001"
	PatternInvalidTransition ErrorCode = "PATTERN_002"
	PatternMissingPayee      ErrorCode = "PATTERN_003"
	PatternInvalidCriteria   ErrorCode = "PATTERN_004"
	PatternInvalidStatus     ErrorCode = "PATTERN_005"
)

// Mapping error codes (MAPPING_*), shared by transfer mappings and payee aliases
const (
	MappingNotFound       ErrorCode = "MAPPING_001"
	MappingInvalidTarget  ErrorCode = "MAPPING_002"
	MappingInvalidTrigger ErrorCode = "MAPPING_003"
	MappingEmptyRaw       ErrorCode = "MAPPING_004"
)

// Schedule error codes (SCHEDULE_*)
const (
	ScheduleNotFound         ErrorCode = "SCHEDULE_001"
	ScheduleConversionFailed ErrorCode = "SCHEDULE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

type codeInfo struct {
	message string
	status  int
}

// registry holds the default message and HTTP status of every code
var registry = map[ErrorCode]codeInfo{
	WorkspaceMissing:   {"Workspace header X-Workspace-ID is required", http.StatusBadRequest},
	WorkspaceInvalidID: {"Invalid workspace ID format", http.StatusBadRequest},
	WorkspaceNotFound:  {"Workspace not found", http.StatusNotFound},

	ValidationGeneral:       {"Validation failed", http.StatusBadRequest},
	ValidationRequiredField: {"Required field is missing", http.StatusBadRequest},
	ValidationInvalidFormat: {"Invalid field format", http.StatusBadRequest},
	ValidationOutOfRange:    {"Field value is out of allowed range", http.StatusBadRequest},
	ValidationInvalidDate:   {"Invalid date format or range", http.StatusBadRequest},
	ValidationInvalidID:     {"Invalid ID format", http.StatusBadRequest},

	AccountNotFound:  {"Account not found", http.StatusNotFound},
	AccountInvalidID: {"Invalid account ID format", http.StatusBadRequest},

	PatternNotFound:          {"Detected pattern not found", http.StatusNotFound},
	PatternInvalidTransition: {"Pattern status transition is not allowed", http.StatusConflict},
	PatternMissingPayee:      {"Pattern has no payee and cannot be converted to a schedule", http.StatusUnprocessableEntity},
	PatternInvalidCriteria:   {"Invalid detection criteria", http.StatusBadRequest},
	PatternInvalidStatus:     {"Invalid pattern status or type filter", http.StatusBadRequest},

	MappingNotFound:       {"Mapping not found", http.StatusNotFound},
	MappingInvalidTarget:  {"Mapping target is missing or invalid", http.StatusUnprocessableEntity},
	MappingInvalidTrigger: {"Invalid mapping trigger", http.StatusBadRequest},
	MappingEmptyRaw:       {"Raw payee string must not be empty", http.StatusBadRequest},

	ScheduleNotFound:         {"Schedule not found", http.StatusNotFound},
	ScheduleConversionFailed: {"Failed to convert pattern to schedule", http.StatusInternalServerError},

	SystemInternalError:      {"An unexpected error occurred. Please contact support with trace ID", http.StatusInternalServerError},
	SystemDatabaseError:      {"Database connection error", http.StatusInternalServerError},
	SystemServiceUnavailable: {"Service temporarily unavailable", http.StatusServiceUnavailable},
	SystemConfigurationError: {"System configuration error", http.StatusInternalServerError},
	SystemUnexpectedError:    {"An unexpected error occurred", http.StatusInternalServerError},
	SystemRateLimitExceeded:  {"Rate limit exceeded. Please try again later", http.StatusTooManyRequests},
	SystemRouteNotFound:      {"Route not found", http.StatusNotFound},
}

// GetErrorMessage returns the default message for code, or a generic one
// for unregistered codes
func GetErrorMessage(code ErrorCode) string {
	if info, ok := registry[code]; ok {
		return info.message
	}
	return "An error occurred"
}

// GetHTTPStatus returns the HTTP status for code. Unregistered codes are 500.
func GetHTTPStatus(code ErrorCode) int {
	if info, ok := registry[code]; ok {
		return info.status
	}
	return http.StatusInternalServerError
}

func IsValidErrorCode(code ErrorCode) bool {
	_, ok := registry[code]
	return ok
}
