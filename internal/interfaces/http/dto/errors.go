package dto

import (
	"net/http"
	"strings"
)

// Error codes used by the HTTP layer itself. Domain errors carry their own
// codes (NOT_FOUND, EMPTY_ORDER, INSUFFICIENT_STOCK, ...).
const (
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeConflict     = "CONFLICT"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// errorCodeHTTPStatus maps error codes to HTTP status codes. Business rule
// violations on the public order path map to 400, matching the original API.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	"NOT_FOUND":         http.StatusNotFound,
	"PRODUCT_NOT_FOUND": http.StatusNotFound,

	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"DUPLICATE_REQUEST":    http.StatusConflict,

	"EMPTY_ORDER":            http.StatusBadRequest,
	"INSUFFICIENT_STOCK":     http.StatusBadRequest,
	"EMPTY_UPLOAD":           http.StatusBadRequest,
	"UNSUPPORTED_MEDIA_TYPE": http.StatusBadRequest,
	"FILE_TOO_LARGE":         http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// INVALID_* codes are validation failures and map to 400; anything else
// unknown is treated as internal.
func GetHTTPStatus(code string) int {
	if status, ok := errorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
