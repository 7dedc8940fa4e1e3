// Package response holds the JSON shapes and builders every endpoint
// answers with, so error payloads stay uniform across the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail is the body of every error response.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details carries field-specific problems on validation errors
	Details map[string]string `json:"details,omitempty"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest  = "invalid_request"
	CodeValidationError = "validation_error"
	CodeUpstreamError   = "upstream_error"
	CodeDataIntegrity   = "data_integrity_error"
	CodeTimeout         = "timeout"
	CodeInternalError   = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgUpstreamError      = "The flight provider is currently unavailable"
	MsgDataIntegrity      = "The flight provider returned unusable data"
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}
