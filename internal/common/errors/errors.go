// Package errors provides standardized error handling for the Beacon content engine.
package errors

import (
	"fmt"
	"net/http"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Idea generation errors
const (
	ErrCodeConfiguration             ErrorCode = "CONFIGURATION_ERROR"
	ErrCodeRateLimited               ErrorCode = "RATE_LIMITED"
	ErrCodeQuotaExhausted            ErrorCode = "QUOTA_EXHAUSTED"
	ErrCodeUpstreamError             ErrorCode = "UPSTREAM_ERROR"
	ErrCodeMalformedUpstreamResponse ErrorCode = "MALFORMED_UPSTREAM_RESPONSE"

	// Client-side request errors
	ErrCodeNetworkFailure          ErrorCode = "NETWORK_FAILURE"
	ErrCodeUnexpectedResponseShape ErrorCode = "UNEXPECTED_RESPONSE_SHAPE"

	// Request handling errors
	ErrCodeInvalidRequestBody ErrorCode = "INVALID_REQUEST_BODY"
	ErrCodeNotFound           ErrorCode = "NOT_FOUND"
	ErrCodeGenerationBusy     ErrorCode = "GENERATION_BUSY"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// HTTPStatus maps an error code to the status the API surfaces to callers.
// Rate limiting and quota exhaustion keep their upstream statuses; everything
// else about the gateway collapses to a 500.
func (e *StandardError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case ErrCodeQuotaExhausted:
		return http.StatusPaymentRequired
	case ErrCodeInvalidRequestBody:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeGenerationBusy:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ==========================
// 2. Error Constructors
// ==========================

// NewConfigurationError reports a missing or unusable credential. Raised
// before any network call is made.
func NewConfigurationError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeConfiguration,
		Message:   "Gateway credential is not configured",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError mirrors an upstream 429.
func NewRateLimitedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Rate limit exceeded. Please try again in a moment.",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewQuotaExhaustedError mirrors an upstream 402.
func NewQuotaExhaustedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeQuotaExhausted,
		Message:   "AI credits exhausted. Please add credits in Settings → Workspace → Usage.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUpstreamError reports any other non-2xx gateway status.
func NewUpstreamError(status int, body string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUpstreamError,
		Message:   fmt.Sprintf("AI gateway error: %d", status),
		Details:   body,
		Retryable: false,
		Metadata:  map[string]interface{}{"upstreamStatus": status},
		Timestamp: time.Now().UTC(),
	}
}

// NewMalformedUpstreamResponseError reports a gateway reply that lacks the
// expected tool-call payload or violates the response schema.
func NewMalformedUpstreamResponseError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeMalformedUpstreamResponse,
		Message:   "No tool call response from AI",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNetworkFailureError wraps a transport-level failure on the client side.
func NewNetworkFailureError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeNetworkFailure,
		Message:   "Could not reach the idea generation service",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnexpectedResponseShapeError reports a 200 whose body lacks the ideas array.
func NewUnexpectedResponseShapeError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnexpectedResponseShape,
		Message:   "Unexpected response format",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidRequestBodyError reports an unparseable or invalid request body.
func NewInvalidRequestBodyError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequestBody,
		Message:   "Invalid request body",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError reports a missing resource.
func NewNotFoundError(what string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   fmt.Sprintf("%s not found", what),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewGenerationBusyError reports a re-entrant generation trigger.
func NewGenerationBusyError() *StandardError {
	return &StandardError{
		Code:      ErrCodeGenerationBusy,
		Message:   "A generation is already in progress",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
