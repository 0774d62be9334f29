package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError carrying code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == code
}

const (
	CodeNotReady        = "SYNC_001"
	CodeSyncInterrupted = "SYNC_002"
	CodeConnection      = "NODE_001"
	CodeNoEndpoint      = "NODE_002"
	CodeInvalidAmount   = "PAY_002"
	CodeNotFound        = "PAY_004"
	CodeIssueExhausted  = "PAY_008"
	CodeInvalidConfig   = "CFG_001"
	CodeInvalidToken    = "AUTH_003"
	CodeRateLimited     = "RATE_001"
	CodeInternal        = "SYS_001"
)

// ---- Sync (SYNC) ----

// ErrNotReady is returned when an operation needs a synchronized wallet view.
// Callers should retry once readiness is reported.
func ErrNotReady() *AppError {
	return New(CodeNotReady, "Wallet is not synchronized with the node yet", http.StatusServiceUnavailable)
}

// ErrSyncInterrupted marks a scan step that failed mid-flight.
func ErrSyncInterrupted(err error) *AppError {
	return Wrap(CodeSyncInterrupted, "Wallet synchronization interrupted", http.StatusServiceUnavailable, err)
}

// ---- Node connectivity (NODE) ----

func ErrConnection(err error) *AppError {
	return Wrap(CodeConnection, "Node connection failed", http.StatusBadGateway, err)
}

func ErrNoEndpoint() *AppError {
	return New(CodeNoEndpoint, "No node endpoint configured", http.StatusServiceUnavailable)
}

// ---- Payment requests (PAY) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrIssueExhausted() *AppError {
	return New(CodeIssueExhausted, "Could not issue a unique payment identifier", http.StatusServiceUnavailable)
}

// ---- Configuration (CFG) ----

func ErrInvalidConfig(err error) *AppError {
	return Wrap(CodeInvalidConfig, "Invalid configuration", http.StatusInternalServerError, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimited, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap(CodeInternal, "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a PAY_002-style validation error.
func Validation(message string) *AppError {
	return New(CodeInvalidAmount, message, http.StatusBadRequest)
}
