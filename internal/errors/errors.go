// Package errors provides the application error type for assetboard.
// Service and ingestion failures are reported as *AppError so handlers can
// answer with a stable code and message without leaking internal details.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Internal != nil {
		return e.Message + ": " + e.Internal.Error()
	}
	return e.Message
}

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Is reports whether target carries the same code, so a wrapped copy of a
// sentinel still matches the sentinel with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Session errors.
var (
	ErrUnauthorized    = &AppError{Code: "UNAUTHORIZED", Message: "A valid session token is required", StatusCode: http.StatusUnauthorized}
	ErrSessionNotFound = &AppError{Code: "SESSION_NOT_FOUND", Message: "Session not found or expired", StatusCode: http.StatusUnauthorized}
)

// Dataset errors. A failed load never replaces the dataset already held by the session.
var (
	ErrDatasetNotLoaded  = &AppError{Code: "DATASET_NOT_LOADED", Message: "No dataset has been loaded for this session", StatusCode: http.StatusNotFound}
	ErrInvalidDataset    = &AppError{Code: "INVALID_DATASET", Message: "The file could not be read as a holdings table", StatusCode: http.StatusUnprocessableEntity}
	ErrUnsupportedFormat = &AppError{Code: "UNSUPPORTED_FORMAT", Message: "Unsupported file format, use .csv or .xlsx", StatusCode: http.StatusUnsupportedMediaType}
	ErrFileTooLarge      = &AppError{Code: "FILE_TOO_LARGE", Message: "Uploaded file exceeds the size limit", StatusCode: http.StatusRequestEntityTooLarge}
)

// Presentation errors.
var (
	ErrEmptyChart = &AppError{Code: "EMPTY_CHART", Message: "Nothing to draw for this view", StatusCode: http.StatusUnprocessableEntity}
)
