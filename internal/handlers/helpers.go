package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/logger"
	"assetboard/internal/middleware"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getSessionID extracts the session ID set by the session middleware.
// Returns ErrUnauthorized if not present.
func getSessionID(c *gin.Context) (string, error) {
	id, ok := middleware.SessionID(c)
	if !ok {
		return "", apperrors.ErrUnauthorized
	}
	return id, nil
}

// investorParam returns the investor path parameter. Investors are
// matched literally, so only surrounding whitespace is removed.
func investorParam(c *gin.Context) (string, error) {
	investor := strings.TrimSpace(c.Param("investor"))
	if investor == "" {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Investor is required")
	}
	return investor, nil
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{Error: ErrorDetail{
		Code:    apperrors.ErrInternalServer.Code,
		Message: apperrors.ErrInternalServer.Message,
	}})
}
