package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "assetboard/internal/errors"
	"assetboard/internal/logger"
)

// ErrorHandler writes the last error recorded on the context as a JSON
// error body, unless a handler already wrote a response. Causes are logged
// with the request's session, never returned to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		appErr := resolve(last)
		if appErr.Internal != nil {
			sessionID, _ := SessionID(c)
			logger.Named("http").Errorw("request failed",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
				"session_id", sessionID,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}

// resolve maps a context error onto the error taxonomy. Oversized bodies
// and binding failures keep their own codes; anything else unknown is
// an internal error.
func resolve(ginErr *gin.Error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(ginErr.Err, &appErr) {
		return appErr
	}

	var tooLarge *http.MaxBytesError
	if errors.As(ginErr.Err, &tooLarge) {
		return apperrors.ErrFileTooLarge
	}

	if ginErr.IsType(gin.ErrorTypeBind) {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, ginErr.Err.Error())
	}

	return apperrors.Wrap(apperrors.ErrInternalServer, ginErr.Err)
}
