package middleware

import (
	"errors"
	"net/http"

	"cvhub-backend/internal/delivery/http/response"
	"cvhub-backend/pkg/apperror"
	"cvhub-backend/pkg/logger"
	"cvhub-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error pushed with c.Error. AppErrors keep
// their status and message; anything else becomes a generic 500. Wrapped
// causes are logged, never sent.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			logger.Log.Error("Internal Server Error",
				"request_id", requestIDFrom(c),
				"path", c.FullPath(),
				"error", err,
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.")
			return
		}

		switch {
		case appErr.Code >= http.StatusInternalServerError:
			logger.Log.Error(appErr.Message,
				"request_id", requestIDFrom(c),
				"path", c.FullPath(),
				"error", appErr.Err,
			)
		case appErr.Code == http.StatusUnauthorized:
			if GetAuthContext(c).IsAuthenticated() {
				logDenied(c, security.EventOwnershipDenied)
			} else {
				logDenied(c, security.EventUnauthenticated)
			}
		case appErr.Code == http.StatusForbidden:
			logDenied(c, security.EventRoleDenied)
		case appErr.Code == http.StatusBadRequest:
			security.DefaultLogger().Log(c.Request.Context(), security.SecurityEvent{
				Event:     security.EventValidationFailed,
				IP:        c.ClientIP(),
				RequestID: requestIDFrom(c),
				Details:   map[string]any{"endpoint": c.FullPath(), "message": appErr.Message},
			})
		}

		response.Error(c, appErr.Code, appErr.Message)
	}
}

func logDenied(c *gin.Context, event security.EventType) {
	security.DefaultLogger().LogAccessDenied(
		c.Request.Context(),
		event,
		GetAuthContext(c).UserID,
		c.ClientIP(),
		requestIDFrom(c),
		c.FullPath(),
	)
}
