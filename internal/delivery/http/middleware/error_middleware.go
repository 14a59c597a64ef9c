package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"job-finder-backend/internal/delivery/http/response"
	"job-finder-backend/pkg/apperror"
	"job-finder-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("Request failed", "path", c.FullPath(), "error", err, "cause", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
				return
			}

			// Never expose internal error details to clients; log server-side
			// and send a generic message.
			logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
		}
	}
}
