package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"recruitment-portal-backend/internal/delivery/http/response"
	"recruitment-portal-backend/pkg/apperror"
	"recruitment-portal-backend/pkg/logger"
)

// ErrorHandler maps errors appended to the gin context onto the JSON
// envelope. AppError kinds carry their own status; anything else is logged
// server-side and rendered as a generic internal error so storage details
// never leak to a caller.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Kind == apperror.KindPersistence && appErr.Err != nil {
				logger.Log.Error("storage failure", "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Kind)
			return
		}

		logger.Log.Error("unclassified failure", "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", apperror.KindPersistence)
	}
}
