package middleware

import (
	"context"
	"errors"
	"net/http"

	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ErrorBoundary turns errors attached by handlers with c.Error into a
// response. Store constraint violations become 409, timeouts 504 and
// everything else 500.
func ErrorBoundary(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		entry := log.WithFields(logrus.Fields{
			"request_id": RequestID(c),
			"path":       c.Request.URL.Path,
		}).WithError(err)

		if c.Writer.Written() {
			entry.Warn("error after response was written")
			return
		}

		status, message := classify(err)
		if status >= http.StatusInternalServerError {
			entry.Error("request failed")
		} else {
			entry.Warn("request rejected by store")
		}
		c.JSON(status, dto.ErrorResponse{Error: message})
	}
}

func classify(err error) (int, string) {
	switch {
	case store.IsConstraintViolation(err):
		return http.StatusConflict, "The request conflicts with existing data"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "The request timed out"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
