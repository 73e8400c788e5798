package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"gamestore/backend/internal/dto"
	"gamestore/backend/internal/store"
	"gamestore/backend/internal/validation"

	"github.com/gin-gonic/gin"
)

// DefaultRequestTimeout bounds a unit of work when no timeout is configured.
const DefaultRequestTimeout = 5 * time.Second

// ValidationErrorResponse is returned with 400 when a payload breaks a field rule.
type ValidationErrorResponse struct {
	Error  string                  `json:"error" example:"validation failed"`
	Fields []validation.FieldError `json:"fields"`
}

// parseID reads the :id path parameter. It writes 400 and returns ok false
// when the parameter is not a positive integer. Positive integers above
// store.MaxID come back with known false; no stored game can have them.
func parseID(c *gin.Context) (id uint, known, ok bool) {
	n, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if errors.Is(err, strconv.ErrRange) {
		return 0, false, true
	}
	if err != nil || n == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid ID"})
		return 0, false, false
	}
	if n > store.MaxID {
		return 0, false, true
	}
	return uint(n), true, true
}

// bindPayload decodes the JSON body into payload and runs the field rules on
// it. It writes 400 and returns false when either step fails.
func bindPayload(c *gin.Context, v *validation.Validator, payload interface{}) bool {
	if err := c.ShouldBindJSON(payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return false
	}
	if fields := v.Check(payload); len(fields) > 0 {
		c.JSON(http.StatusBadRequest, ValidationErrorResponse{Error: "validation failed", Fields: fields})
		return false
	}
	return true
}

// abortWithError hands err to the router's error boundary untouched.
func abortWithError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

func requestContext(c *gin.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return context.WithTimeout(c.Request.Context(), timeout)
}
