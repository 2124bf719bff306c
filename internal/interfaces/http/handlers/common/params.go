package common

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"leafsmp/internal/shared/errors"
)

// ParseTicketID reads the :id path segment. Ticket ids are opaque to
// clients, so anything that is not a stored id is simply not found.
func ParseTicketID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewNotFoundError("Ticket not found")
	}
	return uint(id), nil
}

// ParseAfterID reads the optional ?after= cursor; empty means 0.
func ParseAfterID(c *gin.Context) (uint, error) {
	raw := c.Query("after")
	if raw == "" {
		return 0, nil
	}
	after, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.NewValidationError("Validation failed", "after must be a message id")
	}
	return uint(after), nil
}
