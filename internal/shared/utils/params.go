package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"litrevu/internal/shared/errors"
)

// ParseUintParam parses a positive integer URL parameter.
func ParseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	value, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError("invalid " + name + " parameter")
	}
	return uint(value), nil
}
