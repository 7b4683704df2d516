package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"litrevu/internal/shared/constants"
)

// errHandled signals that a helper already wrote the HTTP response and the
// caller should just return.
var errHandled = errors.New("response already written")

// currentUserID extracts the authenticated user's ID set by the auth
// middleware. The bool is false when the value is missing or malformed.
func currentUserID(c *gin.Context) (uint, bool) {
	userIDVal, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0, false
	}
	return userID, true
}
