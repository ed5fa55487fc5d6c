package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"summer-success/tracker/internal/api/middleware"
	"summer-success/tracker/pkg/response"
)

// MustGetTokenID extracts the jti JWTAuth stored on the context. On failure
// it writes a 401 and returns false; callers should return immediately.
func MustGetTokenID(c *gin.Context) (string, bool) {
	v, exists := c.Get(middleware.ContextKeyTokenID)
	if !exists {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "not authenticated")
		return "", false
	}
	return s, true
}

// tokenExpiry the current token's expiry, or now when unknown
func tokenExpiry(c *gin.Context) time.Time {
	if v, ok := c.Get(middleware.ContextKeyTokenExp); ok {
		if t, ok := v.(time.Time); ok {
			return t
		}
	}
	return time.Now()
}
