package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"shbudget-backend/internal/shared/response"
)

// MemberIDKey is the gin context key carrying the caller's member id.
const MemberIDKey = "memberID"

// MemberIdentity reads the caller identity from the X-Member-Id header.
// The id is trusted as-is; no credential verification happens in this service.
func MemberIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("X-Member-Id")
		if header == "" {
			response.Unauthorized(c, "X-Member-Id header is required")
			c.Abort()
			return
		}

		memberID, err := strconv.ParseInt(header, 10, 64)
		if err != nil || memberID <= 0 {
			response.Unauthorized(c, "X-Member-Id header must be a positive integer")
			c.Abort()
			return
		}

		c.Set(MemberIDKey, memberID)
		c.Next()
	}
}

// MemberID extracts the caller's member id set by MemberIdentity.
func MemberID(c *gin.Context) int64 {
	id, _ := c.Get(MemberIDKey)
	memberID, _ := id.(int64)
	return memberID
}
