package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kgex/bigbbe/internal/api/middleware"
	"github.com/kgex/bigbbe/pkg/jwt"
)

// currentUserID returns the authenticated caller's id. Zero means the auth
// middleware did not run, which is a wiring bug.
func currentUserID(c *gin.Context) uint {
	if v, ok := c.Get(middleware.CtxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// currentRole returns the authenticated caller's role.
func currentRole(c *gin.Context) string {
	return c.GetString(middleware.CtxRole)
}

// currentClaims returns the full token claims, nil when unauthenticated.
func currentClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(middleware.CtxClaims); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// pathID parses the :id path segment.
func pathID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}
