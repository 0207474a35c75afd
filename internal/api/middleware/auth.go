package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kgex/bigbbe/internal/model"
	"github.com/kgex/bigbbe/pkg/jwt"
	"github.com/kgex/bigbbe/pkg/redis"
	"github.com/kgex/bigbbe/pkg/response"
)

// Context keys set by JWTAuth.
const (
	CtxUserID   = "user_id"
	CtxEmail    = "email"
	CtxFullName = "full_name"
	CtxRole     = "role"
	CtxClaims   = "claims"
)

// JWTAuth verifies the bearer token and loads its claims into the context.
// With a redis client present, revoked tokens are rejected too; with nil the
// blacklist check is skipped and tokens simply age out.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.Unauthorized(c, 10002, "missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Unauthorized(c, 10002, "invalid authorization header")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.Unauthorized(c, 10002, "token expired")
			} else {
				response.Unauthorized(c, 10002, "invalid token")
			}
			c.Abort()
			return
		}

		if rdb != nil && claims.ID != "" {
			if revoked, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID); err == nil && revoked {
				response.Unauthorized(c, 10002, "token revoked")
				c.Abort()
				return
			}
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxEmail, claims.Email)
		c.Set(CtxFullName, claims.FullName)
		c.Set(CtxRole, claims.Role)
		c.Set(CtxClaims, claims)

		c.Next()
	}
}

// RoleAuth allows only callers whose token carries one of the given roles.
// Mount after JWTAuth.
func RoleAuth(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxRole)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Forbidden(c, 10003, "insufficient permissions")
		c.Abort()
	}
}

// AdminOnly is RoleAuth pinned to the admin role.
func AdminOnly() gin.HandlerFunc {
	return RoleAuth(model.RoleAdmin)
}
