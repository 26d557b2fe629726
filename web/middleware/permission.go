package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/clubsite/server/web/entity"
	"github.com/clubsite/server/web/policy"
)

// RequirePermission enforces the role policy table for one (resource,
// operation) pair. It must run after AuthRequired; a request that reaches it
// without an identity is rejected as unauthenticated, not forbidden.
func RequirePermission(resource policy.Resource, op policy.Operation) gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := GetIdentity(c)
		if !ok {
			entity.JSONError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}
		if !policy.Allows(identity.Role, resource, op) {
			entity.JSONError(c, http.StatusForbidden, "forbidden")
			c.Abort()
			return
		}
		c.Next()
	}
}
