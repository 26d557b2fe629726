// Package middleware provides the request-level plumbing of the clubsite API:
// bearer-token verification, role policy enforcement, login rate limiting and
// request logging.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/web/entity"
	"github.com/clubsite/server/web/policy"
)

const identityKey = "identity"

// Claims is the token payload issued at login.
type Claims struct {
	Id       int    `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

func parseToken(tokenString string, secret []byte) (policy.Identity, bool) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return policy.Identity{}, false
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return policy.Identity{}, false
	}
	return policy.Identity{Id: claims.Id, Username: claims.Username, Role: claims.Role}, true
}

// AuthRequired rejects requests without a valid bearer token. The response
// does not reveal whether the token was absent, malformed or expired beyond
// the 401 itself.
func AuthRequired(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := bearerToken(c)
		if tokenString == "" {
			entity.JSONError(c, http.StatusUnauthorized, "authorization required")
			c.Abort()
			return
		}
		identity, ok := parseToken(tokenString, secret)
		if !ok {
			entity.JSONError(c, http.StatusUnauthorized, "token is not valid")
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// OptionalAuth attaches an identity when a valid bearer token is present and
// leaves the request anonymous otherwise. An invalid token is deliberately
// treated as no token at all, never as an error.
func OptionalAuth(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tokenString := bearerToken(c); tokenString != "" {
			if identity, ok := parseToken(tokenString, secret); ok {
				c.Set(identityKey, identity)
			}
		}
		c.Next()
	}
}

// Auth is AuthRequired bound to the configured signing secret.
func Auth() gin.HandlerFunc {
	return AuthRequired([]byte(config.GetJWTSecret()))
}

// AuthOptional is OptionalAuth bound to the configured signing secret.
func AuthOptional() gin.HandlerFunc {
	return OptionalAuth([]byte(config.GetJWTSecret()))
}

// GetIdentity returns the verified identity of the request, if any.
func GetIdentity(c *gin.Context) (policy.Identity, bool) {
	val, exists := c.Get(identityKey)
	if !exists {
		return policy.Identity{}, false
	}
	identity, ok := val.(policy.Identity)
	return identity, ok
}
