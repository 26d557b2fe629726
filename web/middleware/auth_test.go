package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/web/policy"
)

var testSecret = []byte("test-secret")

func signedToken(t *testing.T, id int, role string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       id,
		"username": "tester",
		"role":     role,
		"exp":      time.Now().Add(expiresIn).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/required", AuthRequired(testSecret), func(c *gin.Context) {
		identity, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"id": identity.Id, "role": identity.Role})
	})
	engine.GET("/optional", OptionalAuth(testSecret), func(c *gin.Context) {
		if identity, ok := GetIdentity(c); ok {
			c.JSON(http.StatusOK, gin.H{"role": identity.Role})
			return
		}
		c.JSON(http.StatusOK, gin.H{"role": "anonymous"})
	})
	return engine
}

func doGet(engine *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	engine := authTestRouter()

	tests := []struct {
		name     string
		header   string
		expected int
	}{
		{"valid token", "Bearer " + signedToken(t, 7, model.RoleMember, time.Hour), http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
		{"expired token", "Bearer " + signedToken(t, 7, model.RoleMember, -time.Minute), http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(engine, "/required", tc.header)
			assert.Equal(t, tc.expected, w.Code)
		})
	}
}

func TestAuthRequiredRejectsWrongSigningKey(t *testing.T) {
	engine := authTestRouter()

	claims := jwt.MapClaims{"id": 1, "role": model.RoleAdmin, "exp": time.Now().Add(time.Hour).Unix()}
	forged, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	assert.NoError(t, err)

	w := doGet(engine, "/required", "Bearer "+forged)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	engine := authTestRouter()

	// valid token attaches the identity
	w := doGet(engine, "/optional", "Bearer "+signedToken(t, 7, model.RoleEditor, time.Hour))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), model.RoleEditor)

	// no token is anonymous
	w = doGet(engine, "/optional", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")

	// an invalid token degrades to anonymous instead of failing
	w = doGet(engine, "/optional", "Bearer "+signedToken(t, 7, model.RoleEditor, -time.Minute))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "anonymous")
}

func TestRequirePermission(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.DELETE("/news/:id",
		AuthRequired(testSecret),
		RequirePermission(policy.ResourceNews, policy.OpDelete),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	adminToken := "Bearer " + signedToken(t, 1, model.RoleAdmin, time.Hour)
	memberToken := "Bearer " + signedToken(t, 7, model.RoleMember, time.Hour)

	req := httptest.NewRequest(http.MethodDelete, "/news/1", nil)
	req.Header.Set("Authorization", adminToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/news/1", nil)
	req.Header.Set("Authorization", memberToken)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	req = httptest.NewRequest(http.MethodDelete, "/news/1", nil)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
