package controller

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/database/model"
	"github.com/clubsite/server/logger"
)

func uploadTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("CLUBSITE_UPLOAD_FOLDER", t.TempDir())
	t.Setenv("CLUBSITE_LOG_FOLDER", t.TempDir())
	logger.InitLogger(logging.ERROR)

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	api := engine.Group("/api")
	NewUploadController(api)
	return engine
}

func memberToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"id":       7,
		"username": "member",
		"role":     model.RoleMember,
		"exp":      time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(config.GetJWTSecret()))
	if err != nil {
		t.Fatal(err)
	}
	return token
}

func pngUploadBody(t *testing.T, formCategory string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if formCategory != "" {
		if err := writer.WriteField("category", formCategory); err != nil {
			t.Fatal(err)
		}
	}
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="pic.png"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatal(err)
	}
	part.Write([]byte("\x89PNG\r\n\x1a\nfake image bytes"))
	writer.Close()
	return body, writer.FormDataContentType()
}

func postUpload(t *testing.T, engine *gin.Engine, path, formCategory string) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := pngUploadBody(t, formCategory)
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+memberToken(t))
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUploadCategoryFromQueryParameter(t *testing.T) {
	engine := uploadTestRouter(t)

	w := postUpload(t, engine, "/api/uploads?category=works", "")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"/uploads/works/`)
}

func TestUploadCategoryFromFormFallback(t *testing.T) {
	engine := uploadTestRouter(t)

	w := postUpload(t, engine, "/api/uploads", "news")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"/uploads/news/`)
}

func TestUploadMemberRefusedOutsideAllowedCategories(t *testing.T) {
	engine := uploadTestRouter(t)

	// no category anywhere coerces to general, which members may not use
	w := postUpload(t, engine, "/api/uploads", "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postUpload(t, engine, "/api/uploads?category=member_logos", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
