package v1

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakita/cms-backend/models"
)

func uploadRequest(t *testing.T, router *gin.Engine, path, cookie, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "auth_token", Value: cookie})
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUploadLocal(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)

	png := []byte("\x89PNG\r\n\x1a\n")

	// auth required
	rec := uploadRequest(t, router, "/api/upload/local", "", "logo.png", png)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	token := login(t, router, "admin@danakita.id", "rahasia")
	rec = uploadRequest(t, router, "/api/upload/local", token, "logo.png", png)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		URL      string `json:"url"`
		Filename string `json:"filename"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, strings.HasPrefix(resp.URL, "/uploads/"))
	assert.True(t, strings.HasSuffix(resp.Filename, ".png"))

	// content sniffing, not the filename, decides
	rec = uploadRequest(t, router, "/api/upload/local", token, "fake.png", []byte("not an image"))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
