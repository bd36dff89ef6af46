package v1

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danakita/cms-backend/models"
	"github.com/danakita/cms-backend/services"
)

func TestLogin_SetsAuthCookies(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@danakita.id", "password": "rahasia",
	}, "", "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
		User    struct {
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "admin@danakita.id", resp.User.Email)

	cookies := rec.Result().Cookies()
	byName := map[string]*http.Cookie{}
	for _, c := range cookies {
		byName[c.Name] = c
	}

	tokenCookie := byName["auth_token"]
	require.NotNil(t, tokenCookie)
	assert.Equal(t, resp.Token, tokenCookie.Value)
	assert.True(t, tokenCookie.HttpOnly)

	userCookie := byName["auth_user"]
	require.NotNil(t, userCookie)
	assert.False(t, userCookie.HttpOnly, "the frontend reads this one")

	// the identity cookie is URL-encoded JSON
	decoded, err := url.QueryUnescape(userCookie.Value)
	require.NoError(t, err)
	var identity struct {
		Email string `json:"email"`
		Role  string `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(decoded), &identity))
	assert.Equal(t, "admin@danakita.id", identity.Email)
	assert.Equal(t, "admin", identity.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email": "admin@danakita.id", "password": "salah",
	}, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"success":false,"message":"Email atau password salah."}`, rec.Body.String())
	assert.Empty(t, rec.Result().Cookies())
}

func TestSession(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)
	token := login(t, router, "admin@danakita.id", "rahasia")

	rec := doJSON(t, router, http.MethodGet, "/api/auth/session", nil, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Authenticated bool `json:"authenticated"`
		User          *struct {
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Authenticated)
	require.NotNil(t, resp.User)
	assert.Equal(t, "admin@danakita.id", resp.User.Email)

	// no cookie: still 200, just unauthenticated
	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	// garbage cookie behaves the same
	rec = doJSON(t, router, http.MethodGet, "/api/auth/session", nil, "not-a-jwt", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())
}

func TestLogout_ExpiresCookies(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)
	token := login(t, router, "admin@danakita.id", "rahasia")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/logout", nil, token, "")
	require.Equal(t, http.StatusOK, rec.Code)

	for _, c := range rec.Result().Cookies() {
		assert.Less(t, c.MaxAge, 0, "cookie %s must be expired", c.Name)
	}
}

func TestChangePassword_BearerMustMatchCookie(t *testing.T) {
	router, db := newTestAPI(t)
	user := seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)
	token := login(t, router, "admin@danakita.id", "rahasia")

	body := gin.H{"oldPassword": "rahasia", "newPassword": "rahasia-baru"}

	// no bearer at all
	rec := doJSON(t, router, http.MethodPost, "/api/auth/change-password", body, token, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// a valid token that is not the cookie token is still rejected
	other, err := services.NewAuthService(db, testSecret, 2*time.Hour).Sign(user)
	require.NoError(t, err)
	require.NotEqual(t, token, other)
	rec = doJSON(t, router, http.MethodPost, "/api/auth/change-password", body, token, other)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// matching bearer goes through
	rec = doJSON(t, router, http.MethodPost, "/api/auth/change-password", body, token, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	login(t, router, "admin@danakita.id", "rahasia-baru")
}

func TestChangePassword_Validation(t *testing.T) {
	router, db := newTestAPI(t)
	seedAPIUser(t, db, "admin@danakita.id", models.RoleAdmin)
	token := login(t, router, "admin@danakita.id", "rahasia")

	rec := doJSON(t, router, http.MethodPost, "/api/auth/change-password",
		gin.H{"oldPassword": "rahasia", "newPassword": "rahasia"}, token, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/change-password",
		gin.H{"oldPassword": "rahasia", "newPassword": "abc"}, token, token)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/api/auth/change-password",
		gin.H{"oldPassword": "salah", "newPassword": "rahasia-baru"}, token, token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
