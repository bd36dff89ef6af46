package utils

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/danakita/cms-backend/models"
)

const (
	// AuthTokenCookie holds the signed JWT
	AuthTokenCookie = "auth_token"
	// AuthUserCookie mirrors the public identity as URL-encoded JSON
	AuthUserCookie = "auth_user"
)

// SetAuthCookies writes the token and identity cookies. gin URL-encodes
// cookie values, which gives the auth_user cookie its encoded-JSON shape.
func SetAuthCookies(c *gin.Context, token string, user models.PublicUser, maxAge int) {
	c.SetCookie(AuthTokenCookie, token, maxAge, "/", "", false, true)

	payload, err := json.Marshal(user)
	if err != nil {
		return
	}
	// readable by the frontend, so not HttpOnly
	c.SetCookie(AuthUserCookie, string(payload), maxAge, "/", "", false, false)
}

// ClearAuthCookies expires both auth cookies.
func ClearAuthCookies(c *gin.Context) {
	c.SetCookie(AuthTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(AuthUserCookie, "", -1, "/", "", false, false)
}
