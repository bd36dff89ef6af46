package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/middleware"
	"github.com/danakita/cms-backend/repositories"
	"github.com/danakita/cms-backend/services"
	"github.com/danakita/cms-backend/utils"
)

// AuthController serves login, session, logout and change-password.
type AuthController struct {
	auth *services.AuthService
}

// NewAuthController creates a new auth controller instance
func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// RegisterRoutes registers the /auth endpoints. Change-password is the
// bearer variant: the Authorization header must match the cookie token.
func (ct *AuthController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/auth")
	group.POST("/login", ct.Login)
	group.GET("/session", ct.Session)
	group.POST("/logout", ct.Logout)
	group.POST("/change-password", requireAuth, middleware.RequireBearerMatch(), ct.ChangePassword)
}

// Login authenticates the user and mirrors identity into cookies
func (ct *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	user, token, err := ct.auth.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Email atau password salah.",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to login",
			"error":   err.Error(),
		})
		return
	}

	maxAge := int(ct.auth.TokenTTL().Seconds())
	utils.SetAuthCookies(c, token, user.Public(), maxAge)

	c.JSON(http.StatusOK, dto.LoginResponse{
		Success: true,
		User:    user.Public(),
		Token:   token,
	})
}

// Session reports whether the auth_token cookie still verifies
func (ct *AuthController) Session(c *gin.Context) {
	token, err := c.Cookie(utils.AuthTokenCookie)
	if err != nil || token == "" {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	claims, err := ct.auth.Verify(token)
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	userID, err := services.SubjectID(claims)
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	user, err := ct.auth.GetUser(userID)
	if err != nil {
		c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: false})
		return
	}

	public := user.Public()
	c.JSON(http.StatusOK, dto.SessionResponse{Authenticated: true, User: &public})
}

// Logout expires both auth cookies
func (ct *AuthController) Logout(c *gin.Context) {
	utils.ClearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// ChangePassword rotates the caller's password. The route additionally
// requires a bearer token byte-equal to the cookie (wired in the router);
// all validation happens before any write.
func (ct *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	userID := c.GetUint("userId")
	err := ct.auth.ChangePassword(userID, req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
	case errors.Is(err, services.ErrSamePassword),
		errors.Is(err, services.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	case errors.Is(err, services.ErrWrongPassword):
		c.JSON(http.StatusUnauthorized, gin.H{"message": err.Error()})
	case repositories.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to change password",
			"error":   err.Error(),
		})
	}
}
