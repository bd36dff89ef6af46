package v1

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/middleware"
	"github.com/danakita/cms-backend/services"
)

// Deps carries the explicitly constructed collaborators; nothing here is
// reached through package globals.
type Deps struct {
	DB      *gorm.DB
	Auth    *services.AuthService
	Uploads *services.UploadService
	Drive   *services.DriveService
}

// RegisterRoutes registers all v1 API routes. Reads are public, every
// mutation sits behind the cookie auth middleware; change-password
// additionally requires a bearer token matching the cookie.
func RegisterRoutes(api *gin.RouterGroup, deps Deps) {
	api.GET("/health", HealthCheck)

	requireAuth := middleware.RequireAuth(deps.Auth)

	NewAuthController(deps.Auth).RegisterRoutes(api, requireAuth)

	NewMenuController(deps.DB).RegisterRoutes(api, requireAuth)
	NewSiteConfigController(deps.DB).RegisterRoutes(api, requireAuth)
	NewEventController(deps.DB).RegisterRoutes(api, requireAuth)
	NewLegalController(deps.DB).RegisterRoutes(api, requireAuth)
	NewQnaController(deps.DB).RegisterRoutes(api, requireAuth)
	NewTimelineController(deps.DB).RegisterRoutes(api, requireAuth)

	// tables first: /business-models/tables must not be shadowed by
	// /business-models/:id
	NewTableController(deps.DB).RegisterRoutes(api, requireAuth)
	NewBusinessModelController(deps.DB).RegisterRoutes(api, requireAuth)

	NewUploadController(deps.Uploads, deps.Drive).RegisterRoutes(api, requireAuth)
}
