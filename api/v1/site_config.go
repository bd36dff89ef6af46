package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/middleware"
	"github.com/danakita/cms-backend/models"
	"github.com/danakita/cms-backend/repositories"
	"github.com/danakita/cms-backend/utils"
)

// SiteConfigController serves the site-config CRUD surface. Mutations
// are admin-only; configs carry global landing-page settings.
type SiteConfigController struct {
	configs *repositories.SiteConfigRepository
}

// NewSiteConfigController creates a new site config controller instance
func NewSiteConfigController(db *gorm.DB) *SiteConfigController {
	return &SiteConfigController{configs: repositories.NewSiteConfigRepository(db)}
}

// RegisterRoutes registers the /configs endpoints
func (ct *SiteConfigController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	adminOnly := middleware.RequireRole(string(models.RoleAdmin))
	group := api.Group("/configs")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, adminOnly, ct.Create)
	group.PUT("/:id", requireAuth, adminOnly, ct.Update)
	group.DELETE("", requireAuth, adminOnly, ct.Delete)
}

// List returns configs with pagination, search and sorting
func (ct *SiteConfigController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	configs, totalCount, err := ct.configs.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve configs",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       configs,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one config
func (ct *SiteConfigController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	cfg, err := ct.configs.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Config not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve config",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// Create inserts a config; the key must be unique among live configs
func (ct *SiteConfigController) Create(c *gin.Context) {
	var req dto.SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	inUse, err := ct.configs.KeyInUse(req.Key, 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create config",
			"error":   err.Error(),
		})
		return
	}
	if inUse {
		c.JSON(http.StatusConflict, gin.H{"message": "Config key already exists"})
		return
	}

	cfg := models.SiteConfig{Key: req.Key, Value: req.Value, Group: req.Group}
	if cfg.Group == "" {
		cfg.Group = "general"
	}
	if err := ct.configs.Create(&cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create config",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": cfg})
}

// Update modifies a config, keeping the live-key uniqueness invariant
func (ct *SiteConfigController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.SiteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	cfg, err := ct.configs.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Config not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve config",
			"error":   err.Error(),
		})
		return
	}

	inUse, err := ct.configs.KeyInUse(req.Key, cfg.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update config",
			"error":   err.Error(),
		})
		return
	}
	if inUse {
		c.JSON(http.StatusConflict, gin.H{"message": "Config key already exists"})
		return
	}

	cfg.Key = req.Key
	cfg.Value = req.Value
	if req.Group != "" {
		cfg.Group = req.Group
	}

	if err := ct.configs.Save(&cfg); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update config",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": cfg})
}

// Delete soft-deletes configs
func (ct *SiteConfigController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.configs.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete configs",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Configs deleted", "count": count})
}
