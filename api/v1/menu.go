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

// MenuController serves the navigation menu CRUD surface.
type MenuController struct {
	menus *repositories.MenuRepository
}

// NewMenuController creates a new menu controller instance
func NewMenuController(db *gorm.DB) *MenuController {
	return &MenuController{menus: repositories.NewMenuRepository(db)}
}

// RegisterRoutes registers the /menus endpoints
func (ct *MenuController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/menus")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns menus with pagination, search and sorting
func (ct *MenuController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	menus, totalCount, err := ct.menus.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve menus",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       menus,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one menu
func (ct *MenuController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	menu, err := ct.menus.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve menu",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": menu})
}

// Create inserts a menu
func (ct *MenuController) Create(c *gin.Context) {
	var req dto.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	menu := models.Menu{
		Name:     req.Name,
		Path:     req.Path,
		Order:    req.Order,
		IsActive: true,
	}
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}
	if err := ct.menus.Create(&menu); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create menu",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": menu})
}

// Update modifies a menu
func (ct *MenuController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.MenuRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	menu, err := ct.menus.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve menu",
			"error":   err.Error(),
		})
		return
	}

	menu.Name = req.Name
	menu.Path = req.Path
	menu.Order = req.Order
	if req.IsActive != nil {
		menu.IsActive = *req.IsActive
	}

	if err := ct.menus.Save(&menu); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update menu",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": menu})
}

// Delete soft-deletes menus
func (ct *MenuController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.menus.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete menus",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menus deleted", "count": count})
}
