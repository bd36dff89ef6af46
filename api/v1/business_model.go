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

// BusinessModelController serves the business-model CRUD surface.
type BusinessModelController struct {
	businessModels *repositories.BusinessModelRepository
}

// NewBusinessModelController creates a new business model controller instance
func NewBusinessModelController(db *gorm.DB) *BusinessModelController {
	return &BusinessModelController{businessModels: repositories.NewBusinessModelRepository(db)}
}

// RegisterRoutes registers the /business-models endpoints
func (ct *BusinessModelController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/business-models")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns business models with pagination, search and sorting
func (ct *BusinessModelController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	bms, totalCount, err := ct.businessModels.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve business models",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       bms,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one business model with its live tables
func (ct *BusinessModelController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	bm, err := ct.businessModels.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business model not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve business model",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bm})
}

// Create inserts a business model
func (ct *BusinessModelController) Create(c *gin.Context) {
	var req dto.BusinessModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	bm := models.BusinessModel{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		Order:       req.Order,
	}
	if err := ct.businessModels.Create(&bm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create business model",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": bm})
}

// Update modifies a business model
func (ct *BusinessModelController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.BusinessModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	bm, err := ct.businessModels.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Business model not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve business model",
			"error":   err.Error(),
		})
		return
	}

	bm.Name = req.Name
	bm.Slug = req.Slug
	bm.Description = req.Description
	bm.Order = req.Order
	bm.Tables = nil // avoid re-saving preloaded associations

	if err := ct.businessModels.Save(&bm); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update business model",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": bm})
}

// Delete soft-deletes business models and cascades to their tables
func (ct *BusinessModelController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.businessModels.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete business models",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Business models deleted", "count": count})
}
