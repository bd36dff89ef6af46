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

// LegalController serves the legal-document CRUD surface.
type LegalController struct {
	legals *repositories.LegalRepository
}

// NewLegalController creates a new legal controller instance
func NewLegalController(db *gorm.DB) *LegalController {
	return &LegalController{legals: repositories.NewLegalRepository(db)}
}

// RegisterRoutes registers the /legals endpoints
func (ct *LegalController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/legals")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns legal documents with pagination, search and sorting
func (ct *LegalController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	legals, totalCount, err := ct.legals.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve legal documents",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       legals,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one legal document
func (ct *LegalController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	legal, err := ct.legals.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Legal document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve legal document",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": legal})
}

// Create inserts a legal document
func (ct *LegalController) Create(c *gin.Context) {
	var req dto.LegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	legal := models.Legal{
		Title:    req.Title,
		Slug:     req.Slug,
		Category: req.Category,
		Content:  req.Content,
		Version:  req.Version,
	}
	if legal.Category == "" {
		legal.Category = "general"
	}
	if legal.Version == 0 {
		legal.Version = 1
	}
	if err := ct.legals.Create(&legal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create legal document",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": legal})
}

// Update modifies a legal document
func (ct *LegalController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.LegalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	legal, err := ct.legals.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Legal document not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve legal document",
			"error":   err.Error(),
		})
		return
	}

	legal.Title = req.Title
	legal.Slug = req.Slug
	legal.Content = req.Content
	if req.Category != "" {
		legal.Category = req.Category
	}
	if req.Version != 0 {
		legal.Version = req.Version
	}

	if err := ct.legals.Save(&legal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update legal document",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": legal})
}

// Delete soft-deletes legal documents
func (ct *LegalController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.legals.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete legal documents",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Legal documents deleted", "count": count})
}
