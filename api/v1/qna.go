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

// QnaController serves the Q&A CRUD surface.
type QnaController struct {
	qna *repositories.QnaRepository
}

// NewQnaController creates a new Q&A controller instance
func NewQnaController(db *gorm.DB) *QnaController {
	return &QnaController{qna: repositories.NewQnaRepository(db)}
}

// RegisterRoutes registers the /qna endpoints
func (ct *QnaController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/qna")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns Q&A entries with pagination, search and sorting
func (ct *QnaController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	entries, totalCount, err := ct.qna.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve Q&A entries",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       entries,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one Q&A entry
func (ct *QnaController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	entry, err := ct.qna.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Q&A entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve Q&A entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

// Create inserts a Q&A entry
func (ct *QnaController) Create(c *gin.Context) {
	var req dto.QnaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	entry := models.Qna{
		Question:    req.Question,
		Answer:      req.Answer,
		Category:    req.Category,
		Order:       req.Order,
		IsPublished: true,
	}
	if entry.Category == "" {
		entry.Category = "general"
	}
	if req.IsPublished != nil {
		entry.IsPublished = *req.IsPublished
	}
	if err := ct.qna.Create(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create Q&A entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": entry})
}

// Update modifies a Q&A entry
func (ct *QnaController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.QnaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	entry, err := ct.qna.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Q&A entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve Q&A entry",
			"error":   err.Error(),
		})
		return
	}

	entry.Question = req.Question
	entry.Answer = req.Answer
	entry.Order = req.Order
	if req.Category != "" {
		entry.Category = req.Category
	}
	if req.IsPublished != nil {
		entry.IsPublished = *req.IsPublished
	}

	if err := ct.qna.Save(&entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update Q&A entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entry})
}

// Delete soft-deletes Q&A entries
func (ct *QnaController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.qna.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete Q&A entries",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Q&A entries deleted", "count": count})
}
