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

// TimelineController serves the company-history milestone CRUD surface.
type TimelineController struct {
	timelines *repositories.TimelineRepository
}

// NewTimelineController creates a new timeline controller instance
func NewTimelineController(db *gorm.DB) *TimelineController {
	return &TimelineController{timelines: repositories.NewTimelineRepository(db)}
}

// RegisterRoutes registers the /timelines endpoints
func (ct *TimelineController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/timelines")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns milestones with pagination, search and sorting
func (ct *TimelineController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	milestones, totalCount, err := ct.timelines.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve timeline",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       milestones,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one milestone
func (ct *TimelineController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	milestone, err := ct.timelines.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Timeline entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve timeline entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": milestone})
}

// Create inserts a milestone
func (ct *TimelineController) Create(c *gin.Context) {
	var req dto.TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	milestone := models.Timeline{
		Year:        req.Year,
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Order:       req.Order,
	}
	if err := ct.timelines.Create(&milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create timeline entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": milestone})
}

// Update modifies a milestone
func (ct *TimelineController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.TimelineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	milestone, err := ct.timelines.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Timeline entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve timeline entry",
			"error":   err.Error(),
		})
		return
	}

	milestone.Year = req.Year
	milestone.Title = req.Title
	milestone.Description = req.Description
	milestone.ImageURL = req.ImageURL
	milestone.Order = req.Order

	if err := ct.timelines.Save(&milestone); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update timeline entry",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": milestone})
}

// Delete soft-deletes milestones
func (ct *TimelineController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.timelines.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete timeline entries",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Timeline entries deleted", "count": count})
}
