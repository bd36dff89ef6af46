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

// EventController serves the promo/news event CRUD surface.
type EventController struct {
	events *repositories.EventRepository
}

// NewEventController creates a new event controller instance
func NewEventController(db *gorm.DB) *EventController {
	return &EventController{events: repositories.NewEventRepository(db)}
}

// RegisterRoutes registers the /events endpoints
func (ct *EventController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/events")
	group.GET("", ct.List)
	group.GET("/:id", ct.Get)
	group.POST("", requireAuth, ct.Create)
	group.PUT("/:id", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns events with pagination, search and sorting
func (ct *EventController) List(c *gin.Context) {
	params := utils.ParseListParams(c)
	events, totalCount, err := ct.events.FindWithPagination(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve events",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, dto.ListResponse{
		Data:       events,
		TotalCount: totalCount,
		Page:       params.Page,
		Limit:      params.Limit,
		TotalPages: utils.TotalPages(totalCount, params.Limit),
	})
}

// Get returns one event
func (ct *EventController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	event, err := ct.events.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve event",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// Create inserts an event
func (ct *EventController) Create(c *gin.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	event := models.Event{
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		ImageURL:  req.ImageURL,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}
	if err := ct.events.Create(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create event",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": event})
}

// Update modifies an event
func (ct *EventController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "id must be numeric"})
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	event, err := ct.events.FindByID(uint(id))
	if err != nil {
		if repositories.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve event",
			"error":   err.Error(),
		})
		return
	}

	event.Title = req.Title
	event.Slug = req.Slug
	event.Content = req.Content
	event.ImageURL = req.ImageURL
	event.StartDate = req.StartDate
	event.EndDate = req.EndDate
	if req.IsPublished != nil {
		event.IsPublished = *req.IsPublished
	}

	if err := ct.events.Save(&event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update event",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": event})
}

// Delete soft-deletes events
func (ct *EventController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.events.SoftDelete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete events",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Events deleted", "count": count})
}
