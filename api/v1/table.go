package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/middleware"
	"github.com/danakita/cms-backend/repositories"
	"github.com/danakita/cms-backend/services"
)

// TableController serves the nested business-model tables.
type TableController struct {
	tables *services.TableService
}

// NewTableController creates a new table controller instance
func NewTableController(db *gorm.DB) *TableController {
	return &TableController{tables: services.NewTableService(db)}
}

// RegisterRoutes registers the /business-models/tables endpoints
func (ct *TableController) RegisterRoutes(api *gin.RouterGroup, requireAuth gin.HandlerFunc) {
	group := api.Group("/business-models/tables")
	group.GET("", ct.List)
	group.POST("", requireAuth, ct.Create)
	group.PUT("", requireAuth, ct.Update)
	group.DELETE("", requireAuth, ct.Delete)
}

// List returns the live tables of a business model (all when the
// businessModelId query param is absent), fully preloaded and ordered
func (ct *TableController) List(c *gin.Context) {
	var businessModelID uint
	if raw := c.Query("businessModelId"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "businessModelId must be numeric"})
			return
		}
		businessModelID = uint(parsed)
	}

	tables, err := ct.tables.List(businessModelID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to retrieve tables",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tables})
}

// Create inserts a table tree in one transaction
func (ct *TableController) Create(c *gin.Context) {
	var req dto.CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	table, err := ct.tables.Create(req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateColumnKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to create table",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": table})
}

// Update reconciles a submitted table tree against the stored one
func (ct *TableController) Update(c *gin.Context) {
	var req dto.UpdateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	table, err := ct.tables.Update(req, middleware.Actor(c))
	if err != nil {
		if errors.Is(err, services.ErrDuplicateColumnKey) {
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		var nf repositories.NotFoundError
		if errors.As(err, &nf) && nf.Entity == "table" {
			c.JSON(http.StatusNotFound, gin.H{"message": "Table not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to update table",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": table})
}

// Delete soft-deletes the given tables without cascading
func (ct *TableController) Delete(c *gin.Context) {
	var req dto.DeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
		return
	}

	count, err := ct.tables.Delete(req.IDs, middleware.Actor(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Failed to delete tables",
			"error":   err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tables deleted", "count": count})
}
