package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/danakita/cms-backend/dto"
)

// ParseListParams reads the shared list query parameters with sane
// defaults: page 1, limit 10 (capped at 100).
func ParseListParams(c *gin.Context) dto.ListParams {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	return dto.ListParams{
		Page:          page,
		Limit:         limit,
		Search:        c.Query("search"),
		SortColumn:    c.Query("sortColumn"),
		SortDirection: c.DefaultQuery("sortDirection", "asc"),
	}
}

// TotalPages computes the page count for a list response.
func TotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	pages := totalCount / int64(limit)
	if totalCount%int64(limit) != 0 {
		pages++
	}
	return int(pages)
}
