package repositories

import (
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
)

// listQuery applies search and whitelisted sorting to a query. Search is
// case-insensitive across the given columns; an unknown sortColumn falls
// back to defaultOrder.
func listQuery(db *gorm.DB, p dto.ListParams, searchCols []string, sortable map[string]string, defaultOrder string) *gorm.DB {
	if p.Search != "" && len(searchCols) > 0 {
		pattern := "%" + strings.ToLower(p.Search) + "%"
		conds := make([]string, 0, len(searchCols))
		args := make([]interface{}, 0, len(searchCols))
		for _, col := range searchCols {
			conds = append(conds, "LOWER("+col+") LIKE ?")
			args = append(args, pattern)
		}
		db = db.Where(strings.Join(conds, " OR "), args...)
	}

	order := defaultOrder
	if col, ok := sortable[p.SortColumn]; ok {
		dir := "ASC"
		if strings.EqualFold(p.SortDirection, "desc") {
			dir = "DESC"
		}
		order = col + " " + dir
	}
	return db.Order(order)
}

// softDeleteByIDs marks the given ids deleted, stamping the acting user.
// Already-deleted rows are excluded by the soft-delete scope.
func softDeleteByIDs(db *gorm.DB, model interface{}, ids []uint, actor string) (int64, error) {
	result := db.Model(model).Where("id IN ?", ids).Updates(map[string]interface{}{
		"deleted_at": time.Now(),
		"deleted_by": actor,
	})
	return result.RowsAffected, result.Error
}
