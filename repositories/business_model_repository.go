package repositories

import (
	"time"

	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var businessModelSortable = map[string]string{
	"name":      "name",
	"slug":      "slug",
	"order":     `"order"`,
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// BusinessModelRepository handles database operations for business models
type BusinessModelRepository struct {
	db *gorm.DB
}

// NewBusinessModelRepository creates a new business model repository instance
func NewBusinessModelRepository(db *gorm.DB) *BusinessModelRepository {
	return &BusinessModelRepository{db: db}
}

// FindWithPagination retrieves business models with pagination, search and sorting
func (r *BusinessModelRepository) FindWithPagination(p dto.ListParams) ([]models.BusinessModel, int64, error) {
	var bms []models.BusinessModel
	var totalCount int64

	db := listQuery(r.db.Model(&models.BusinessModel{}), p, []string{"name", "slug", "description"}, businessModelSortable, `"order" ASC`)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&bms).Error; err != nil {
		return nil, 0, err
	}
	return bms, totalCount, nil
}

// FindByID retrieves a live business model with its live tables, ordered
func (r *BusinessModelRepository) FindByID(id uint) (models.BusinessModel, error) {
	var bm models.BusinessModel
	err := r.db.
		Preload("Tables", func(db *gorm.DB) *gorm.DB {
			return db.Order(`"order" ASC`)
		}).
		First(&bm, "id = ?", id).Error
	return bm, wrapNotFound(err, "business model", id)
}

// Create inserts a new business model
func (r *BusinessModelRepository) Create(bm *models.BusinessModel) error {
	return r.db.Create(bm).Error
}

// Save persists changes to an existing business model
func (r *BusinessModelRepository) Save(bm *models.BusinessModel) error {
	return r.db.Save(bm).Error
}

// SoftDelete marks the given business models deleted together with their
// live tables, inside one transaction. The cascade stops at tables:
// columns, rows and cells keep their state.
func (r *BusinessModelRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		if err := tx.Model(&models.Table{}).Where("business_model_id IN ?", ids).
			Updates(map[string]interface{}{"deleted_at": now, "deleted_by": actor}).Error; err != nil {
			return err
		}
		result := tx.Model(&models.BusinessModel{}).Where("id IN ?", ids).
			Updates(map[string]interface{}{"deleted_at": now, "deleted_by": actor})
		affected = result.RowsAffected
		return result.Error
	})
	return affected, err
}
