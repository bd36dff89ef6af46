package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var siteConfigSortable = map[string]string{
	"key":       "key",
	"group":     "group_name",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// SiteConfigRepository handles database operations for site configs
type SiteConfigRepository struct {
	db *gorm.DB
}

// NewSiteConfigRepository creates a new site config repository instance
func NewSiteConfigRepository(db *gorm.DB) *SiteConfigRepository {
	return &SiteConfigRepository{db: db}
}

// FindWithPagination retrieves configs with pagination, search and sorting
func (r *SiteConfigRepository) FindWithPagination(p dto.ListParams) ([]models.SiteConfig, int64, error) {
	var configs []models.SiteConfig
	var totalCount int64

	db := listQuery(r.db.Model(&models.SiteConfig{}), p, []string{"key", "value", "group_name"}, siteConfigSortable, "key ASC")
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&configs).Error; err != nil {
		return nil, 0, err
	}
	return configs, totalCount, nil
}

// FindByID retrieves a live config by id
func (r *SiteConfigRepository) FindByID(id uint) (models.SiteConfig, error) {
	var cfg models.SiteConfig
	err := r.db.First(&cfg, "id = ?", id).Error
	return cfg, wrapNotFound(err, "config", id)
}

// KeyInUse reports whether a live config other than excludeID already
// uses the key. Soft-deleted rows do not count.
func (r *SiteConfigRepository) KeyInUse(key string, excludeID uint) (bool, error) {
	var count int64
	db := r.db.Model(&models.SiteConfig{}).Where("key = ?", key)
	if excludeID != 0 {
		db = db.Where("id <> ?", excludeID)
	}
	err := db.Count(&count).Error
	return count > 0, err
}

// Create inserts a new config
func (r *SiteConfigRepository) Create(cfg *models.SiteConfig) error {
	return r.db.Create(cfg).Error
}

// Save persists changes to an existing config
func (r *SiteConfigRepository) Save(cfg *models.SiteConfig) error {
	return r.db.Save(cfg).Error
}

// SoftDelete marks the given configs deleted
func (r *SiteConfigRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.SiteConfig{}, ids, actor)
}
