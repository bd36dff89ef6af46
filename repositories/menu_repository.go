package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var menuSortable = map[string]string{
	"name":      "name",
	"path":      "path",
	"order":     `"order"`,
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// MenuRepository handles database operations for menus
type MenuRepository struct {
	db *gorm.DB
}

// NewMenuRepository creates a new menu repository instance
func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// FindWithPagination retrieves menus with pagination, search and sorting
func (r *MenuRepository) FindWithPagination(p dto.ListParams) ([]models.Menu, int64, error) {
	var menus []models.Menu
	var totalCount int64

	db := listQuery(r.db.Model(&models.Menu{}), p, []string{"name", "path"}, menuSortable, `"order" ASC`)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&menus).Error; err != nil {
		return nil, 0, err
	}
	return menus, totalCount, nil
}

// FindByID retrieves a live menu by id
func (r *MenuRepository) FindByID(id uint) (models.Menu, error) {
	var menu models.Menu
	err := r.db.First(&menu, "id = ?", id).Error
	return menu, wrapNotFound(err, "menu", id)
}

// Create inserts a new menu
func (r *MenuRepository) Create(menu *models.Menu) error {
	return r.db.Create(menu).Error
}

// Save persists changes to an existing menu
func (r *MenuRepository) Save(menu *models.Menu) error {
	return r.db.Save(menu).Error
}

// SoftDelete marks the given menus deleted
func (r *MenuRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Menu{}, ids, actor)
}
