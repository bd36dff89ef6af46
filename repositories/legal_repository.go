package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var legalSortable = map[string]string{
	"title":     "title",
	"slug":      "slug",
	"category":  "category",
	"version":   "version",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// LegalRepository handles database operations for legal documents
type LegalRepository struct {
	db *gorm.DB
}

// NewLegalRepository creates a new legal repository instance
func NewLegalRepository(db *gorm.DB) *LegalRepository {
	return &LegalRepository{db: db}
}

// FindWithPagination retrieves legal documents with pagination, search and sorting
func (r *LegalRepository) FindWithPagination(p dto.ListParams) ([]models.Legal, int64, error) {
	var legals []models.Legal
	var totalCount int64

	db := listQuery(r.db.Model(&models.Legal{}), p, []string{"title", "slug", "category"}, legalSortable, "created_at DESC")
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&legals).Error; err != nil {
		return nil, 0, err
	}
	return legals, totalCount, nil
}

// FindByID retrieves a live legal document by id
func (r *LegalRepository) FindByID(id uint) (models.Legal, error) {
	var legal models.Legal
	err := r.db.First(&legal, "id = ?", id).Error
	return legal, wrapNotFound(err, "legal", id)
}

// Create inserts a new legal document
func (r *LegalRepository) Create(legal *models.Legal) error {
	return r.db.Create(legal).Error
}

// Save persists changes to an existing legal document
func (r *LegalRepository) Save(legal *models.Legal) error {
	return r.db.Save(legal).Error
}

// SoftDelete marks the given legal documents deleted
func (r *LegalRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Legal{}, ids, actor)
}
