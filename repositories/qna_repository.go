package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var qnaSortable = map[string]string{
	"question":  "question",
	"category":  "category",
	"order":     `"order"`,
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// QnaRepository handles database operations for Q&A entries
type QnaRepository struct {
	db *gorm.DB
}

// NewQnaRepository creates a new Q&A repository instance
func NewQnaRepository(db *gorm.DB) *QnaRepository {
	return &QnaRepository{db: db}
}

// FindWithPagination retrieves Q&A entries with pagination, search and sorting
func (r *QnaRepository) FindWithPagination(p dto.ListParams) ([]models.Qna, int64, error) {
	var entries []models.Qna
	var totalCount int64

	db := listQuery(r.db.Model(&models.Qna{}), p, []string{"question", "answer", "category"}, qnaSortable, `"order" ASC`)
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, totalCount, nil
}

// FindByID retrieves a live Q&A entry by id
func (r *QnaRepository) FindByID(id uint) (models.Qna, error) {
	var entry models.Qna
	err := r.db.First(&entry, "id = ?", id).Error
	return entry, wrapNotFound(err, "qna", id)
}

// Create inserts a new Q&A entry
func (r *QnaRepository) Create(entry *models.Qna) error {
	return r.db.Create(entry).Error
}

// Save persists changes to an existing Q&A entry
func (r *QnaRepository) Save(entry *models.Qna) error {
	return r.db.Save(entry).Error
}

// SoftDelete marks the given Q&A entries deleted
func (r *QnaRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Qna{}, ids, actor)
}
