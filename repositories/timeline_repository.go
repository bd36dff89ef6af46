package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var timelineSortable = map[string]string{
	"year":      "year",
	"title":     "title",
	"order":     `"order"`,
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// TimelineRepository handles database operations for timeline milestones
type TimelineRepository struct {
	db *gorm.DB
}

// NewTimelineRepository creates a new timeline repository instance
func NewTimelineRepository(db *gorm.DB) *TimelineRepository {
	return &TimelineRepository{db: db}
}

// FindWithPagination retrieves milestones with pagination, search and sorting
func (r *TimelineRepository) FindWithPagination(p dto.ListParams) ([]models.Timeline, int64, error) {
	var milestones []models.Timeline
	var totalCount int64

	db := listQuery(r.db.Model(&models.Timeline{}), p, []string{"title", "description"}, timelineSortable, "year ASC")
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&milestones).Error; err != nil {
		return nil, 0, err
	}
	return milestones, totalCount, nil
}

// FindByID retrieves a live milestone by id
func (r *TimelineRepository) FindByID(id uint) (models.Timeline, error) {
	var milestone models.Timeline
	err := r.db.First(&milestone, "id = ?", id).Error
	return milestone, wrapNotFound(err, "timeline", id)
}

// Create inserts a new milestone
func (r *TimelineRepository) Create(milestone *models.Timeline) error {
	return r.db.Create(milestone).Error
}

// Save persists changes to an existing milestone
func (r *TimelineRepository) Save(milestone *models.Timeline) error {
	return r.db.Save(milestone).Error
}

// SoftDelete marks the given milestones deleted
func (r *TimelineRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Timeline{}, ids, actor)
}
