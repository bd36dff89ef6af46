package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/dto"
	"github.com/danakita/cms-backend/models"
)

var eventSortable = map[string]string{
	"title":     "title",
	"slug":      "slug",
	"startDate": "start_date",
	"endDate":   "end_date",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *gorm.DB
}

// NewEventRepository creates a new event repository instance
func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// FindWithPagination retrieves events with pagination, search and sorting
func (r *EventRepository) FindWithPagination(p dto.ListParams) ([]models.Event, int64, error) {
	var events []models.Event
	var totalCount int64

	db := listQuery(r.db.Model(&models.Event{}), p, []string{"title", "slug", "content"}, eventSortable, "created_at DESC")
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}
	if err := db.Limit(p.Limit).Offset(p.Offset()).Find(&events).Error; err != nil {
		return nil, 0, err
	}
	return events, totalCount, nil
}

// FindByID retrieves a live event by id
func (r *EventRepository) FindByID(id uint) (models.Event, error) {
	var event models.Event
	err := r.db.First(&event, "id = ?", id).Error
	return event, wrapNotFound(err, "event", id)
}

// Create inserts a new event
func (r *EventRepository) Create(event *models.Event) error {
	return r.db.Create(event).Error
}

// Save persists changes to an existing event
func (r *EventRepository) Save(event *models.Event) error {
	return r.db.Save(event).Error
}

// SoftDelete marks the given events deleted
func (r *EventRepository) SoftDelete(ids []uint, actor string) (int64, error) {
	return softDeleteByIDs(r.db, &models.Event{}, ids, actor)
}
