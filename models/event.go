package models

import (
	"time"

	"gorm.io/gorm"
)

// Event represents a promo or news item shown on the landing page
type Event struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Title       string         `json:"title" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"not null;index"`
	Content     string         `json:"content" gorm:"type:text"`
	ImageURL    string         `json:"imageUrl"`
	StartDate   *time.Time     `json:"startDate"`
	EndDate     *time.Time     `json:"endDate"`
	IsPublished bool           `json:"isPublished" gorm:"default:false"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy   *string        `json:"-" gorm:"default:null"`
}
