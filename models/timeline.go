package models

import (
	"time"

	"gorm.io/gorm"
)

// Timeline represents a company-history milestone
type Timeline struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Year        int            `json:"year" gorm:"not null"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description" gorm:"type:text"`
	ImageURL    string         `json:"imageUrl"`
	Order       int            `json:"order" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy   *string        `json:"-" gorm:"default:null"`
}
