package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessModel represents a revenue-sharing scheme presented on the
// landing page, optionally carrying one or more nested Tables.
type BusinessModel struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Name        string         `json:"name" gorm:"not null"`
	Slug        string         `json:"slug" gorm:"index"`
	Description string         `json:"description" gorm:"type:text"`
	Order       int            `json:"order" gorm:"not null;default:0"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy   *string        `json:"-" gorm:"default:null"`

	Tables []Table `json:"tables,omitempty" gorm:"foreignKey:BusinessModelID"`
}
