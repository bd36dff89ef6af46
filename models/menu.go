package models

import (
	"time"

	"gorm.io/gorm"
)

// Menu represents a navigation entry on the landing page
type Menu struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Name      string         `json:"name" gorm:"not null"`
	Path      string         `json:"path" gorm:"not null"`
	Order     int            `json:"order" gorm:"not null;default:0"`
	IsActive  bool           `json:"isActive" gorm:"default:true"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}
