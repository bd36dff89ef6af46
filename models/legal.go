package models

import (
	"time"

	"gorm.io/gorm"
)

// Legal represents a legal document (privacy policy, terms of service, ...)
type Legal struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"not null"`
	Slug      string         `json:"slug" gorm:"not null;index"`
	Category  string         `json:"category" gorm:"default:'general'"`
	Content   string         `json:"content" gorm:"type:text"`
	Version   int            `json:"version" gorm:"default:1"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}
