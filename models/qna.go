package models

import (
	"time"

	"gorm.io/gorm"
)

// Qna represents a frequently-asked question entry
type Qna struct {
	ID          uint           `json:"id" gorm:"primaryKey"`
	Question    string         `json:"question" gorm:"type:text;not null"`
	Answer      string         `json:"answer" gorm:"type:text"`
	Category    string         `json:"category" gorm:"default:'general'"`
	Order       int            `json:"order" gorm:"not null;default:0"`
	IsPublished bool           `json:"isPublished" gorm:"default:true"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy   *string        `json:"-" gorm:"default:null"`
}

// TableName keeps the short route-facing name instead of gorm's "qnas"
func (Qna) TableName() string {
	return "qna"
}
