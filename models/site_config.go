package models

import (
	"time"

	"gorm.io/gorm"
)

// SiteConfig is a key/value setting consumed by the landing page
// (hero copy, contact addresses, social links, feature toggles).
// Key must be unique among live rows; enforced in the repository
// because the soft-delete column keeps old rows around.
type SiteConfig struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Key       string         `json:"key" gorm:"not null;index"`
	Value     string         `json:"value" gorm:"type:text"`
	Group     string         `json:"group" gorm:"column:group_name;default:'general'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}
