package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents user role types
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
)

// User represents a backoffice user
type User struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Email     string         `json:"email" gorm:"uniqueIndex;not null"`
	Password  string         `json:"-" gorm:"not null"` // Password is not exposed in JSON
	Username  string         `json:"username" gorm:"not null"`
	Name      *string        `json:"name" gorm:"default:null"`
	Role      Role           `json:"role" gorm:"type:varchar(10);default:'editor'"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
	DeletedBy *string        `json:"-" gorm:"default:null"`
}

// PublicUser is the identity shape mirrored into the auth_user cookie
// and returned by session/login responses.
type PublicUser struct {
	ID       uint    `json:"id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	Name     *string `json:"name,omitempty"`
	Role     Role    `json:"role"`
}

// Public strips credentials from a user record.
func (u User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Name:     u.Name,
		Role:     u.Role,
	}
}
