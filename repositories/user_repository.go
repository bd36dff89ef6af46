package repositories

import (
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/models"
)

// UserRepository handles database operations for backoffice users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByEmail retrieves a live user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	err := r.db.Where("email = ?", email).First(&user).Error
	return user, wrapNotFound(err, "user", 0)
}

// FindByID retrieves a live user by id
func (r *UserRepository) FindByID(id uint) (models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	return user, wrapNotFound(err, "user", id)
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(id uint, hashed string) error {
	result := r.db.Model(&models.User{}).Where("id = ?", id).Update("password", hashed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return NotFoundError{Entity: "user", ID: id}
	}
	return nil
}

// Create inserts a new user
func (r *UserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}
