package database

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/danakita/cms-backend/models"
)

// SeedAdmin creates the initial admin account when the users table is
// empty. Credentials come from ADMIN_EMAIL / ADMIN_PASSWORD; nothing is
// seeded when they are unset.
func SeedAdmin(db *gorm.DB, email, username, password string) error {
	if email == "" || password == "" {
		log.Println("Warning: ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Seeded admin account %s", email)
	return nil
}
